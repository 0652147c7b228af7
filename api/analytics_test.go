package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyticsRouter() *gin.Engine {
	router := gin.New()
	router.GET("/analytics", NewAnalyticsHandler(newTestLedger()).Analytics)
	return router
}

func TestAnalyticsHandler_Monthly(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("123.45"))

	req := httptest.NewRequest("GET", "/analytics?type=monthly&user_id=1&month=1&year=2024", nil)
	w := httptest.NewRecorder()
	analyticsRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			Type  string `json:"type"`
			Month int    `json:"month"`
			Year  int    `json:"year"`
			Total string `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "monthly", resp.Data.Type)
	assert.Equal(t, 1, resp.Data.Month)
	assert.Equal(t, 2024, resp.Data.Year)
	assert.Equal(t, "123.45", resp.Data.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_Monthly_RequiresUser(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/analytics?type=monthly&month=1&year=2024", nil)
	w := httptest.NewRecorder()
	analyticsRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestAnalyticsHandler_Monthly_InvalidMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/analytics?type=monthly&user_id=1&month=13&year=2024", nil)
	w := httptest.NewRecorder()
	analyticsRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestAnalyticsHandler_Combined(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("500"))

	req := httptest.NewRequest("GET", "/analytics?type=combined&month=2&year=2024", nil)
	w := httptest.NewRecorder()
	analyticsRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_Shared(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 共享消费只存了人均一半，SUM(amount * 2) 还原总额
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount \\* 2\\), 0\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("100.01"))

	req := httptest.NewRequest("GET", "/analytics?type=shared&month=1&year=2024", nil)
	w := httptest.NewRecorder()
	analyticsRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			Total string `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "100.01", resp.Data.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_Category(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT categories.name AS name, categories.emoji AS emoji, SUM\\(spendings.amount\\) AS value FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"name", "emoji", "value"}).
			AddRow("Food", "🍔", "321.50").
			AddRow("Transport", "🚗", "80.00"))

	req := httptest.NewRequest("GET", "/analytics?type=category&user_id=1&month=1&year=2024", nil)
	w := httptest.NewRecorder()
	analyticsRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			Name  string `json:"name"`
			Emoji string `json:"emoji"`
			Value string `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Food", resp.Data[0].Name)
	assert.Equal(t, "321.5", resp.Data[0].Value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_InvalidType(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/analytics?type=weekly", nil)
	w := httptest.NewRecorder()
	analyticsRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
