package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "emoji", "color", "sort", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Food", "🍔", "#EF4444", 10, time.Now(), time.Now(), nil).
			AddRow(2, "Grocery", "🛒", "#F59E0B", 20, time.Now(), time.Now(), nil))

	router := gin.New()
	router.GET("/categories", NewCategoryHandler().List)

	req := httptest.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			Name  string `json:"name"`
			Emoji string `json:"emoji"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Food", resp.Data[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 名称唯一性检查：无记录
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("Coffee").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"name":"Coffee","emoji":"☕","sort":100}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Name  string `json:"name"`
			Color string `json:"color"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp.Message)
	assert.Equal(t, "Coffee", resp.Data.Name)
	// 未指定颜色时回落到默认灰色
	assert.Equal(t, "#6B7280", resp.Data.Color)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("Food").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "emoji", "color", "sort", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Food", "🍔", "#EF4444", 10, time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"name":"Food","emoji":"🍔"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"emoji":"☕"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
