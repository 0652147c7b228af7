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

func iouRows(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "from_user_id", "to_user_id", "title", "amount", "category_id", "notes", "date", "status",
		"created_at", "updated_at", "deleted_at",
	}).AddRow(1, 2, 1, "Movie tickets", "25.000", 5, "", time.Now(), status, time.Now(), time.Now(), nil)
}

func TestIOUHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "emoji", "color", "sort", "created_at", "updated_at", "deleted_at"}).
			AddRow(5, "Entertainment", "🎬", "#8B5CF6", 50, time.Now(), time.Now(), nil))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `ious`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/ious", NewIOUHandler(newTestLedger()).Create)

	body := `{"from_user_id":2,"to_user_id":1,"title":"Movie tickets","amount":25.00,"category_id":5}`
	req := httptest.NewRequest("POST", "/ious", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp.Message)
	assert.Equal(t, "pending", resp.Data.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIOUHandler_Create_SelfDebt(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/ious", NewIOUHandler(newTestLedger()).Create)

	body := `{"from_user_id":1,"to_user_id":1,"title":"oops","amount":10,"category_id":1}`
	req := httptest.NewRequest("POST", "/ious", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestIOUHandler_UpdateStatus_Approve(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `ious`").
		WithArgs(1).
		WillReturnRows(iouRows("pending"))
	mock.ExpectExec("UPDATE `ious`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 确认后为欠款方生成一条消费记录
	mock.ExpectExec("INSERT INTO `spendings`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.PUT("/ious/:id/status", NewIOUHandler(newTestLedger()).UpdateStatus)

	body := `{"status":"approved"}`
	req := httptest.NewRequest("PUT", "/ious/1/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Message string `json:"message"`
		Data    struct {
			UserID   uint   `json:"user_id"`
			Title    string `json:"title"`
			Amount   string `json:"amount"`
			IsShared bool   `json:"is_shared"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "已确认", resp.Message)
	assert.Equal(t, uint(2), resp.Data.UserID)
	assert.Equal(t, "💕 Movie tickets", resp.Data.Title)
	assert.Equal(t, "25", resp.Data.Amount)
	assert.False(t, resp.Data.IsShared)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIOUHandler_UpdateStatus_Reject(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `ious`").
		WithArgs(1).
		WillReturnRows(iouRows("pending"))
	mock.ExpectExec("UPDATE `ious`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 拒绝不生成消费记录
	mock.ExpectCommit()

	router := gin.New()
	router.PUT("/ious/:id/status", NewIOUHandler(newTestLedger()).UpdateStatus)

	body := `{"status":"rejected"}`
	req := httptest.NewRequest("PUT", "/ious/1/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "已拒绝", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIOUHandler_UpdateStatus_AlreadySettled(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 记录存在但已是终态：CAS 更新不到任何行，事务回滚
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `ious`").
		WithArgs(1).
		WillReturnRows(iouRows("approved"))
	mock.ExpectExec("UPDATE `ious`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	router := gin.New()
	router.PUT("/ious/:id/status", NewIOUHandler(newTestLedger()).UpdateStatus)

	body := `{"status":"approved"}`
	req := httptest.NewRequest("PUT", "/ious/1/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIOUHandler_UpdateStatus_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `ious`").
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectRollback()

	router := gin.New()
	router.PUT("/ious/:id/status", NewIOUHandler(newTestLedger()).UpdateStatus)

	body := `{"status":"approved"}`
	req := httptest.NewRequest("PUT", "/ious/999/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIOUHandler_UpdateStatus_InvalidDecision(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.PUT("/ious/:id/status", NewIOUHandler(newTestLedger()).UpdateStatus)

	// pending 不是合法的结算目标
	body := `{"status":"pending"}`
	req := httptest.NewRequest("PUT", "/ious/1/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestIOUHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `ious`").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "from_user_id", "to_user_id", "title", "amount", "category_id", "status", "date",
			"from_user_name", "to_user_name", "category_name", "category_emoji", "category_color",
		}).AddRow(1, 2, 1, "Movie tickets", "25.000", 5, "pending", time.Now(), "Sam", "Bert", "Entertainment", "🎬", "#8B5CF6"))

	router := gin.New()
	router.GET("/ious", NewIOUHandler(newTestLedger()).List)

	req := httptest.NewRequest("GET", "/ious?user_id=1&status=pending", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			Title        string `json:"title"`
			FromUserName string `json:"from_user_name"`
			ToUserName   string `json:"to_user_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Sam", resp.Data[0].FromUserName)
	assert.Equal(t, "Bert", resp.Data[0].ToUserName)
	require.NoError(t, mock.ExpectationsWereMet())
}
