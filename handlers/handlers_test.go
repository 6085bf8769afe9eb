package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/middleware"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/routes"
	"github.com/aselzhanova/FitJourneyBackend/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.WeightRecord{},
		&models.CalorieEntry{},
		&models.WeeklyExercisePlan{},
		&models.DailyChecklist{},
		&models.StreakRecord{},
	))
	db.DB = gdb
	t.Cleanup(func() {
		sqlDB.Close()
		db.DB = nil
	})

	r := gin.New()
	r.POST("/api/register", routes.Register)
	r.POST("/api/login", routes.Login)

	api := r.Group("/api", middleware.AuthMiddleware())
	api.POST("/access/init", InitializeAccessControl)
	api.GET("/access/role", GetCallerUserRole)
	api.POST("/weight-records", AddWeightRecord)
	api.GET("/weight-records", GetWeightRecords)
	api.PUT("/weight-records/:index", UpdateWeightRecord)
	api.GET("/progress", GetProgressData)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	creds := gin.H{"username": username, "password": "secret123"}
	w := doJSON(t, r, http.MethodPost, "/api/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := setupRouter(t)
	creds := gin.H{"username": "maria", "password": "secret123"}

	w := doJSON(t, r, http.MethodPost, "/api/register", "", creds)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/register", "", creds)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{"username": "maria", "password": "secret123"})

	w := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{"username": "maria", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/weight-records", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/weight-records", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWeightRecordFlow(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "maria")

	w := doJSON(t, r, http.MethodPost, "/api/weight-records", token, gin.H{"date": 1700000000000000000, "weight": 72.5})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/weight-records", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []models.WeightRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 72.5, records[0].Weight)

	w = doJSON(t, r, http.MethodPut, "/api/weight-records/0", token, gin.H{"date": 1700000000000000000, "weight": 71.0})
	assert.Equal(t, http.StatusOK, w.Code)

	// Out-of-range index maps to 400.
	w = doJSON(t, r, http.MethodPut, "/api/weight-records/5", token, gin.H{"weight": 70.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid payload maps to 400.
	w = doJSON(t, r, http.MethodPost, "/api/weight-records", token, gin.H{"weight": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccessInitPromotesFirstCaller(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "founder")

	w := doJSON(t, r, http.MethodGet, "/api/access/role", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"guest"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/access/init", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/access/role", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())
}

func TestProgressEmpty(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "maria")

	w := doJSON(t, r, http.MethodGet, "/api/progress", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		TotalCompletedExercises int `json:"total_completed_exercises"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, 0, data.TotalCompletedExercises)
}
