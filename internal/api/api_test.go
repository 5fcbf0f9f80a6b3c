package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dishcovery/dishcovery/backend/config"
	"github.com/dishcovery/dishcovery/backend/internal/api"
	"github.com/dishcovery/dishcovery/backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		UploadDir: t.TempDir(),
	}
}

func setupServer(t *testing.T, cfg *config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}))

	router := gin.New()
	api.SetupAPI(router, db, nil, cfg)
	return router, db
}

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, w, &body)
	return body.Message
}

func sampleRecipeBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":         name,
		"description":  "a test dish",
		"image":        "test.jpg",
		"ingredients":  []string{"ingredient1"},
		"instructions": []string{"step1"},
		"cookingTime":  10,
		"servings":     4,
		"calories":     180,
	}
}

func createRecipeHTTP(t *testing.T, router *gin.Engine, name string) models.Recipe {
	t.Helper()
	w := perform(t, router, http.MethodPost, "/api/recipes", sampleRecipeBody(name), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var recipe models.Recipe
	decode(t, w, &recipe)
	return recipe
}

func signUpHTTP(t *testing.T, router *gin.Engine, email string) models.User {
	t.Helper()
	w := perform(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    email,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		User models.User `json:"user"`
	}
	decode(t, w, &body)
	return body.User
}

func TestHealthz(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))

	w := perform(t, router, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupServer(t, testConfig(t))

	w := perform(t, router, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
