// handlers_test.go - Shared test setup: a full router against a fresh DB

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"go-cafe-backend/auth"
	"go-cafe-backend/database"
	"go-cafe-backend/middleware"
	"go-cafe-backend/store"
)

// setupRouter wires the same routes as main against a per-test database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	sessions := auth.NewSessions("test-secret", time.Hour)
	users := store.NewUsers(db)
	cafes := store.NewCafes(db)
	comments := store.NewComments(db)
	h := New(sessions, users, cafes, comments, zerolog.Nop())

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/cafes", h.ListCafes)
	r.GET("/cafes/:id", h.GetCafe)

	api := r.Group("/api")
	api.Use(middleware.Authenticate(sessions, users))
	{
		api.POST("/logout", h.Logout)
		api.POST("/cafes", h.AddCafe)
		api.POST("/cafes/:id/comments", h.AddComment)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAdmin(sessions, users))
	{
		admin.GET("/users", h.ListUsers)
	}

	return r
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser signs up an account and returns its session token and id.
func registerUser(t *testing.T, router *gin.Engine, email, password, name string) (string, uint) {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/register", RegisterInput{
		Email:    email,
		Password: password,
		Name:     name,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	token := body["token"].(string)
	user := body["user"].(map[string]any)
	return token, uint(user["id"].(float64))
}

func validCafeBody(name string) CafeInput {
	return CafeInput{
		Name:              name,
		URL:               "https://example.com/cafe.jpg",
		Address:           "1 Main St",
		City:              "Portland",
		State:             "OR",
		Zip:               "97201",
		OpenTime:          "8AM",
		ClosingTime:       "5:30PM",
		CoffeeRating:      "☕☕☕☕",
		WifiRating:        "💪💪💪",
		PowerOutletRating: "🔌🔌",
	}
}
