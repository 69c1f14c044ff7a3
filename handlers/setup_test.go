// setup_test.go - Shared helpers for handler tests
// Each test runs against a fresh SQLite database and the full router,
// including the authentication middleware, exactly as wired in main.

package handlers

import (
	"bytes"         // For building request bodies
	"context"       // For the fake image store
	"encoding/json" // For encoding/decoding JSON
	"errors"        // For the failing image store
	"io"            // Request body reader
	"net/http"      // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"path/filepath" // Per-test database location
	"sync"          // Fake store bookkeeping
	"testing"       // Go's testing package

	"go-notes-backend/auth"     // For crafting admin tokens
	"go-notes-backend/config"   // Project config
	"go-notes-backend/database" // Database connection
	"go-notes-backend/models"   // User model

	"github.com/gin-gonic/gin"            // Gin web framework
	"github.com/stretchr/testify/require" // For assertions
	"gorm.io/gorm"                        // GORM ORM
)

// fakeImageStore stands in for the external hosting service and records
// which public IDs were destroyed.
type fakeImageStore struct {
	mu          sync.Mutex
	destroyed   []string
	failDestroy bool
}

func (f *fakeImageStore) PresignUpload(ctx context.Context) (string, string, error) {
	return "fake-public-id", "https://uploads.example.com/fake-public-id", nil
}

func (f *fakeImageStore) Destroy(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDestroy {
		return errors.New("hosting service unavailable")
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func (f *fakeImageStore) destroyedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.destroyed...)
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	images *fakeImageStore
}

// newTestEnv prepares a fresh database and a fully wired router.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBPath:    filepath.Join(t.TempDir(), "test.db"), // Separate DB per test
		JWTSecret: "test-secret",
		// Generous limits so ordinary tests never trip the limiter
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}

	db, err := database.Connect(cfg) // Connect and migrate
	require.NoError(t, err)

	images := &fakeImageStore{}
	router := gin.New()
	New(db, cfg, images).RegisterRoutes(router)

	return &testEnv{router: router, db: db, cfg: cfg, images: images}
}

// do performs one request against the router and records the response.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// signup registers a user through the API and returns its token and ID.
func (e *testEnv) signup(t *testing.T, name, email, password string) (string, uint) {
	t.Helper()

	w := e.do(t, "POST", "/api/signup", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user := decodeBody(t, w)["user"].(map[string]any)
	return user["token"].(string), uint(user["userId"].(float64))
}

// createAdmin inserts an admin directly and signs a token for it.
func (e *testEnv) createAdmin(t *testing.T, email string) string {
	t.Helper()

	hash, err := auth.HashPassword("adminpass")
	require.NoError(t, err)

	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: hash,
		Image:    models.DefaultAvatarURL,
		IsAdmin:  true,
	}
	require.NoError(t, e.db.Create(&admin).Error)

	token, err := auth.IssueToken(admin.ID, admin.Email, e.cfg.JWTSecret)
	require.NoError(t, err)
	return token
}

// createNote creates a note through the API and returns its ID.
func (e *testEnv) createNote(t *testing.T, token, title string, images []gin.H) uint {
	t.Helper()

	payload := gin.H{"title": title, "description": "body of " + title}
	if images != nil {
		payload["images"] = images
	}

	w := e.do(t, "POST", "/api/notes", token, payload)
	require.Equal(t, http.StatusOK, w.Code)

	note := decodeBody(t, w)["note"].(map[string]any)
	return uint(note["id"].(float64))
}
