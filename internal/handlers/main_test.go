package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Joasro/Industrias/internal/config"
	"github.com/Joasro/Industrias/internal/middleware"
	"github.com/Joasro/Industrias/internal/models"
	"github.com/Joasro/Industrias/internal/routes"
	"github.com/Joasro/Industrias/internal/storage"
	"github.com/Joasro/Industrias/internal/utils"
)

const testSecret = "secreto-de-prueba"

// newTestServer boots the full router against a fresh in-memory sqlite
// database. Max one connection, so every query sees the same memory db.
func newTestServer(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	storage.SyncModels(db)

	cfg := &config.Config{}
	cfg.Server.FrontendOrigin = "http://localhost:3000"
	cfg.Auth.JWTSecret = testSecret

	return db, routes.NewRouter(db, cfg)
}

func createUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{Name: name, Email: email, Password: hash, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("crear usuario: %v", err)
	}
	return user
}

func signTestToken(t *testing.T, userID uint) string {
	t.Helper()
	tok, err := middleware.SignToken(testSecret, userID)
	if err != nil {
		t.Fatalf("firmar token: %v", err)
	}
	return tok
}

func adminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()
	admin := createUser(t, db, "admin", "admin@observatorio.hn", "clave-admin-123", models.RoleAdmin)
	return signTestToken(t, admin.ID)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("codificar cuerpo: %v", err)
		}
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decodificar respuesta %q: %v", w.Body.String(), err)
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, quería %d; cuerpo: %s", w.Code, want, w.Body.String())
	}
}
