package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Joasro/Industrias/internal/models"
)

func TestLoginSetsCookieAndLogsAccess(t *testing.T) {
	db, r := newTestServer(t)
	user := createUser(t, db, "carlos", "carlos@observatorio.hn", "clave-de-carlos", models.RoleAnalyst)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"usuario": "carlos@observatorio.hn", "password": "clave-de-carlos",
	}, "")
	wantStatus(t, w, http.StatusOK)

	var resp struct {
		Token  string `json:"token"`
		UserID uint   `json:"id_usuario"`
		Name   string `json:"nombre"`
		Role   string `json:"rol"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" || resp.UserID != user.ID || resp.Role != "analista" {
		t.Fatalf("respuesta de login = %s", w.Body.String())
	}

	cookie := findCookie(t, w, "token")
	if !cookie.HttpOnly {
		t.Fatal("la cookie de sesión no es http-only")
	}
	if cookie.MaxAge != 1800 {
		t.Fatalf("max-age de cookie = %d, quería 1800", cookie.MaxAge)
	}

	var logs []models.AccessLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 || logs[0].Action != "Inicio de sesión" || logs[0].UserID != user.ID {
		t.Fatalf("registros de acceso = %+v", logs)
	}
}

func TestLoginByNameWorks(t *testing.T) {
	db, r := newTestServer(t)
	createUser(t, db, "carlos", "carlos@observatorio.hn", "clave-de-carlos", models.RoleReader)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"usuario": "carlos", "password": "clave-de-carlos",
	}, "")
	wantStatus(t, w, http.StatusOK)
}

func TestLoginFailuresAreAudited(t *testing.T) {
	db, r := newTestServer(t)
	user := createUser(t, db, "carlos", "carlos@observatorio.hn", "clave-de-carlos", models.RoleReader)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]any{
			"usuario": "carlos@observatorio.hn", "password": "incorrecta",
		}, "")
		wantStatus(t, w, http.StatusUnauthorized)
		if strings.Contains(w.Body.String(), "token") {
			t.Fatalf("un login fallido devolvió token: %s", w.Body.String())
		}
	}

	var count int64
	if err := db.Model(&models.AccessLog{}).
		Where("id_usuario = ? AND accion = ?", user.ID, "Intento fallido de inicio de sesión").
		Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("intentos fallidos registrados = %d, quería 3", count)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	db, r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"usuario": "nadie@observatorio.hn", "password": "cualquiera",
	}, "")
	wantStatus(t, w, http.StatusUnauthorized)

	// an unknown identity leaves no audit row
	var count int64
	if err := db.Model(&models.AccessLog{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("registros de acceso = %d, quería 0", count)
	}
}

func TestCookieAloneAuthenticates(t *testing.T) {
	db, r := newTestServer(t)
	user := createUser(t, db, "carlos", "carlos@observatorio.hn", "clave-de-carlos", models.RoleAnalyst)
	tok := signTestToken(t, user.ID)

	req := httptest.NewRequest(http.MethodPost, "/api/pais", strings.NewReader(`{"codigo_pais":"HND","nombre":"Honduras"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "token", Value: tok})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	wantStatus(t, w, http.StatusCreated)
}

func TestLogout(t *testing.T) {
	db, r := newTestServer(t)
	user := createUser(t, db, "carlos", "carlos@observatorio.hn", "clave-de-carlos", models.RoleReader)
	tok := signTestToken(t, user.ID)

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, tok)
	wantStatus(t, w, http.StatusOK)

	cookie := findCookie(t, w, "token")
	if cookie.MaxAge >= 0 {
		t.Fatalf("la cookie no fue invalidada: max-age %d", cookie.MaxAge)
	}

	var count int64
	if err := db.Model(&models.AccessLog{}).
		Where("id_usuario = ? AND accion = ?", user.ID, "Cierre de sesión").
		Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("cierres de sesión registrados = %d, quería 1", count)
	}

	// logout without a session still clears the cookie
	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, ""), http.StatusOK)
}

func TestInvalidTokensAreRejected(t *testing.T) {
	db, r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/pais", map[string]any{
		"codigo_pais": "HND", "nombre": "Honduras",
	}, "no-es-un-jwt")
	wantStatus(t, w, http.StatusUnauthorized)

	// a valid token whose user was deleted is also rejected
	user := createUser(t, db, "efimero", "efimero@observatorio.hn", "clave-efimera", models.RoleAnalyst)
	tok := signTestToken(t, user.ID)
	if err := db.Delete(&models.User{}, user.ID).Error; err != nil {
		t.Fatal(err)
	}
	w = doJSON(t, r, http.MethodPost, "/api/pais", map[string]any{
		"codigo_pais": "HND", "nombre": "Honduras",
	}, tok)
	wantStatus(t, w, http.StatusUnauthorized)
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q ausente", name)
	return nil
}
