package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Joasro/Industrias/internal/models"
)

// TestRegistryFlow walks the happy path a data-entry session follows:
// country, company, product, event, indicator, survey.
func TestRegistryFlow(t *testing.T) {
	db, r := newTestServer(t)
	tok := adminToken(t, db)

	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/pais", map[string]any{
		"codigo_pais": "SLV", "nombre": "El Salvador",
	}, tok), http.StatusCreated)

	w := doJSON(t, r, http.MethodPost, "/api/empresa", map[string]any{
		"nombre":    "Acme",
		"pais":      "SLV",
		"sector":    "Fintech",
		"empleados": 120,
	}, tok)
	wantStatus(t, w, http.StatusCreated)
	var company models.Company
	decodeBody(t, w, &company)

	// company search by id is a 200 list
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/empresa/buscar?id_empresa=%d", company.ID), nil, "")
	wantStatus(t, w, http.StatusOK)
	var companies []models.Company
	decodeBody(t, w, &companies)
	if len(companies) != 1 || companies[0].Name != "Acme" {
		t.Fatalf("buscar empresa = %+v", companies)
	}

	// unknown country is a descriptive 400, not a constraint error
	w = doJSON(t, r, http.MethodPost, "/api/empresa", map[string]any{
		"nombre": "Fantasma", "pais": "XXX", "sector": "Cloud",
	}, tok)
	wantStatus(t, w, http.StatusBadRequest)
	if !strings.Contains(w.Body.String(), "XXX") {
		t.Fatalf("error sin el código ofensivo: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/producto-servicio", map[string]any{
		"id_empresa": company.ID,
		"nombre":     "AcmePay",
		"tipo":       "servicio",
	}, tok)
	wantStatus(t, w, http.StatusCreated)
	var product models.Product
	decodeBody(t, w, &product)

	// product id lookup 404s when absent
	wantStatus(t, doJSON(t, r, http.MethodGet, "/api/producto-servicio/buscar?id_producto=9999", nil, ""), http.StatusNotFound)
	wantStatus(t, doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/producto-servicio/buscar?id_producto=%d", product.ID), nil, ""), http.StatusOK)

	// event type outside the enum
	w = doJSON(t, r, http.MethodPost, "/api/evento-sector", map[string]any{
		"titulo":      "Ronda serie A",
		"tipo_evento": "fusion",
		"fecha":       "2025-06-01T00:00:00Z",
	}, tok)
	wantStatus(t, w, http.StatusBadRequest)

	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/evento-sector", map[string]any{
		"titulo":              "Ronda serie A",
		"tipo_evento":         "inversion",
		"fecha":               "2025-06-01T00:00:00Z",
		"pais_afectado":       "slv",
		"empresa_relacionada": company.ID,
	}, tok), http.StatusCreated)

	// indicator against a missing country
	w = doJSON(t, r, http.MethodPost, "/api/indicador-economico", map[string]any{
		"anio": 2025, "codigo_pais": "XXX",
	}, tok)
	wantStatus(t, w, http.StatusBadRequest)

	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/indicador-economico", map[string]any{
		"anio": 2025, "codigo_pais": "SLV", "pib": 35.1,
	}, tok), http.StatusCreated)

	// survey against a missing product
	w = doJSON(t, r, http.MethodPost, "/api/encuesta-demanda", map[string]any{
		"porcentaje_demanda": 55.5, "anio": 2025, "id_producto": 9999,
	}, tok)
	wantStatus(t, w, http.StatusBadRequest)

	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/encuesta-demanda", map[string]any{
		"porcentaje_demanda": 55.5, "anio": 2025, "id_producto": product.ID,
	}, tok), http.StatusCreated)
}

func TestUserManagement(t *testing.T) {
	db, r := newTestServer(t)
	tok := adminToken(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/usuario", map[string]any{
		"nombre":   "Ana",
		"email":    "Ana@Observatorio.HN",
		"password": "clave-de-ana-1",
		"rol":      "analista",
	}, tok)
	wantStatus(t, w, http.StatusCreated)

	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "argon2id") {
		t.Fatalf("la respuesta expone la contraseña: %s", w.Body.String())
	}
	var created models.User
	decodeBody(t, w, &created)
	if created.Email != "ana@observatorio.hn" {
		t.Fatalf("email = %q, quería minúsculas", created.Email)
	}

	// duplicate email, same casing rules
	w = doJSON(t, r, http.MethodPost, "/api/usuario", map[string]any{
		"nombre": "Ana2", "email": "ana@observatorio.hn", "password": "otra-clave-123", "rol": "lector",
	}, tok)
	wantStatus(t, w, http.StatusConflict)

	// unknown role
	w = doJSON(t, r, http.MethodPost, "/api/usuario", map[string]any{
		"nombre": "Eva", "email": "eva@observatorio.hn", "password": "clave-de-eva-1", "rol": "superadmin",
	}, tok)
	wantStatus(t, w, http.StatusBadRequest)

	// listing never carries hashes either
	w = doJSON(t, r, http.MethodGet, "/api/usuario", nil, "")
	wantStatus(t, w, http.StatusOK)
	if strings.Contains(w.Body.String(), "argon2id") {
		t.Fatalf("el listado expone hashes: %s", w.Body.String())
	}
}

func TestUserMutationsNeedAdmin(t *testing.T) {
	db, r := newTestServer(t)

	analyst := createUser(t, db, "analista", "analista@observatorio.hn", "clave-analista", models.RoleAnalyst)
	tok := signTestToken(t, analyst.ID)

	w := doJSON(t, r, http.MethodPost, "/api/usuario", map[string]any{
		"nombre": "Otro", "email": "otro@observatorio.hn", "password": "clave-de-otro", "rol": "lector",
	}, tok)
	wantStatus(t, w, http.StatusForbidden)

	// the analyst can still write regular resources
	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/pais", map[string]any{
		"codigo_pais": "GTM", "nombre": "Guatemala",
	}, tok), http.StatusCreated)
}
