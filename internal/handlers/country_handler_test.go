package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Joasro/Industrias/internal/models"
)

func TestCountryCreateAndSearch(t *testing.T) {
	db, r := newTestServer(t)
	tok := adminToken(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/pais", map[string]any{
		"codigo_pais": "slv",
		"nombre":      "El Salvador",
	}, tok)
	wantStatus(t, w, http.StatusCreated)

	var created models.Country
	decodeBody(t, w, &created)
	if created.Code != "SLV" {
		t.Fatalf("codigo_pais = %q, quería SLV", created.Code)
	}

	// substring match returns a list
	w = doJSON(t, r, http.MethodGet, "/api/pais/buscar?codigo_pais=SL", nil, "")
	wantStatus(t, w, http.StatusOK)
	var found []models.Country
	decodeBody(t, w, &found)
	if len(found) != 1 || found[0].Code != "SLV" {
		t.Fatalf("buscar SL = %+v", found)
	}

	// no match is still 200 with an empty list
	w = doJSON(t, r, http.MethodGet, "/api/pais/buscar?codigo_pais=ZZ", nil, "")
	wantStatus(t, w, http.StatusOK)
	found = nil
	decodeBody(t, w, &found)
	if len(found) != 0 {
		t.Fatalf("buscar ZZ = %+v, quería lista vacía", found)
	}
}

func TestCountryCreateDuplicate(t *testing.T) {
	db, r := newTestServer(t)
	tok := adminToken(t, db)

	body := map[string]any{"codigo_pais": "HND", "nombre": "Honduras"}
	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/pais", body, tok), http.StatusCreated)
	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/pais", body, tok), http.StatusConflict)
}

func TestCountryCreateValidation(t *testing.T) {
	db, r := newTestServer(t)
	tok := adminToken(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/pais", map[string]any{
		"codigo_pais": "HONDURAS",
		"nombre":      "Honduras",
	}, tok)
	wantStatus(t, w, http.StatusBadRequest)

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	decodeBody(t, w, &resp)
	if resp.Error == "" || len(resp.Details) == 0 {
		t.Fatalf("respuesta de validación incompleta: %s", w.Body.String())
	}
}

func TestCountryUpdateMissing(t *testing.T) {
	db, r := newTestServer(t)
	tok := adminToken(t, db)

	w := doJSON(t, r, http.MethodPut, "/api/pais?codigo_pais=XXX", map[string]any{
		"nombre": "Nadie",
	}, tok)
	wantStatus(t, w, http.StatusNotFound)
}

func TestCountryDeleteReferenced(t *testing.T) {
	db, r := newTestServer(t)
	tok := adminToken(t, db)

	wantStatus(t, doJSON(t, r, http.MethodPost, "/api/pais", map[string]any{
		"codigo_pais": "HND", "nombre": "Honduras",
	}, tok), http.StatusCreated)

	w := doJSON(t, r, http.MethodPost, "/api/empresa", map[string]any{
		"nombre": "Acme", "pais": "HND", "sector": "Fintech",
	}, tok)
	wantStatus(t, w, http.StatusCreated)
	var company models.Company
	decodeBody(t, w, &company)

	// still referenced
	wantStatus(t, doJSON(t, r, http.MethodDelete, "/api/pais?codigo_pais=HND", nil, tok), http.StatusConflict)

	if err := db.Delete(&models.Company{}, company.ID).Error; err != nil {
		t.Fatal(err)
	}
	wantStatus(t, doJSON(t, r, http.MethodDelete, "/api/pais?codigo_pais=HND", nil, tok), http.StatusOK)
	wantStatus(t, doJSON(t, r, http.MethodDelete, "/api/pais?codigo_pais=HND", nil, tok), http.StatusNotFound)
}

func TestMutationsRequireToken(t *testing.T) {
	_, r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/pais", map[string]any{
		"codigo_pais": "HND", "nombre": "Honduras",
	}, "")
	wantStatus(t, w, http.StatusUnauthorized)

	// reads stay public
	wantStatus(t, doJSON(t, r, http.MethodGet, "/api/pais", nil, ""), http.StatusOK)
}
