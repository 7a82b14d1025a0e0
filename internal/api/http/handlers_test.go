package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/arkhamworks/investigator/internal/api"
	"github.com/arkhamworks/investigator/internal/credential"
	"github.com/arkhamworks/investigator/internal/rules"
	bboltstore "github.com/arkhamworks/investigator/internal/storage/bbolt"
	"github.com/arkhamworks/investigator/internal/systems/coc6"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := bboltstore.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	rs, err := coc6.NewRuleSet()
	if err != nil {
		t.Fatalf("rule set: %v", err)
	}
	service := api.NewService(store, credential.NewGate(store), rules.NewRegistry(rs),
		map[string]api.Labeler{coc6.System: coc6.LabelFor}, coc6.System)

	e := echo.New()
	NewRouter(NewHandler(service), zerolog.Nop()).Setup(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, value := range header {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAddThenGetCharacter(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/character/add",
		`{"character":{"profile":{"name":"Harvey","items":{},"notes":""},"parameters":{"str":{"value":12,"tmp":0,"other":0}},"variables":{},"skillset":{},"custom":[]}}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var added struct {
		ID string `json:"id"`
	}
	decode(t, rec, &added)
	if added.ID == "" {
		t.Fatal("expected generated id")
	}

	rec = do(t, e, http.MethodPost, "/api/v1/character/get",
		`{"id":"`+added.ID+`"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var doc struct {
		Profile struct {
			Name string `json:"name"`
		} `json:"profile"`
	}
	decode(t, rec, &doc)
	if doc.Profile.Name != "Harvey" {
		t.Fatalf("unexpected document: %s", rec.Body.String())
	}
}

func TestGetCharacterNotFoundStatus(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/character/get", `{"id":"nonexistent"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body struct {
		Code string `json:"code"`
	}
	decode(t, rec, &body)
	if body.Code != "NOT_FOUND" {
		t.Fatalf("unexpected error code %q", body.Code)
	}
}

func TestPermissionDeniedStatus(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/character/add", `{"character":{}}`, nil)
	var added struct {
		ID string `json:"id"`
	}
	decode(t, rec, &added)

	rec = do(t, e, http.MethodPost, "/api/v1/password/set",
		`{"id":"`+added.ID+`","referrer":"ref","password":"hunter2"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("set password: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/api/v1/character/set",
		`{"id":"`+added.ID+`","referrer":"ref","token":"stale","character":{}}`, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Code string `json:"code"`
	}
	decode(t, rec, &body)
	if body.Code != "PERMISSION_DENIED" {
		t.Fatalf("unexpected error code %q", body.Code)
	}
}

func TestPasswordFlow(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/character/add", `{"character":{}}`, nil)
	var added struct {
		ID string `json:"id"`
	}
	decode(t, rec, &added)

	rec = do(t, e, http.MethodPost, "/api/v1/password/has", `{"id":"`+added.ID+`"}`, nil)
	var has struct {
		HasPassword bool `json:"hasPassword"`
	}
	decode(t, rec, &has)
	if has.HasPassword {
		t.Fatal("expected unprotected character")
	}

	rec = do(t, e, http.MethodPost, "/api/v1/password/set",
		`{"id":"`+added.ID+`","referrer":"ref","password":"hunter2"}`, nil)
	var set struct {
		Token string `json:"token"`
	}
	decode(t, rec, &set)
	if set.Token == "" {
		t.Fatal("expected token from set")
	}

	rec = do(t, e, http.MethodPost, "/api/v1/password/verify",
		`{"id":"`+added.ID+`","referrer":"ref","password":"hunter2"}`, nil)
	var verify struct {
		Token string `json:"token"`
	}
	decode(t, rec, &verify)
	if verify.Token == "" {
		t.Fatal("expected token from verify")
	}

	rec = do(t, e, http.MethodPost, "/api/v1/character/update",
		`{"id":"`+added.ID+`","referrer":"ref","token":"`+verify.Token+`","patch":{"variables":{"san":60}}}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("update with live token: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestErrorMessageLocalized(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/character/get", `{"id":"missing"}`,
		map[string]string{"Accept-Language": "ja,en;q=0.8"})
	var body struct {
		Locale string `json:"locale"`
	}
	decode(t, rec, &body)
	if body.Locale != "ja" {
		t.Fatalf("expected ja catalog, got %q", body.Locale)
	}
}

func TestInvalidPayloadRejected(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/character/get", `{not json`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRulesEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/systems/coc6/rules", "",
		map[string]string{"Accept-Language": "ja"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var view struct {
		System     string `json:"system"`
		Parameters []struct {
			Key   string `json:"key"`
			Label string `json:"label"`
		} `json:"parameters"`
	}
	decode(t, rec, &view)
	if view.System != "coc6" {
		t.Fatalf("unexpected system %q", view.System)
	}
	if len(view.Parameters) != 9 {
		t.Fatalf("expected 9 parameters, got %d", len(view.Parameters))
	}

	rec = do(t, e, http.MethodGet, "/api/v1/systems/dnd5e/rules", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown system, got %d", rec.Code)
	}
}

func TestSystemsEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/systems", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Systems []string `json:"systems"`
	}
	decode(t, rec, &body)
	if len(body.Systems) != 1 || body.Systems[0] != "coc6" {
		t.Fatalf("unexpected systems %v", body.Systems)
	}
}
