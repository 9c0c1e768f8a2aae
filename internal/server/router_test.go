package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kestrelpoint/funddesk-backend/internal/handlers"
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/middleware"
	"github.com/kestrelpoint/funddesk-backend/internal/repos"
	"github.com/kestrelpoint/funddesk-backend/internal/services"
	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

func newTestRouter(t *testing.T, authEnabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&types.Contact{}, &types.Fund{}, &types.FundContact{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := logger.NewNop()
	contactRepo := repos.NewContactRepo(db, log)
	fundRepo := repos.NewFundRepo(db, log)
	fundContactRepo := repos.NewFundContactRepo(db, log)

	contactSvc := services.NewContactService(db, log, contactRepo, fundContactRepo)
	fundSvc := services.NewFundService(db, log, fundRepo)
	fundContactSvc := services.NewFundContactService(db, log, contactRepo, fundRepo, fundContactRepo)

	return NewRouter(RouterConfig{
		Log:                log,
		AuthMiddleware:     middleware.NewAuthMiddleware(log, authEnabled, "test-secret"),
		ContactHandler:     handlers.NewContactHandler(log, contactSvc),
		FundHandler:        handlers.NewFundHandler(log, fundSvc),
		FundContactHandler: handlers.NewFundContactHandler(log, fundContactSvc),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodGet, "/healthcheck", nil)
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("unexpected response: %d %q", w.Code, w.Body.String())
	}
}

func TestCreateContact(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]string{
		"name":        "John Doe",
		"email":       "john@example.com",
		"phoneNumber": "1234567890",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}

	var body services.ContactDTO
	decodeBody(t, w, &body)
	if body.Name != "John Doe" || body.Email != "john@example.com" || body.PhoneNumber != "1234567890" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.ID == uuid.Nil || body.CreatedAt.IsZero() {
		t.Fatalf("missing generated fields: %+v", body)
	}
	if loc := w.Header().Get("Location"); loc != "/api/contacts/"+body.ID.String() {
		t.Fatalf("unexpected Location %q", loc)
	}
}

func TestCreateContactInvalidName(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]string{"name": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}

	var problem handlers.ProblemDetails
	decodeBody(t, w, &problem)
	if problem.ErrorCode != "Contact.NameRequired" {
		t.Fatalf("unexpected problem: %+v", problem)
	}
	if problem.Instance != "POST /api/contacts" || problem.Status != http.StatusBadRequest {
		t.Fatalf("unexpected problem: %+v", problem)
	}
}

func TestCreateContactMalformedBody(t *testing.T) {
	router := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}

	var problem handlers.ProblemDetails
	decodeBody(t, w, &problem)
	if problem.ErrorCode != "General.ValidationError" {
		t.Fatalf("unexpected problem: %+v", problem)
	}
}

func TestContactLifecycle(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]string{"name": "John Doe"})
	var created services.ContactDTO
	decodeBody(t, w, &created)

	w = doJSON(t, router, http.MethodPut, "/api/contacts/"+created.ID.String(), map[string]string{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", w.Code, w.Body.String())
	}
	var updated services.ContactDTO
	decodeBody(t, w, &updated)
	if updated.Name != "Jane Doe" || updated.Email != "jane@example.com" {
		t.Fatalf("unexpected updated body: %+v", updated)
	}

	w = doJSON(t, router, http.MethodGet, "/api/contacts/"+created.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, "/api/contacts/"+created.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/contacts/"+created.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestCreateFundDuplicateName(t *testing.T) {
	router := newTestRouter(t, false)

	if w := doJSON(t, router, http.MethodPost, "/api/funds", map[string]string{"name": "Growth Fund"}); w.Code != http.StatusCreated {
		t.Fatalf("create status %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodPost, "/api/funds", map[string]string{"name": "growth fund"})
	if w.Code != http.StatusConflict {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var problem handlers.ProblemDetails
	decodeBody(t, w, &problem)
	if problem.ErrorCode != "Fund.Conflict" {
		t.Fatalf("unexpected problem: %+v", problem)
	}
}

func TestCreateFundBatchSkipsExisting(t *testing.T) {
	router := newTestRouter(t, false)

	if w := doJSON(t, router, http.MethodPost, "/api/funds", map[string]string{"name": "Fund A"}); w.Code != http.StatusCreated {
		t.Fatalf("seed status %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodPost, "/api/funds/batch", []string{"Fund A", "Fund A", "Fund B"})
	if w.Code != http.StatusCreated {
		t.Fatalf("batch status %d: %s", w.Code, w.Body.String())
	}
	var created []services.FundDTO
	decodeBody(t, w, &created)
	if len(created) != 1 || created[0].Name != "Fund B" {
		t.Fatalf("unexpected batch result: %+v", created)
	}
}

func TestCreateFundBatchEmpty(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/funds/batch", []string{})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
}

func TestFundSoftDeleteAndRestore(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/funds", map[string]string{"name": "Growth Fund"})
	var fund services.FundDTO
	decodeBody(t, w, &fund)

	if w := doJSON(t, router, http.MethodDelete, "/api/funds/"+fund.ID.String(), nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/funds", nil)
	var active []services.FundDTO
	decodeBody(t, w, &active)
	if len(active) != 0 {
		t.Fatalf("expected no active funds, got %+v", active)
	}

	w = doJSON(t, router, http.MethodGet, "/api/funds?includeDeleted=true", nil)
	var all []services.FundDTO
	decodeBody(t, w, &all)
	if len(all) != 1 {
		t.Fatalf("expected 1 fund with includeDeleted, got %+v", all)
	}

	if w := doJSON(t, router, http.MethodPost, "/api/funds/"+fund.ID.String()+"/restore", nil); w.Code != http.StatusNoContent {
		t.Fatalf("restore status %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, router, http.MethodGet, "/api/funds/"+fund.ID.String(), nil); w.Code != http.StatusOK {
		t.Fatalf("get after restore status %d: %s", w.Code, w.Body.String())
	}
}

func TestAssignContactToUnknownFund(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]string{"name": "John Doe"})
	var contact services.ContactDTO
	decodeBody(t, w, &contact)

	w = doJSON(t, router, http.MethodPost, "/api/fundcontacts", map[string]string{
		"contactId": contact.ID.String(),
		"fundId":    "a6d5a111-9c3e-4b8f-9a51-1f3f9e6a2b10",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var problem handlers.ProblemDetails
	decodeBody(t, w, &problem)
	if problem.ErrorCode != "Fund.NotFound" {
		t.Fatalf("unexpected problem: %+v", problem)
	}
}

func TestAssignAndRemoveContact(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]string{"name": "John Doe"})
	var contact services.ContactDTO
	decodeBody(t, w, &contact)

	w = doJSON(t, router, http.MethodPost, "/api/funds", map[string]string{"name": "Growth Fund"})
	var fund services.FundDTO
	decodeBody(t, w, &fund)

	w = doJSON(t, router, http.MethodPost, "/api/fundcontacts", map[string]string{
		"contactId": contact.ID.String(),
		"fundId":    fund.ID.String(),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("assign status %d: %s", w.Code, w.Body.String())
	}
	var assigned services.FundContactDTO
	decodeBody(t, w, &assigned)
	if assigned.ContactName != "John Doe" || assigned.FundName != "Growth Fund" {
		t.Fatalf("unexpected assignment: %+v", assigned)
	}

	w = doJSON(t, router, http.MethodGet, "/api/fundcontacts/funds/"+fund.ID.String()+"/contacts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status %d: %s", w.Code, w.Body.String())
	}
	var listed []services.FundContactListItemDTO
	decodeBody(t, w, &listed)
	if len(listed) != 1 || listed[0].Name != "John Doe" {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	path := "/api/fundcontacts/" + contact.ID.String() + "/funds/" + fund.ID.String()
	if w := doJSON(t, router, http.MethodDelete, path, nil); w.Code != http.StatusNoContent {
		t.Fatalf("remove status %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, router, http.MethodDelete, path, nil); w.Code != http.StatusNotFound {
		t.Fatalf("second remove status %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteAssignedContactConflicts(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]string{"name": "John Doe"})
	var contact services.ContactDTO
	decodeBody(t, w, &contact)
	w = doJSON(t, router, http.MethodPost, "/api/funds", map[string]string{"name": "Growth Fund"})
	var fund services.FundDTO
	decodeBody(t, w, &fund)
	doJSON(t, router, http.MethodPost, "/api/fundcontacts", map[string]string{
		"contactId": contact.ID.String(),
		"fundId":    fund.ID.String(),
	})

	w = doJSON(t, router, http.MethodDelete, "/api/contacts/"+contact.ID.String(), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var problem handlers.ProblemDetails
	decodeBody(t, w, &problem)
	if problem.ErrorCode != "Contact.CannotDelete" {
		t.Fatalf("unexpected problem: %+v", problem)
	}
}

func TestInvalidUUIDPathParam(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodGet, "/api/contacts/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthEnabledRejectsMissingToken(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/api/funds", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var problem handlers.ProblemDetails
	decodeBody(t, w, &problem)
	if problem.ErrorCode != "General.Unauthorized" {
		t.Fatalf("unexpected problem: %+v", problem)
	}

	// Health stays public.
	if w := doJSON(t, router, http.MethodGet, "/healthcheck", nil); w.Code != http.StatusOK {
		t.Fatalf("healthcheck status %d", w.Code)
	}
}
