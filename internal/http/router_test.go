package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/claims-copilot/backend/internal/config"
	"github.com/claims-copilot/backend/internal/fixtures"
	"github.com/claims-copilot/backend/internal/registry"
	"github.com/claims-copilot/backend/internal/session"
	"github.com/claims-copilot/backend/internal/simulate"
	"github.com/claims-copilot/backend/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory(
		fixtures.Cases(),
		fixtures.KnowledgeItems(),
		fixtures.PolicyDocuments(),
		fixtures.PolicyChanges(),
		fixtures.AnalyticsData(),
	)
	sessions := session.NewRegistry(time.Hour)
	reg := registry.New(fixtures.Cases())
	runner := simulate.NewRunner(0)

	cfg := config.Config{CORSAllowed: "*"}
	return Router(cfg, st, sessions, reg, runner, zerolog.Nop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/session", "", gin.H{"role": role})
	if w.Code != http.StatusCreated {
		t.Fatalf("login %s: expected 201, got %d: %s", role, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("login returned empty token")
	}
	return resp.Token
}

func errorField(t *testing.T, w *httptest.ResponseRecorder, field string) string {
	t.Helper()
	var resp struct {
		Error map[string]any `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	s, _ := resp.Error[field].(string)
	return s
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/session", "", gin.H{"role": "admin"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/api/cases", "/api/documents", "/api/policy-changes", "/api/analytics", "/api/navigation"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
		if got := errorField(t, w, "redirect"); got != "/login" {
			t.Fatalf("%s: expected redirect /login, got %q", path, got)
		}
	}
}

func TestAnalyticsRoleGuard(t *testing.T) {
	r := newTestRouter(t)

	agent := login(t, r, "agent")
	w := doJSON(t, r, http.MethodGet, "/api/analytics", agent, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("agent: expected 403, got %d", w.Code)
	}
	if got := errorField(t, w, "redirect"); got != "/workspace" {
		t.Fatalf("agent: expected redirect /workspace, got %q", got)
	}

	manager := login(t, r, "manager")
	w = doJSON(t, r, http.MethodGet, "/api/analytics", manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("manager: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var data struct {
		TotalCasesProcessed int `json:"total_cases_processed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode analytics: %v", err)
	}
	if data.TotalCasesProcessed == 0 {
		t.Fatalf("expected analytics aggregates in response")
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "agent")

	if w := doJSON(t, r, http.MethodGet, "/api/session", token, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 before logout, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/api/session", token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on logout, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/session", token, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestNavigationMatchesRole(t *testing.T) {
	r := newTestRouter(t)

	listPaths := func(token string) []string {
		w := doJSON(t, r, http.MethodGet, "/api/navigation", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("navigation: expected 200, got %d", w.Code)
		}
		var resp struct {
			Items []struct {
				Path string `json:"path"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode navigation: %v", err)
		}
		var paths []string
		for _, i := range resp.Items {
			paths = append(paths, i.Path)
		}
		return paths
	}

	agentPaths := listPaths(login(t, r, "agent"))
	for _, p := range agentPaths {
		if p == "/analytics" {
			t.Fatalf("agent navigation lists /analytics")
		}
	}
	if len(agentPaths) != 4 {
		t.Fatalf("expected 4 agent entries, got %v", agentPaths)
	}

	managerPaths := listPaths(login(t, r, "manager"))
	if len(managerPaths) != 5 || managerPaths[len(managerPaths)-1] != "/analytics" {
		t.Fatalf("expected manager entries ending with /analytics, got %v", managerPaths)
	}
}

// The analytics guard and the navigation menu must answer from the
// same capability table: a role sees the entry exactly when the guard
// lets it through.
func TestGuardEnforcementMatchesMenu(t *testing.T) {
	r := newTestRouter(t)

	for _, role := range []string{"agent", "manager"} {
		token := login(t, r, role)

		w := doJSON(t, r, http.MethodGet, "/api/navigation", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: navigation: expected 200, got %d", role, w.Code)
		}
		var nav struct {
			Items []struct {
				Path string `json:"path"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &nav); err != nil {
			t.Fatalf("%s: decode navigation: %v", role, err)
		}
		var listed bool
		for _, i := range nav.Items {
			if i.Path == "/analytics" {
				listed = true
			}
		}

		w = doJSON(t, r, http.MethodGet, "/api/analytics", token, nil)
		allowed := w.Code == http.StatusOK
		if w.Code != http.StatusOK && w.Code != http.StatusForbidden {
			t.Fatalf("%s: analytics: unexpected status %d", role, w.Code)
		}
		if listed != allowed {
			t.Fatalf("%s: menu lists analytics=%v but guard allows=%v", role, listed, allowed)
		}
	}
}

func TestActiveCaseSelection(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "agent")
	cases := fixtures.Cases()

	w := doJSON(t, r, http.MethodGet, "/api/cases/active", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected default active case, got %d", w.Code)
	}
	var active struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &active); err != nil {
		t.Fatalf("decode active: %v", err)
	}
	if active.ID != cases[0].ID {
		t.Fatalf("expected default %s, got %s", cases[0].ID, active.ID)
	}

	w = doJSON(t, r, http.MethodPut, "/api/cases/active", token, gin.H{"case_id": cases[3].ID})
	if w.Code != http.StatusOK {
		t.Fatalf("select: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/api/cases/active", token, gin.H{"case_id": "case-999"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", w.Code)
	}

	// previous selection survives the rejected request
	w = doJSON(t, r, http.MethodGet, "/api/cases/active", token, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &active); err != nil {
		t.Fatalf("decode active: %v", err)
	}
	if active.ID != cases[3].ID {
		t.Fatalf("expected %s still active, got %s", cases[3].ID, active.ID)
	}
}

func TestDocumentSearch(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "agent")

	w := doJSON(t, r, http.MethodGet, "/api/documents?q=flood", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Items []struct {
			Name         string `json:"name"`
			Jurisdiction string `json:"jurisdiction"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode documents: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 flood documents, got %d", len(resp.Items))
	}
}

func TestCaseKnowledgeFeed(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "agent")

	w := doJSON(t, r, http.MethodGet, "/api/cases/case-001/knowledge", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/cases/case-999/knowledge", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown case, got %d", w.Code)
	}
}

func TestSimulationEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "agent")

	w := doJSON(t, r, http.MethodPost, "/api/simulations", token, gin.H{
		"case_type":            "flood",
		"jurisdiction":         "fl",
		"monetary_value":       150000,
		"skip_manual_review":   true,
		"expedited_processing": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var run struct {
		Token  string `json:"token"`
		Result struct {
			OverallRisk     string `json:"overall_risk"`
			ComplianceScore int    `json:"compliance_score"`
		} `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode run: %v", err)
	}
	if run.Token == "" {
		t.Fatalf("expected a run token")
	}
	if run.Result.OverallRisk != "high" || run.Result.ComplianceScore != 62 {
		t.Fatalf("expected high/62, got %s/%d", run.Result.OverallRisk, run.Result.ComplianceScore)
	}

	// missing required fields
	w = doJSON(t, r, http.MethodPost, "/api/simulations", token, gin.H{"monetary_value": 100})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete scenario, got %d", w.Code)
	}
}
