package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/claims-copilot/backend/internal/http/middleware"
	"github.com/claims-copilot/backend/internal/models"
	"github.com/claims-copilot/backend/internal/registry"
	"github.com/claims-copilot/backend/internal/session"
	"github.com/claims-copilot/backend/internal/simulate"
	"github.com/claims-copilot/backend/internal/store"
)

type Handler struct {
	Store     store.CaseStore
	Sessions  *session.Registry
	Registry  *registry.Registry
	Runner    *simulate.Runner
	Validator *validator.Validate
	Logger    zerolog.Logger
}

// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type LoginRequest struct {
	Role models.Role `json:"role" validate:"required"`
}

// @Summary Log in with a demo role
// @Description Demo mode: no credentials, the selected role maps to a fixed identity
// @Tags session
// @Accept json
// @Produce json
// @Success 201 {object} models.Session
// @Failure 400 {object} map[string]any
// @Router /api/session [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	s, err := h.Sessions.Login(req.Role)
	if err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown role", req.Role)
		return
	}
	h.Logger.Info().Str("role", string(req.Role)).Str("user", s.User.Name).Msg("login")
	c.JSON(http.StatusCreated, s)
}

// @Summary Current session user
// @Tags session
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/session [get]
func (h *Handler) CurrentSession(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{"user": s.User, "expires_at": s.ExpiresAt})
}

// @Summary Log out
// @Tags session
// @Success 204
// @Router /api/session [delete]
func (h *Handler) Logout(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	h.Sessions.Logout(s.Token)
	c.Status(http.StatusNoContent)
}

// Navigation returns the menu entries for the session role, derived
// from the same table the route guard enforces.
// @Summary Navigation entries for the session role
// @Tags session
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/navigation [get]
func (h *Handler) Navigation(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	entries := session.NavForRole(s.User.Role)
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

// @Summary List cases
// @Tags cases
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/cases [get]
func (h *Handler) CasesList(c *gin.Context) {
	items, err := h.Store.ListCases(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list cases", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// @Summary Case details
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} models.Case
// @Failure 404 {object} map[string]any
// @Router /api/cases/{id} [get]
func (h *Handler) CaseDetails(c *gin.Context) {
	id := c.Param("id")
	item, err := h.Store.GetCase(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Case not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get case", err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Knowledge copilot feed for a case
// @Tags knowledge
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} map[string]any
// @Router /api/cases/{id}/knowledge [get]
func (h *Handler) CaseKnowledge(c *gin.Context) {
	id := c.Param("id")
	items, err := h.Store.KnowledgeForCase(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Case not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load knowledge items", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// @Summary Active case
// @Tags cases
// @Produce json
// @Success 200 {object} models.Case
// @Failure 404 {object} map[string]any
// @Router /api/cases/active [get]
func (h *Handler) ActiveCase(c *gin.Context) {
	active := h.Registry.ActiveCase()
	if active == nil {
		// a defined empty state, not a failure
		writeError(c, http.StatusNotFound, "NO_ACTIVE_CASE", "No case selected", nil)
		return
	}
	c.JSON(http.StatusOK, active)
}

type SelectCaseRequest struct {
	CaseID string `json:"case_id"`
}

// @Summary Select the active case
// @Tags cases
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/cases/active [put]
func (h *Handler) SetActiveCase(c *gin.Context) {
	var req SelectCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Registry.SetActiveCase(req.CaseID); err != nil {
		if errors.Is(err, registry.ErrUnknownCase) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Case not in registry", req.CaseID)
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL", "Failed to select case", err.Error())
		return
	}

	active := h.Registry.ActiveCase()
	if active == nil {
		c.JSON(http.StatusOK, gin.H{"active_case": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_case": active})
}

// @Summary Search the policy document library
// @Tags documents
// @Produce json
// @Param q query string false "Substring matched against name or jurisdiction"
// @Param type query string false "Document type (all, policy, regulation, sop)"
// @Param jurisdiction query string false "Jurisdiction (all or exact value)"
// @Success 200 {object} map[string]any
// @Router /api/documents [get]
func (h *Handler) DocumentsList(c *gin.Context) {
	f := store.DocumentFilter{
		Query:        c.Query("q"),
		Type:         c.DefaultQuery("type", "all"),
		Jurisdiction: c.DefaultQuery("jurisdiction", "all"),
	}
	items, err := h.Store.ListDocuments(c.Request.Context(), f)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list documents", err.Error())
		return
	}

	stats := gin.H{"total": len(items), "policy": 0, "regulation": 0, "sop": 0}
	for _, d := range items {
		if n, ok := stats[d.Type].(int); ok {
			stats[d.Type] = n + 1
		}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "stats": stats})
}

// @Summary Policy drift feed
// @Tags documents
// @Produce json
// @Param severity query string false "Severity filter (Low, Medium, High)"
// @Success 200 {object} map[string]any
// @Router /api/policy-changes [get]
func (h *Handler) PolicyChangesList(c *gin.Context) {
	items, err := h.Store.ListPolicyChanges(c.Request.Context(), c.Query("severity"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list policy changes", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type SimulationRequest struct {
	CaseType            string  `json:"case_type" validate:"required"`
	Jurisdiction        string  `json:"jurisdiction" validate:"required"`
	MonetaryValue       float64 `json:"monetary_value" validate:"gte=0"`
	Decision            string  `json:"decision"`
	SkipManualReview    bool    `json:"skip_manual_review"`
	ExpeditedProcessing bool    `json:"expedited_processing"`
}

// @Summary Run a what-if compliance simulation
// @Description Evaluates the scenario against the compliance rule table. One run per session at a time.
// @Tags simulations
// @Accept json
// @Produce json
// @Success 200 {object} simulate.Run
// @Failure 409 {object} map[string]any
// @Router /api/simulations [post]
func (h *Handler) SimulationRun(c *gin.Context) {
	var req SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	s, _ := middleware.CurrentSession(c)
	run, err := h.Runner.Run(c.Request.Context(), s.Token, simulate.Input{
		CaseType:            req.CaseType,
		Jurisdiction:        req.Jurisdiction,
		MonetaryValue:       req.MonetaryValue,
		Decision:            req.Decision,
		SkipManualReview:    req.SkipManualReview,
		ExpeditedProcessing: req.ExpeditedProcessing,
	})
	if err != nil {
		if errors.Is(err, simulate.ErrRunInFlight) {
			writeError(c, http.StatusConflict, "SIMULATION_IN_FLIGHT", "A simulation is already running for this session", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "SIMULATION_ERROR", "Simulation failed", err.Error())
		return
	}

	h.Logger.Info().
		Str("run_token", run.Token).
		Str("risk", string(run.Result.OverallRisk)).
		Int("score", run.Result.ComplianceScore).
		Msg("simulation completed")
	c.JSON(http.StatusOK, run)
}

// @Summary Manager analytics aggregates
// @Tags analytics
// @Produce json
// @Success 200 {object} models.Analytics
// @Router /api/analytics [get]
func (h *Handler) AnalyticsView(c *gin.Context) {
	data, err := h.Store.Analytics(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, data)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
