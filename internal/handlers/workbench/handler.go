package workbench

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	workbenchsvc "gitlab.com/codebench-2025.net/internal/core/services/workbench"
	"gitlab.com/codebench-2025.net/internal/domain"
	"gitlab.com/codebench-2025.net/internal/handlers"
	"gitlab.com/codebench-2025.net/internal/handlers/response"
	"gitlab.com/codebench-2025.net/internal/static/errs"
)

// Handler handles workbench API requests
type Handler struct {
	service workbenchsvc.IWorkbenchService
	logger  primary.Logger
}

// NewHandler creates a new workbench handler
func NewHandler(service workbenchsvc.IWorkbenchService, logger primary.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the API routes for the workbench
func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.HandleFunc("/api/problems", h.ListProblems).Methods("GET")
	router.HandleFunc("/api/workbench/sessions/{sessionId}", h.GetSession).Methods("GET")
	router.HandleFunc("/api/workbench/sessions/{sessionId}/results", h.GetResults).Methods("GET")

	router.Handle("/api/workbench/sessions", mw.Protect(http.HandlerFunc(h.OpenSession))).Methods("POST")
	router.Handle("/api/workbench/sessions/{sessionId}/cases", mw.Protect(http.HandlerFunc(h.AddCase))).Methods("POST")
	router.Handle("/api/workbench/sessions/{sessionId}/cases/{caseIdx}", mw.Protect(http.HandlerFunc(h.RemoveCase))).Methods("DELETE")
	router.Handle("/api/workbench/sessions/{sessionId}/cases/{caseIdx}/variables/{varIdx}", mw.Protect(http.HandlerFunc(h.EditVariable))).Methods("PUT")
	router.Handle("/api/workbench/sessions/{sessionId}/run", mw.Protect(http.HandlerFunc(h.Run))).Methods("POST")
	router.Handle("/api/problems/{problemId}/fixtures", mw.Protect(http.HandlerFunc(h.SaveFixture))).Methods("POST")
}

// OpenSession handles session creation requests
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	session, err := h.service.OpenSession(r.Context(), req.ProblemID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(session)
}

// GetSession handles session retrieval requests
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, session)
}

// EditVariable handles single-variable edit requests
func (h *Handler) EditVariable(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	caseIdx, ok := h.indexVar(w, r, "caseIdx")
	if !ok {
		return
	}
	varIdx, ok := h.indexVar(w, r, "varIdx")
	if !ok {
		return
	}

	var req EditVariableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	session, err := h.service.EditVariable(r.Context(), sessionID, caseIdx, varIdx, req.Value)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, session)
}

// AddCase handles custom test case creation requests
func (h *Handler) AddCase(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.AddCase(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, session)
}

// RemoveCase handles custom test case removal requests
func (h *Handler) RemoveCase(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	caseIdx, ok := h.indexVar(w, r, "caseIdx")
	if !ok {
		return
	}

	session, err := h.service.RemoveCase(r.Context(), sessionID, caseIdx)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, session)
}

// Run handles run requests: the response carries one result row per case,
// and execution failures come back as failing rows with HTTP 200.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	rows, err := h.service.Run(r.Context(), sessionID, domain.Submission{
		Code:          req.Code,
		Language:      req.Language,
		EntryFunction: req.EntryFunction,
		DriverCode:    req.DriverCode,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, rows)
}

// GetResults handles stored result retrieval requests
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Results(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, rows)
}

// ListProblems handles problem list requests
func (h *Handler) ListProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.service.ListProblems(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, problems)
}

// SaveFixture handles fixture authoring requests
func (h *Handler) SaveFixture(w http.ResponseWriter, r *http.Request) {
	problemIDStr := mux.Vars(r)["problemId"]
	problemID, err := uuid.Parse(problemIDStr)
	if err != nil {
		h.logger.Error("Invalid problem ID", "id", problemIDStr)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid problem ID", StatusCode: http.StatusBadRequest})
		return
	}

	var req SaveFixtureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	fixture, err := h.service.SaveFixture(r.Context(), problemID, &domain.Fixture{
		ID:             req.ID,
		Input:          req.Input,
		ExpectedOutput: req.ExpectedOutput,
		IsHidden:       req.IsHidden,
		Position:       req.Position,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(fixture)
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := mux.Vars(r)["sessionId"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Error("Invalid session ID", "id", idStr)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid session ID", StatusCode: http.StatusBadRequest})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) indexVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	idxStr := mux.Vars(r)[name]
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid index", StatusCode: http.StatusBadRequest})
		return 0, false
	}
	return idx, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.SessionNotFound), errors.Is(err, errs.ProblemNotFound):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
	case errors.Is(err, errs.RunInFlight):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusConflict})
	case errors.Is(err, errs.CaseIndexRange), errors.Is(err, errs.VarIndexRange):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
	default:
		h.logger.Error("Request failed", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Internal error", StatusCode: http.StatusInternalServerError})
	}
}
