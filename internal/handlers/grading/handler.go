package grading

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/primary"
	gradingsvc "github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/services/grading"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/handlers"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/handlers/response"
)

// GradingHandler handles grading API requests
type GradingHandler struct {
	gradingService gradingsvc.IGradingService
	logger         primary.Logger
}

// NewGradingHandler creates a new grading handler
func NewGradingHandler(gradingService gradingsvc.IGradingService, logger primary.Logger) *GradingHandler {
	return &GradingHandler{
		gradingService: gradingService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for GradingHandler. Submissions
// are scored per user, so only the submit route sits behind the JWT
// middleware.
func (h *GradingHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.HandleFunc("/api/problems/{problemId}/run", h.RunCode).Methods("POST")
	router.Handle("/api/problems/{problemId}/submit", mw.JWTMiddleware(http.HandlerFunc(h.SubmitCode))).Methods("POST")
	router.HandleFunc("/api/problems/{problemId}/starter-code", h.GetStarterCode).Methods("GET")
}

// RunCode handles sample-run requests
func (h *GradingHandler) RunCode(w http.ResponseWriter, r *http.Request) {
	problemID, ok := h.problemID(w, r)
	if !ok {
		return
	}

	var req RunCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode run request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	outcome, err := h.gradingService.RunCode(r.Context(), &gradingsvc.RunRequest{
		ProblemID:     problemID,
		Code:          req.Code,
		Language:      req.Language,
		SectionLinkID: req.SectionLinkID,
	})
	if err != nil {
		h.logger.Error("Run failed", "problemId", problemID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, outcome)
}

// SubmitCode handles graded submission requests
func (h *GradingHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	problemID, ok := h.problemID(w, r)
	if !ok {
		return
	}

	userID, ok := handlers.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode submit request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	outcome, err := h.gradingService.SubmitCode(r.Context(), &gradingsvc.SubmitRequest{
		ProblemID:     problemID,
		Code:          req.Code,
		Language:      req.Language,
		UserID:        userID,
		AssessmentID:  req.AssessmentID,
		SectionID:     req.SectionID,
		SectionLinkID: req.SectionLinkID,
	})
	if err != nil {
		h.logger.Error("Submit failed", "problemId", problemID, "userId", userID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, outcome)
}

// GetStarterCode handles starter-code retrieval for editors
func (h *GradingHandler) GetStarterCode(w http.ResponseWriter, r *http.Request) {
	problemID, ok := h.problemID(w, r)
	if !ok {
		return
	}

	language := r.URL.Query().Get("language")
	starter, err := h.gradingService.GetStarterCode(r.Context(), problemID, language)
	if err != nil {
		h.logger.Error("Failed to get starter code", "problemId", problemID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, StarterCodeResponse{
		Language:    language,
		StarterCode: starter,
	})
}

func (h *GradingHandler) problemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	problemID, err := uuid.Parse(vars["problemId"])
	if err != nil {
		h.logger.Error("Invalid problem ID", "id", vars["problemId"])
		http.Error(w, "Invalid problem ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return problemID, true
}
