package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/server/middleware"
)

// handleComputeATSScore computes the ATS scorecard for one of the caller's
// resumes and persists it, replacing any prior scorecard for that resume.
func (s *Server) handleComputeATSScore(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.handlerError(w, &ErrUnauthorized{})
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.handlerError(w, &ErrValidation{Field: "id", Message: "invalid UUID"})
		return
	}

	resume, err := s.db.ResumeForUser(r.Context(), userID, resumeID)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if resume == nil {
		s.handlerError(w, &ErrNotFound{Resource: "resume", ID: resumeID.String()})
		return
	}

	card := s.scorer.CalculateScore(resume.Parsed, resume.Text())

	if err := s.db.UpsertScorecard(r.Context(), resumeID, card); err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, card)
}

// handleGetATSScore returns the stored scorecard for one of the caller's
// resumes, if one has been computed.
func (s *Server) handleGetATSScore(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.handlerError(w, &ErrUnauthorized{})
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.handlerError(w, &ErrValidation{Field: "id", Message: "invalid UUID"})
		return
	}

	// Ownership check before the scorecard lookup.
	resume, err := s.db.ResumeForUser(r.Context(), userID, resumeID)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if resume == nil {
		s.handlerError(w, &ErrNotFound{Resource: "resume", ID: resumeID.String()})
		return
	}

	card, err := s.db.GetScorecard(r.Context(), resumeID)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if card == nil {
		s.handlerError(w, &ErrNotFound{Resource: "scorecard", ID: resumeID.String()})
		return
	}

	s.jsonResponse(w, http.StatusOK, card)
}
