package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/batch"
	"github.com/jonathan/job-matcher/internal/server/middleware"
	"github.com/jonathan/job-matcher/internal/types"
)

// recomputeRequest is the optional body for POST /matches/recompute.
type recomputeRequest struct {
	ResumeID *uuid.UUID `json:"resume_id,omitempty"`
	MinScore *float64   `json:"min_score,omitempty"`
}

// handleRecomputeMatches recomputes and replaces the caller's stored match
// set against all active jobs.
func (s *Server) handleRecomputeMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.handlerError(w, &ErrUnauthorized{})
		return
	}

	var req recomputeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.handlerError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
			return
		}
	}

	minScore := s.minScore
	if req.MinScore != nil {
		if *req.MinScore < 0 || *req.MinScore > 100 {
			s.handlerError(w, &ErrValidation{Field: "min_score", Message: "must be between 0 and 100"})
			return
		}
		minScore = *req.MinScore
	}

	stats, err := s.batchService.ComputeMatchesForUser(r.Context(), userID, req.ResumeID, minScore)
	if err != nil {
		if batch.IsNotFound(err) {
			s.handlerError(w, &ErrNotFound{Resource: "resume", ID: userID.String()})
			return
		}
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, stats)
}

// matchListResponse is the paginated envelope for GET /matches.
type matchListResponse struct {
	Matches    []types.MatchResult `json:"matches"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// handleListMatches lists the caller's stored matches ordered by score.
// Query parameters: page, page_size, min_score.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.handlerError(w, &ErrUnauthorized{})
		return
	}

	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(r, "page_size", 20)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	minScore := queryFloat(r, "min_score", 0)

	matches, total, err := s.db.ListUserMatches(r.Context(), userID, page, pageSize, minScore)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	totalPages := (total + pageSize - 1) / pageSize
	s.jsonResponse(w, http.StatusOK, matchListResponse{
		Matches:    matches,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// handleGetMatch fetches a single stored match. Matches belonging to other
// users are reported as not found.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.handlerError(w, &ErrUnauthorized{})
		return
	}

	matchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.handlerError(w, &ErrValidation{Field: "id", Message: "invalid UUID"})
		return
	}

	match, err := s.db.GetMatch(r.Context(), matchID)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if match == nil || match.UserID != userID {
		s.handlerError(w, &ErrNotFound{Resource: "match", ID: matchID.String()})
		return
	}

	s.jsonResponse(w, http.StatusOK, match)
}

// handleMatchSuggestions explains why a user has few or no matches.
func (s *Server) handleMatchSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.handlerError(w, &ErrUnauthorized{})
		return
	}

	matchCount, err := s.db.CountUserMatches(r.Context(), userID)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	suggestions, err := s.batchService.SuggestionsForUser(r.Context(), userID, matchCount)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"match_count": matchCount,
		"suggestions": suggestions,
	})
}

// handleRecomputeAll runs the global batch recompute across all active users.
func (s *Server) handleRecomputeAll(w http.ResponseWriter, r *http.Request) {
	var req recomputeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.handlerError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
			return
		}
	}

	minScore := s.minScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	report, err := s.batchService.ComputeMatchesForAllUsers(r.Context(), minScore)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func queryFloat(r *http.Request, key string, defaultValue float64) float64 {
	if v := r.URL.Query().Get(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
