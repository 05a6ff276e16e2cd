package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lawkit/fatiao/internal/index"
	"github.com/lawkit/fatiao/internal/models"
)

const defaultHistoryLimit = 10

type askRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id,omitempty"`
}

type askResponse struct {
	SessionID string                  `json:"session_id,omitempty"`
	Decision  *models.RoutingDecision `json:"decision"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		s.respondError(w, http.StatusBadRequest, "question is required")
		return
	}
	if req.SessionID != "" {
		ok, err := s.store.SessionExists(r.Context(), req.SessionID)
		if err != nil {
			s.logger.Error("session lookup failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !ok {
			s.respondError(w, http.StatusNotFound, "session not found")
			return
		}
	}
	s.logger.Debug("ask request", zap.String("session_id", req.SessionID))

	decision, err := s.dispatcher.Route(r.Context(), req.Question)
	if err != nil {
		if errors.Is(err, index.ErrConfigMismatch) {
			s.logger.Error("index/model mismatch", zap.Error(err))
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("routing failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.SessionID != "" {
		entry := &models.HistoryEntry{
			SessionID: req.SessionID,
			Question:  req.Question,
			Answer:    decision.Answer,
			Strategy:  decision.Strategy,
		}
		if err := s.store.AppendHistory(r.Context(), entry); err != nil {
			s.logger.Warn("failed to persist history", zap.Error(err))
		}
	}
	s.respondJSON(w, http.StatusOK, askResponse{SessionID: req.SessionID, Decision: decision})
}

type retrieveRequest struct {
	Query    string   `json:"query"`
	TopK     int      `json:"top_k,omitempty"`
	MinScore *float64 `json:"min_score,omitempty"`
}

func (s *Server) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	var req retrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	topK := req.TopK
	if topK <= 0 {
		topK = s.config.Retrieval.TopK
	}
	minScore := s.config.Retrieval.MinScoreOrDefault()
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	results, err := s.retriever.Retrieve(r.Context(), req.Query, topK, minScore)
	if err != nil {
		if errors.Is(err, index.ErrConfigMismatch) {
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("retrieval failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if results == nil {
		results = []*models.SearchResult{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":   req.Query,
		"results": results,
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := s.store.CreateSession(r.Context())
	if err != nil {
		s.logger.Error("create session failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (s *Server) handleSessionHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ok, err := s.store.SessionExists(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	entries, err := s.store.RecentHistory(r.Context(), id, limit)
	if err != nil {
		s.logger.Error("history lookup failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []*models.HistoryEntry{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": id,
		"history":    entries,
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteSession(r.Context(), id); err != nil {
		s.logger.Error("delete session failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	clauseCount, err := s.store.CountClauses(r.Context())
	if err != nil {
		s.logger.Error("status: count clauses failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{
		"clauses": clauseCount,
	}
	if snap := s.handle.Current(); snap != nil {
		resp["index"] = map[string]interface{}{
			"vectors":          snap.Size(),
			"dimension":        snap.Dimensions(),
			"model_identifier": snap.ModelIdentifier(),
		}
	} else {
		resp["index"] = nil
	}
	resp["config"] = map[string]interface{}{
		"embedding_provider": s.config.Embedding.Provider,
		"top_k":              s.config.Retrieval.TopK,
		"min_score":          s.config.Retrieval.MinScoreOrDefault(),
		"database_path":      s.config.Storage.DatabasePath,
		"index_dir":          s.config.Storage.IndexDir,
		"law_dir":            s.config.Storage.LawDir,
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
