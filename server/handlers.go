package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"creator-boost/chat"
	"creator-boost/consultant"
	"creator-boost/internal/apperr"
	"creator-boost/internal/models"
	"creator-boost/shared/youtube"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	// Partial carries whatever the failing workflow produced before it
	// failed, so clients can keep showing it.
	Partial any `json:"partial,omitempty"`
}

func writeError(w http.ResponseWriter, err error, partial any) {
	kind := apperr.KindOf(err)
	writeJSON(w, statusForKind(kind), errorResponse{
		Error:   err.Error(),
		Kind:    kind.String(),
		Partial: partial,
	})
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation, apperr.InvalidInput:
		return http.StatusBadRequest
	case apperr.MissingCredential:
		return http.StatusUnauthorized
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.RequestFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, apperr.Wrap(apperr.InvalidInput, "invalid request body", err), nil)
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", s.monitor.StatusSummary())
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	fmt.Fprintf(w, "Service unhealthy - %s", s.monitor.StatusSummary())
}

func (s *Server) handleQuota(w http.ResponseWriter, r *http.Request) {
	used := s.quota.Used()
	writeJSON(w, http.StatusOK, map[string]int{
		"units_used":   used,
		"daily_budget": s.quota.Budget(),
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings := s.settings.Get()
	writeJSON(w, http.StatusOK, map[string]any{
		"language":               settings.Language,
		"youtube_key_configured": settings.YouTubeAPIKey != "",
	})
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		YouTubeAPIKey *string `json:"youtube_api_key"`
		Language      *string `json:"language"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Language != nil {
		if err := s.settings.SetLanguage(*req.Language); err != nil {
			writeError(w, err, nil)
			return
		}
	}

	if req.YouTubeAPIKey != nil {
		yt, err := youtube.NewClient(r.Context(), *req.YouTubeAPIKey)
		if err != nil {
			writeError(w, err, nil)
			return
		}
		// Validate with the cheapest possible call before accepting.
		if err := yt.ValidateKey(r.Context()); err != nil {
			writeError(w, err, nil)
			return
		}
		s.quota.Add(youtube.CostVideoLookup)
		if err := s.settings.SetYouTubeAPIKey(*req.YouTubeAPIKey); err != nil {
			writeError(w, err, nil)
			return
		}
		s.swapYouTubeClient(yt)
		log.Println("YouTube API key updated and validated")
	}

	s.handleGetSettings(w, r)
}

func (s *Server) handleIdeas(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Keyword string `json:"keyword"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	ideas, err := s.analyzer.KeywordIdeas(r.Context(), req.Keyword, s.language())
	if err != nil {
		writeError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ideas": ideas})
}

func (s *Server) handleChannelAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	report, err := s.analyzer.AnalyzeChannel(r.Context(), req.Identifier, s.language())
	if err != nil {
		var partial any
		if report != nil {
			partial = report
		}
		writeError(w, err, partial)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleConsult(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BenchmarkInput string `json:"benchmark_input"`
		UserInput      string `json:"user_input"`
		Comparative    bool   `json:"comparative"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	start := time.Now()
	result, err := s.orch.Run(r.Context(), consultant.RunRequest{
		BenchmarkInput: req.BenchmarkInput,
		UserInput:      req.UserInput,
		Comparative:    req.Comparative,
		Language:       s.language(),
	})
	if err != nil {
		if errors.Is(err, consultant.ErrRunActive) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Kind: "busy"})
			return
		}
		s.monitor.RecordFailure("consulting run", err, time.Since(start))
		var partial any
		if result != nil && (result.BenchmarkVideo != nil || result.UserVideo != nil) {
			partial = result
		}
		writeError(w, err, partial)
		return
	}
	s.monitor.RecordSuccess("consulting run", time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

type outlineRequest struct {
	Title   string               `json:"title"`
	Outline models.ScriptOutline `json:"outline"`
}

func (s *Server) handleFullScript(w http.ResponseWriter, r *http.Request) {
	var req outlineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	script, err := s.followOns.FullScript(r.Context(), req.Title, req.Outline, s.language())
	if err != nil {
		writeError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"script": script})
}

func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Concept string `json:"concept"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	image, err := s.followOns.Thumbnail(r.Context(), req.Concept)
	if err != nil {
		writeError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_data": image})
}

func (s *Server) handleStoryboard(w http.ResponseWriter, r *http.Request) {
	var req outlineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	scenes, err := s.followOns.Storyboard(r.Context(), req.Title, req.Outline, s.language(), func(current, total int) {
		log.Printf("Storyboard scene %d/%d", current, total)
	})
	if err != nil {
		var partial any
		if len(scenes) > 0 {
			partial = map[string]any{"scenes": scenes}
		}
		writeError(w, err, partial)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenes": scenes})
}

// handleChat streams the model's reply as plain chunked text. The
// session's busy guard turns overlapping sends into 409s.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" {
		writeError(w, apperr.New(apperr.Validation, "message is required"), nil)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, apperr.New(apperr.Unknown, "streaming unsupported"), nil)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	var written int
	err := s.session.Send(r.Context(), req.Message, s.language(), func(partial string) {
		// Each update is the full buffer; emit only the new suffix.
		if len(partial) > written {
			fmt.Fprint(w, partial[written:])
			written = len(partial)
			flusher.Flush()
		}
	})
	if err != nil {
		if errors.Is(err, chat.ErrStreamActive) && written == 0 {
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Kind: "busy"})
			return
		}
		// Headers are already out; log and end the stream.
		log.Printf("Chat stream failed: %v", err)
	}
}
