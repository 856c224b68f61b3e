// Package server exposes every workflow over a small JSON HTTP API, the
// stand-in for the original browser front end.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"creator-boost/analyzer"
	"creator-boost/chat"
	"creator-boost/consultant"
	"creator-boost/shared/ai"
	"creator-boost/shared/config"
	"creator-boost/shared/monitoring"
	"creator-boost/shared/storage"
	"creator-boost/shared/youtube"

	"github.com/robfig/cron/v3"
)

const chatGreeting = "Hi! I'm Creator Boost AI, your channel growth consultant. Ask me anything about growing or monetizing your channel."

type Server struct {
	cfg      *config.Config
	settings *storage.SettingsStore
	quota    *storage.QuotaTracker
	monitor  *monitoring.Monitor

	aiClient  *ai.Client
	orch      *consultant.Orchestrator
	followOns *consultant.FollowOns
	analyzer  *analyzer.Analyzer
	session   *chat.Session

	cron *cron.Cron

	mu sync.Mutex
	yt *youtube.Client
}

// New wires the full application: persisted state, the AI client, the
// optional video-API client, and the workflows on top of them.
func New(cfg *config.Config) (*Server, error) {
	settings, err := storage.NewSettingsStore(cfg.Storage.DataDir, storage.Settings{
		YouTubeAPIKey: cfg.YouTube.APIKey,
		Language:      cfg.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings store: %w", err)
	}

	quota, err := storage.NewQuotaTracker(cfg.Storage.DataDir, cfg.Quota.DailyBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to create quota tracker: %w", err)
	}

	aiClient, err := ai.NewClient(&cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		settings: settings,
		quota:    quota,
		monitor:  monitoring.NewMonitor(),
		aiClient: aiClient,
		cron:     cron.New(),
	}

	// A stored key from a previous session brings the data client up
	// immediately; without one the workflows report missing-credential
	// until the user supplies a key.
	if key := settings.Get().YouTubeAPIKey; key != "" {
		yt, err := youtube.NewClient(context.Background(), key)
		if err != nil {
			log.Printf("Warning: stored YouTube API key unusable: %v", err)
		} else {
			s.yt = yt
		}
	}

	s.orch = consultant.New(s.fetcherOrNil(), aiClient, quota, func(p consultant.Phase) {
		log.Printf("Consulting phase: %s", p)
	})
	s.followOns = consultant.NewFollowOns(aiClient)
	s.analyzer = analyzer.New(s.channelFetcherOrNil(), aiClient, quota)
	s.session = chat.NewSession(aiClient, chatGreeting)

	return s, nil
}

func (s *Server) fetcherOrNil() consultant.VideoFetcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.yt == nil {
		return nil
	}
	return s.yt
}

func (s *Server) channelFetcherOrNil() analyzer.ChannelFetcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.yt == nil {
		return nil
	}
	return s.yt
}

// swapYouTubeClient installs a new data client after a credential edit.
func (s *Server) swapYouTubeClient(yt *youtube.Client) {
	s.mu.Lock()
	s.yt = yt
	s.mu.Unlock()
	s.orch.SetFetcher(s.fetcherOrNil())
	s.analyzer.SetFetcher(s.channelFetcherOrNil())
}

func (s *Server) language() string {
	return s.settings.Get().Language
}

// Start runs the HTTP server until ctx is cancelled. A midnight cron job
// rolls the quota day so the counter resets even with no traffic.
func (s *Server) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc("0 0 * * *", s.quota.Roll); err != nil {
		return fmt.Errorf("failed to schedule quota reset: %w", err)
	}
	s.cron.Start()
	defer s.cron.Stop()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on port %d", s.cfg.Server.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/quota", s.handleQuota)
	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("PUT /api/settings", s.handlePutSettings)
	mux.HandleFunc("POST /api/ideas", s.handleIdeas)
	mux.HandleFunc("POST /api/channel/analyze", s.handleChannelAnalyze)
	mux.HandleFunc("POST /api/consult", s.handleConsult)
	mux.HandleFunc("POST /api/consult/script", s.handleFullScript)
	mux.HandleFunc("POST /api/consult/thumbnail", s.handleThumbnail)
	mux.HandleFunc("POST /api/consult/storyboard", s.handleStoryboard)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	return mux
}
