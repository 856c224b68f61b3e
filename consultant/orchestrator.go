// Package consultant runs the multi-step benchmark consulting workflow:
// resolve and fetch the input videos, then request a structured growth
// analysis, exposing the current phase to the caller along the way.
package consultant

import (
	"context"
	"errors"
	"log"
	"sync"

	"creator-boost/internal/apperr"
	"creator-boost/internal/models"
	"creator-boost/shared/storage"
	"creator-boost/shared/youtube"
)

// Phase is the orchestrator's observable step label.
type Phase string

const (
	PhaseIdle              Phase = "idle"
	PhaseFetchingUser      Phase = "fetching_user_video"
	PhaseFetchingBenchmark Phase = "fetching_benchmark"
	PhaseGenerating        Phase = "generating"
	PhaseDone              Phase = "done"
	PhaseError             Phase = "error"
)

// ErrRunActive is returned when Run is called while another run is in
// flight. Runs are never interleaved or queued.
var ErrRunActive = errors.New("a consulting run is already in progress")

// VideoFetcher is the slice of the data client the orchestrator needs.
type VideoFetcher interface {
	FetchVideo(ctx context.Context, videoID string) (*models.VideoRecord, error)
	SearchBenchmarkVideo(ctx context.Context, keyword string) (*models.VideoRecord, error)
}

// Generator is the slice of the AI client the consulting workflow and
// its follow-on jobs need.
type Generator interface {
	GenerateConsulting(ctx context.Context, benchmark, user *models.VideoRecord, lang string) (*models.ConsultingResult, error)
	GenerateFullScript(ctx context.Context, title string, outline models.ScriptOutline, lang string) (string, error)
	GenerateStoryboardScenes(ctx context.Context, title string, outline models.ScriptOutline, lang string) ([]models.StoryboardScene, error)
	GenerateImage(ctx context.Context, concept string) (string, error)
}

// RunRequest is one orchestration run's input.
type RunRequest struct {
	// BenchmarkInput is a video URL, bare ID, or search keyword.
	BenchmarkInput string
	// UserInput is the user's own video URL or ID; required when
	// Comparative is set, ignored otherwise.
	UserInput   string
	Comparative bool
	Language    string
}

// RunResult carries everything a run produced. On failure the videos
// fetched before the failing phase are still present so callers can keep
// showing them.
type RunResult struct {
	BenchmarkVideo *models.VideoRecord       `json:"benchmark_video,omitempty"`
	UserVideo      *models.VideoRecord       `json:"user_video,omitempty"`
	Analysis       *models.ConsultingResult  `json:"analysis,omitempty"`
}

// Orchestrator sequences one consulting run at a time.
type Orchestrator struct {
	mu      sync.Mutex
	running bool
	phase   Phase

	fetcher VideoFetcher
	gen     Generator
	quota   *storage.QuotaTracker
	onPhase func(Phase)
}

// New builds an orchestrator. fetcher may be nil when no video-API key is
// configured yet; runs then fail with a missing-credential error until
// SetFetcher installs one.
func New(fetcher VideoFetcher, gen Generator, quota *storage.QuotaTracker, onPhase func(Phase)) *Orchestrator {
	return &Orchestrator{
		fetcher: fetcher,
		gen:     gen,
		quota:   quota,
		phase:   PhaseIdle,
		onPhase: onPhase,
	}
}

// SetFetcher swaps the data client, typically after the user edits the
// API key. It does not interrupt an active run; the run keeps the client
// it started with.
func (o *Orchestrator) SetFetcher(fetcher VideoFetcher) {
	o.mu.Lock()
	o.fetcher = fetcher
	o.mu.Unlock()
}

// Phase reports the current step label.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
	if o.onPhase != nil {
		o.onPhase(p)
	}
}

// Run executes one orchestration run. A second call while one is active
// returns ErrRunActive. Any prior result is discarded when a new run
// starts. The returned RunResult is non-nil even on failure once any
// video has been fetched.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, ErrRunActive
	}
	o.running = true
	fetcher := o.fetcher
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	// Preconditions, checked before any network call or quota charge.
	if fetcher == nil {
		o.setPhase(PhaseError)
		return nil, apperr.New(apperr.MissingCredential, "YouTube API key is not configured")
	}
	if req.BenchmarkInput == "" {
		o.setPhase(PhaseError)
		return nil, apperr.New(apperr.Validation, "benchmark video or keyword is required")
	}
	if req.Comparative && req.UserInput == "" {
		o.setPhase(PhaseError)
		return nil, apperr.New(apperr.Validation, "your video URL is required for a comparative run")
	}

	result := &RunResult{}

	if req.Comparative {
		o.setPhase(PhaseFetchingUser)
		userID := youtube.ExtractVideoID(req.UserInput)
		if userID == "" {
			o.setPhase(PhaseError)
			return result, apperr.New(apperr.InvalidInput, "invalid URL for your video")
		}
		userVideo, err := fetcher.FetchVideo(ctx, userID)
		if err != nil {
			o.setPhase(PhaseError)
			return result, err
		}
		o.quota.Add(youtube.CostVideoLookup)
		result.UserVideo = userVideo
	}

	o.setPhase(PhaseFetchingBenchmark)
	var benchmark *models.VideoRecord
	var err error
	if benchmarkID := youtube.ExtractVideoID(req.BenchmarkInput); benchmarkID != "" {
		benchmark, err = fetcher.FetchVideo(ctx, benchmarkID)
		if err == nil {
			o.quota.Add(youtube.CostVideoLookup)
		}
	} else {
		// Keyword path: a search plus the follow-up lookup.
		benchmark, err = fetcher.SearchBenchmarkVideo(ctx, req.BenchmarkInput)
		if err == nil {
			o.quota.Add(youtube.CostSearch + youtube.CostVideoLookup)
		}
	}
	if err != nil {
		o.setPhase(PhaseError)
		return result, err
	}
	result.BenchmarkVideo = benchmark

	o.setPhase(PhaseGenerating)
	analysis, err := o.gen.GenerateConsulting(ctx, benchmark, result.UserVideo, req.Language)
	if err != nil {
		o.setPhase(PhaseError)
		return result, err
	}
	result.Analysis = analysis

	o.setPhase(PhaseDone)
	log.Printf("Consulting run complete: mode=%s benchmark=%s", analysis.Mode, benchmark.ID)
	return result, nil
}
