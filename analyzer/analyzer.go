// Package analyzer holds the lighter AI workflows: keyword brainstorming
// and the channel SWOT analysis.
package analyzer

import (
	"context"
	"log"
	"sync"

	"creator-boost/internal/apperr"
	"creator-boost/internal/models"
	"creator-boost/shared/storage"
	"creator-boost/shared/youtube"
)

// ChannelFetcher is the slice of the data client the channel workflow
// needs.
type ChannelFetcher interface {
	FetchChannel(ctx context.Context, identifier string) (*models.ChannelRecord, error)
}

// Generator is the slice of the AI client these workflows need.
type Generator interface {
	GenerateKeywordIdeas(ctx context.Context, keyword, lang string) ([]models.VideoIdea, error)
	GenerateChannelAnalysis(ctx context.Context, channel *models.ChannelRecord, lang string) (*models.ChannelAnalysis, error)
}

// ChannelReport is a channel fetch plus its analysis. Analysis is nil
// when generation failed after the fetch succeeded; the fetched channel
// is still shown.
type ChannelReport struct {
	Channel  *models.ChannelRecord   `json:"channel"`
	Analysis *models.ChannelAnalysis `json:"analysis,omitempty"`
}

type Analyzer struct {
	mu      sync.Mutex
	fetcher ChannelFetcher
	gen     Generator
	quota   *storage.QuotaTracker
}

func New(fetcher ChannelFetcher, gen Generator, quota *storage.QuotaTracker) *Analyzer {
	return &Analyzer{fetcher: fetcher, gen: gen, quota: quota}
}

// SetFetcher swaps the data client after a credential change.
func (a *Analyzer) SetFetcher(fetcher ChannelFetcher) {
	a.mu.Lock()
	a.fetcher = fetcher
	a.mu.Unlock()
}

// KeywordIdeas brainstorms video ideas for a keyword. Only the AI is
// involved; no video-API credential or quota charge applies.
func (a *Analyzer) KeywordIdeas(ctx context.Context, keyword, lang string) ([]models.VideoIdea, error) {
	if keyword == "" {
		return nil, apperr.New(apperr.Validation, "keyword is required")
	}
	return a.gen.GenerateKeywordIdeas(ctx, keyword, lang)
}

// AnalyzeChannel fetches a channel (one aggregate quota charge for the
// three-call composite) and runs the SWOT analysis over it.
func (a *Analyzer) AnalyzeChannel(ctx context.Context, identifier, lang string) (*ChannelReport, error) {
	a.mu.Lock()
	fetcher := a.fetcher
	a.mu.Unlock()

	if fetcher == nil {
		return nil, apperr.New(apperr.MissingCredential, "YouTube API key is not configured")
	}
	if identifier == "" {
		return nil, apperr.New(apperr.Validation, "channel name or ID is required")
	}

	channel, err := fetcher.FetchChannel(ctx, identifier)
	if err != nil {
		return nil, err
	}
	a.quota.Add(youtube.CostChannelAnalysis)

	report := &ChannelReport{Channel: channel}
	analysis, err := a.gen.GenerateChannelAnalysis(ctx, channel, lang)
	if err != nil {
		return report, err
	}
	report.Analysis = analysis
	log.Printf("Channel analysis complete: %s (%d subscribers)", channel.Title, channel.Stats.SubscriberCount)
	return report, nil
}
