package youtube

import (
	"context"
	"errors"
	"fmt"

	"creator-boost/internal/apperr"
	"creator-boost/internal/models"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Quota unit costs per the Data API cost table. The workflows decide what
// counts as one chargeable operation; these are the building blocks.
const (
	CostVideoLookup   = 1
	CostSearch        = 100
	CostChannelLookup = 1
	// CostChannelAnalysis is the composite channel fetch: identifier
	// search + statistics lookup + recent-videos search.
	CostChannelAnalysis = CostSearch + CostChannelLookup + CostSearch
)

// Client is a read-only YouTube Data API client keyed by a user-supplied
// API key.
type Client struct {
	service *youtube.Service
}

// NewClient builds a client for the given API key. The key is not
// validated here; use ValidateKey for that.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, apperr.New(apperr.MissingCredential, "YouTube API key is not configured")
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// ValidateKey issues the cheapest possible lookup (one unit) to confirm
// the configured key is accepted by the remote API.
func (c *Client) ValidateKey(ctx context.Context) error {
	call := c.service.Videos.List([]string{"id"}).
		Chart("mostPopular").
		MaxResults(1).
		Context(ctx)
	if _, err := call.Do(); err != nil {
		return requestFailed("failed to validate YouTube API key", err)
	}
	return nil
}

// FetchVideo looks up a single video by ID and maps it 1:1 into a
// VideoRecord. The tag list defaults to empty; the thumbnail prefers the
// high-resolution variant over the default one.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*models.VideoRecord, error) {
	call := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, requestFailed("failed to fetch video details", err)
	}
	if len(resp.Items) == 0 {
		return nil, apperr.Newf(apperr.NotFound, "video with ID %q not found", videoID)
	}

	item := resp.Items[0]
	record := &models.VideoRecord{
		ID:           item.Id,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Tags:         item.Snippet.Tags,
		ThumbnailURL: bestThumbnail(item.Snippet.Thumbnails),
		ChannelTitle: item.Snippet.ChannelTitle,
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if item.Statistics != nil {
		record.Stats = models.VideoStats{
			ViewCount:    int64(item.Statistics.ViewCount),
			LikeCount:    int64(item.Statistics.LikeCount),
			CommentCount: int64(item.Statistics.CommentCount),
		}
	}
	return record, nil
}

// SearchBenchmarkVideo finds the most-viewed video for a keyword and
// resolves it through FetchVideo. Two chargeable remote calls result.
func (c *Client) SearchBenchmarkVideo(ctx context.Context, keyword string) (*models.VideoRecord, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(keyword).
		Type("video").
		Order("viewCount").
		MaxResults(1).
		Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, requestFailed("failed to search for benchmark video", err)
	}
	if len(resp.Items) == 0 {
		return nil, apperr.Newf(apperr.NotFound, "no videos found for keyword %q", keyword)
	}
	return c.FetchVideo(ctx, resp.Items[0].Id.VideoId)
}

// FetchChannel resolves a channel identifier (name, handle, or ID) into a
// full ChannelRecord via three sequential remote calls: identifier
// search, statistics lookup, and the five most recent uploads. Any of the
// three failing aborts the whole fetch.
func (c *Client) FetchChannel(ctx context.Context, identifier string) (*models.ChannelRecord, error) {
	searchCall := c.service.Search.List([]string{"snippet"}).
		Q(identifier).
		Type("channel").
		MaxResults(1).
		Context(ctx)
	searchResp, err := searchCall.Do()
	if err != nil {
		return nil, requestFailed("failed to search for YouTube channel", err)
	}
	if len(searchResp.Items) == 0 {
		return nil, apperr.Newf(apperr.NotFound, "channel %q not found", identifier)
	}
	channelID := searchResp.Items[0].Snippet.ChannelId

	statsCall := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx)
	statsResp, err := statsCall.Do()
	if err != nil {
		return nil, requestFailed("failed to fetch channel statistics", err)
	}
	if len(statsResp.Items) == 0 {
		return nil, apperr.New(apperr.NotFound, "could not retrieve channel statistics")
	}
	details := statsResp.Items[0]

	videosCall := c.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(5).
		Context(ctx)
	videosResp, err := videosCall.Do()
	if err != nil {
		return nil, requestFailed("failed to fetch channel videos", err)
	}

	record := &models.ChannelRecord{
		ID:           channelID,
		Title:        details.Snippet.Title,
		Description:  details.Snippet.Description,
		ThumbnailURL: defaultThumbnail(details.Snippet.Thumbnails),
		RecentVideos: []models.VideoSummary{},
	}
	if details.Statistics != nil {
		record.Stats = models.ChannelStats{
			ViewCount:       int64(details.Statistics.ViewCount),
			SubscriberCount: int64(details.Statistics.SubscriberCount),
			VideoCount:      int64(details.Statistics.VideoCount),
		}
	}
	for _, item := range videosResp.Items {
		record.RecentVideos = append(record.RecentVideos, models.VideoSummary{
			ID:    item.Id.VideoId,
			Title: item.Snippet.Title,
		})
	}
	return record, nil
}

func bestThumbnail(thumbs *youtube.ThumbnailDetails) string {
	if thumbs == nil {
		return ""
	}
	if thumbs.High != nil && thumbs.High.Url != "" {
		return thumbs.High.Url
	}
	if thumbs.Default != nil {
		return thumbs.Default.Url
	}
	return ""
}

func defaultThumbnail(thumbs *youtube.ThumbnailDetails) string {
	if thumbs == nil || thumbs.Default == nil {
		return ""
	}
	return thumbs.Default.Url
}

// requestFailed wraps a remote error, surfacing the message from the
// error body when the transport gives us one.
func requestFailed(msg string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return apperr.Wrap(apperr.RequestFailed, fmt.Sprintf("%s: %s", msg, gerr.Message), err)
	}
	return apperr.Wrap(apperr.RequestFailed, msg, err)
}
