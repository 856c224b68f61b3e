package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"creator-boost/internal/apperr"
	"creator-boost/internal/models"

	"google.golang.org/genai"
)

// GenerateKeywordIdeas brainstorms five structured video ideas for a
// keyword.
func (c *Client) GenerateKeywordIdeas(ctx context.Context, keyword, lang string) ([]models.VideoIdea, error) {
	text, err := c.generateJSON(ctx, keywordPrompt(keyword, lang), videoIdeasSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate video ideas: %w", err)
	}
	var ideas []models.VideoIdea
	if err := json.Unmarshal([]byte(extractJSON(text)), &ideas); err != nil {
		return nil, fmt.Errorf("failed to parse video ideas: %w", err)
	}
	return ideas, nil
}

// GenerateChannelAnalysis runs the SWOT-style analysis over a fetched
// channel record.
func (c *Client) GenerateChannelAnalysis(ctx context.Context, channel *models.ChannelRecord, lang string) (*models.ChannelAnalysis, error) {
	text, err := c.generateJSON(ctx, channelPrompt(channel, lang), channelAnalysisSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate channel analysis: %w", err)
	}
	var analysis models.ChannelAnalysis
	if err := json.Unmarshal([]byte(extractJSON(text)), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse channel analysis: %w", err)
	}
	return &analysis, nil
}

// GenerateConsulting requests the structured growth analysis. Passing a
// user record switches the request to comparative mode; the returned
// result carries that mode as an explicit tag.
func (c *Client) GenerateConsulting(ctx context.Context, benchmark, user *models.VideoRecord, lang string) (*models.ConsultingResult, error) {
	comparative := user != nil
	text, err := c.generateJSON(ctx, consultingPrompt(benchmark, user, lang), consultingSchema(comparative))
	if err != nil {
		return nil, fmt.Errorf("failed to generate consulting analysis: %w", err)
	}
	result, err := decodeConsulting([]byte(extractJSON(text)), comparative)
	if err != nil {
		return nil, fmt.Errorf("failed to parse consulting analysis: %w", err)
	}
	return result, nil
}

// decodeConsulting decodes the response envelope into the union branch
// selected by the request mode. The mode decides the branch; the JSON
// shape is never inspected to pick one.
func decodeConsulting(data []byte, comparative bool) (*models.ConsultingResult, error) {
	var envelope struct {
		BenchmarkVideoAnalysis models.BenchmarkAnalysis `json:"benchmarkVideoAnalysis"`
		ConsultingResult       json.RawMessage          `json:"consultingResult"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	result := &models.ConsultingResult{
		BenchmarkAnalysis: envelope.BenchmarkVideoAnalysis,
	}
	if comparative {
		result.Mode = models.ModeComparative
		var body models.ComparativeAnalysis
		if err := json.Unmarshal(envelope.ConsultingResult, &body); err != nil {
			return nil, err
		}
		result.Comparative = &body
	} else {
		result.Mode = models.ModeProposal
		var body models.VideoProposal
		if err := json.Unmarshal(envelope.ConsultingResult, &body); err != nil {
			return nil, err
		}
		result.Proposal = &body
	}
	return result, nil
}

// GenerateFullScript expands a script outline into a complete spoken
// script as free-form text.
func (c *Client) GenerateFullScript(ctx context.Context, title string, outline models.ScriptOutline, lang string) (string, error) {
	script, err := c.generateText(ctx, fullScriptPrompt(title, outline, lang))
	if err != nil {
		return "", fmt.Errorf("failed to generate full script: %w", err)
	}
	return script, nil
}

// GenerateStoryboardScenes asks for the ordered scene prompts of a
// storyboard. Callers are responsible for treating an empty sequence as
// a failure.
func (c *Client) GenerateStoryboardScenes(ctx context.Context, title string, outline models.ScriptOutline, lang string) ([]models.StoryboardScene, error) {
	text, err := c.generateJSON(ctx, storyboardPrompt(title, outline, lang), storyboardScenesSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate storyboard scenes: %w", err)
	}
	var scenes []models.StoryboardScene
	if err := json.Unmarshal([]byte(extractJSON(text)), &scenes); err != nil {
		return nil, fmt.Errorf("failed to parse storyboard scenes: %w", err)
	}
	return scenes, nil
}

// GenerateImage synthesizes one 16:9 JPEG for a prompt and returns it
// base64-encoded.
func (c *Client) GenerateImage(ctx context.Context, concept string) (string, error) {
	resp, err := c.client.Models.GenerateImages(ctx, c.imageModel, thumbnailPrompt(concept), &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "16:9",
		OutputMIMEType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("image generation request failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", apperr.New(apperr.EmptyResult, "image generation produced no image")
	}
	return base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes), nil
}
