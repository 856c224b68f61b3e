package consultant

import (
	"context"
	"fmt"
	"log"

	"creator-boost/internal/apperr"
	"creator-boost/internal/models"
)

// FollowOns are the user-triggered jobs unlocked by a completed
// consulting result: thumbnail synthesis, full-script expansion, and the
// storyboard loop. Each is independent and carries no retry logic.
type FollowOns struct {
	gen Generator
}

func NewFollowOns(gen Generator) *FollowOns {
	return &FollowOns{gen: gen}
}

// Thumbnail synthesizes one image for a thumbnail concept.
func (f *FollowOns) Thumbnail(ctx context.Context, concept string) (string, error) {
	return f.gen.GenerateImage(ctx, concept)
}

// FullScript expands a proposal's script outline into a complete script.
func (f *FollowOns) FullScript(ctx context.Context, title string, outline models.ScriptOutline, lang string) (string, error) {
	return f.gen.GenerateFullScript(ctx, title, outline, lang)
}

// Storyboard requests the scene prompts for a proposal, then synthesizes
// one image per scene strictly in sequence, reporting {current, total}
// before each scene. A failure aborts the remaining scenes; the scenes
// already imaged are returned alongside the error so callers can keep
// showing them.
func (f *FollowOns) Storyboard(ctx context.Context, title string, outline models.ScriptOutline, lang string, onProgress func(current, total int)) ([]models.GeneratedScene, error) {
	scenes, err := f.gen.GenerateStoryboardScenes(ctx, title, outline, lang)
	if err != nil {
		return nil, err
	}
	if len(scenes) == 0 {
		return nil, apperr.New(apperr.EmptyResult, "no storyboard scenes were generated")
	}

	completed := make([]models.GeneratedScene, 0, len(scenes))
	for i, scene := range scenes {
		if onProgress != nil {
			onProgress(i+1, len(scenes))
		}
		image, err := f.gen.GenerateImage(ctx, scene.Prompt)
		if err != nil {
			return completed, fmt.Errorf("storyboard scene %d/%d failed: %w", i+1, len(scenes), err)
		}
		completed = append(completed, models.GeneratedScene{
			StoryboardScene: scene,
			ImageData:       image,
		})
	}
	log.Printf("Storyboard complete: %d scenes", len(completed))
	return completed, nil
}
