package consultant

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"creator-boost/internal/apperr"
	"creator-boost/internal/models"
)

type fakeStoryboardGen struct {
	fakeGenerator

	scenes    []models.StoryboardScene
	scenesErr error

	imageCalls  []string
	failAtImage int // 1-based index of the image call that fails, 0 = never
}

func (g *fakeStoryboardGen) GenerateStoryboardScenes(ctx context.Context, title string, outline models.ScriptOutline, lang string) ([]models.StoryboardScene, error) {
	if g.scenesErr != nil {
		return nil, g.scenesErr
	}
	return g.scenes, nil
}

func (g *fakeStoryboardGen) GenerateImage(ctx context.Context, concept string) (string, error) {
	g.imageCalls = append(g.imageCalls, concept)
	if g.failAtImage != 0 && len(g.imageCalls) == g.failAtImage {
		return "", errors.New("image model unavailable")
	}
	return "img-" + concept, nil
}

func fourScenes() []models.StoryboardScene {
	scenes := make([]models.StoryboardScene, 4)
	for i := range scenes {
		scenes[i] = models.StoryboardScene{
			Scene:  fmt.Sprintf("Scene %d", i+1),
			Prompt: fmt.Sprintf("prompt-%d", i+1),
		}
	}
	return scenes
}

func TestStoryboardSequentialProgress(t *testing.T) {
	gen := &fakeStoryboardGen{scenes: fourScenes()}
	fo := NewFollowOns(gen)

	var progress [][2]int
	completed, err := fo.Storyboard(context.Background(), "My Video", models.ScriptOutline{}, "en", func(current, total int) {
		progress = append(progress, [2]int{current, total})
	})
	if err != nil {
		t.Fatalf("Storyboard failed: %v", err)
	}

	if len(completed) != 4 {
		t.Fatalf("completed = %d scenes, want 4", len(completed))
	}
	for i, scene := range completed {
		wantPrompt := fmt.Sprintf("prompt-%d", i+1)
		if scene.Prompt != wantPrompt {
			t.Errorf("scene[%d].Prompt = %q, want %q", i, scene.Prompt, wantPrompt)
		}
		if scene.ImageData != "img-"+wantPrompt {
			t.Errorf("scene[%d].ImageData = %q", i, scene.ImageData)
		}
	}

	want := [][2]int{{1, 4}, {2, 4}, {3, 4}, {4, 4}}
	if len(progress) != len(want) {
		t.Fatalf("progress = %v, want %v", progress, want)
	}
	for i := range want {
		if progress[i] != want[i] {
			t.Errorf("progress[%d] = %v, want %v", i, progress[i], want[i])
		}
	}
}

func TestStoryboardEmptyScenes(t *testing.T) {
	gen := &fakeStoryboardGen{scenes: nil}
	fo := NewFollowOns(gen)

	_, err := fo.Storyboard(context.Background(), "My Video", models.ScriptOutline{}, "en", nil)
	if apperr.KindOf(err) != apperr.EmptyResult {
		t.Errorf("KindOf(err) = %v, want EmptyResult", apperr.KindOf(err))
	}
	if len(gen.imageCalls) != 0 {
		t.Errorf("imageCalls = %v, want none when no scenes exist", gen.imageCalls)
	}
}

func TestStoryboardPartialOnImageFailure(t *testing.T) {
	gen := &fakeStoryboardGen{scenes: fourScenes(), failAtImage: 2}
	fo := NewFollowOns(gen)

	completed, err := fo.Storyboard(context.Background(), "My Video", models.ScriptOutline{}, "en", nil)
	if err == nil {
		t.Fatal("expected an error from the failing scene")
	}

	// Scene 1 survives; scenes 3 and 4 are never attempted.
	if len(completed) != 1 {
		t.Fatalf("completed = %d scenes, want 1", len(completed))
	}
	if completed[0].Prompt != "prompt-1" {
		t.Errorf("completed[0].Prompt = %q, want %q", completed[0].Prompt, "prompt-1")
	}
	if len(gen.imageCalls) != 2 {
		t.Errorf("imageCalls = %d, want 2 (stop at the failure)", len(gen.imageCalls))
	}
}

func TestStoryboardSceneRequestFailure(t *testing.T) {
	gen := &fakeStoryboardGen{scenesErr: errors.New("model overloaded")}
	fo := NewFollowOns(gen)

	completed, err := fo.Storyboard(context.Background(), "My Video", models.ScriptOutline{}, "en", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if completed != nil {
		t.Errorf("completed = %v, want nil when scene generation fails", completed)
	}
	if len(gen.imageCalls) != 0 {
		t.Errorf("imageCalls = %v, want none", gen.imageCalls)
	}
}

func TestThumbnailDelegates(t *testing.T) {
	gen := &fakeStoryboardGen{}
	fo := NewFollowOns(gen)

	image, err := fo.Thumbnail(context.Background(), "bold text over a sunset")
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}
	if image != "img-bold text over a sunset" {
		t.Errorf("image = %q", image)
	}
}
