package models

// StoryboardScene is one scene prompt returned by the AI before any
// images exist.
type StoryboardScene struct {
	Scene  string `json:"scene"`
	Prompt string `json:"prompt"`
}

// GeneratedScene is a storyboard scene with its synthesized image.
// ImageData is empty for scenes that have not been imaged yet.
type GeneratedScene struct {
	StoryboardScene
	// ImageData is the base64-encoded JPEG for the scene.
	ImageData string `json:"image_data"`
}
