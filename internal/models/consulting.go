package models

// ConsultingMode selects which body a ConsultingResult carries. It is
// fixed when the request is built, never inferred from the response.
type ConsultingMode string

const (
	// ModeProposal is the benchmark-only workflow: the result proposes a
	// brand-new video modeled on the benchmark.
	ModeProposal ConsultingMode = "proposal"
	// ModeComparative pits the user's own video against the benchmark.
	ModeComparative ConsultingMode = "comparative"
)

// BenchmarkAnalysis is the part of every consulting result that dissects
// the benchmark video itself.
type BenchmarkAnalysis struct {
	TitleHook             string `json:"titleHook"`
	ContentStrategy       string `json:"contentStrategy"`
	TargetAudience        string `json:"targetAudience"`
	MonetizationPotential string `json:"monetizationPotential"`
}

// ScriptOutline is the structured skeleton of a proposed video.
type ScriptOutline struct {
	Hook         string   `json:"hook"`
	Introduction string   `json:"introduction"`
	MainPoints   []string `json:"mainPoints"`
	CallToAction string   `json:"callToAction"`
	Outro        string   `json:"outro"`
}

// VideoProposal is the ModeProposal body: a full blueprint for a new video.
type VideoProposal struct {
	Titles            []string      `json:"titles"`
	Description       string        `json:"description"`
	Tags              []string      `json:"tags"`
	Script            ScriptOutline `json:"script"`
	ThumbnailConcepts []string      `json:"thumbnailConcepts"`
}

// VideoVerdict is a single-video strength/weakness call in a comparison.
type VideoVerdict struct {
	Strength string `json:"strength"`
	Weakness string `json:"weakness,omitempty"`
	// TacticToAdopt is only produced for the benchmark side.
	TacticToAdopt string `json:"tacticToAdopt,omitempty"`
}

// ImprovementAreas is concrete advice for the user's existing video.
type ImprovementAreas struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Content   string `json:"content"`
}

// ComparativeAnalysis is the ModeComparative body.
type ComparativeAnalysis struct {
	UserVideo        VideoVerdict     `json:"userVideo"`
	BenchmarkVideo   VideoVerdict     `json:"benchmarkVideo"`
	ImprovementAreas ImprovementAreas `json:"improvementAreas"`
}

// ConsultingResult is the outcome of one orchestration run. Exactly one
// of Proposal or Comparative is set, and Mode says which; readers must
// switch on Mode rather than probing the pointers.
type ConsultingResult struct {
	Mode              ConsultingMode       `json:"mode"`
	BenchmarkAnalysis BenchmarkAnalysis    `json:"benchmark_analysis"`
	Proposal          *VideoProposal       `json:"proposal,omitempty"`
	Comparative       *ComparativeAnalysis `json:"comparative,omitempty"`
}
