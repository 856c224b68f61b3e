package models

// VideoIdea is one brainstormed video concept for a keyword.
type VideoIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ChannelIdea is a video idea attached to a channel analysis.
type ChannelIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChannelAnalysis is the SWOT-style readout for a fetched channel.
type ChannelAnalysis struct {
	Strengths     []string      `json:"strengths"`
	Weaknesses    []string      `json:"weaknesses"`
	Opportunities []string      `json:"opportunities"`
	VideoIdeas    []ChannelIdea `json:"videoIdeas"`
}
