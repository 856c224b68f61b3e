package ai

import "google.golang.org/genai"

// Response schemas passed to the model so structured generations come
// back as well-formed JSON. The shapes mirror internal/models.

var videoIdeasSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "A catchy, SEO-optimized video title.",
			},
			"description": {
				Type:        genai.TypeString,
				Description: "A brief, engaging description for the video concept.",
			},
			"tags": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "3-5 relevant keywords or tags for the video.",
			},
		},
		Required: []string{"title", "description", "tags"},
	},
}

var channelAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"strengths": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Perceived strengths of the channel based on the provided data.",
		},
		"weaknesses": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Potential weaknesses or areas for improvement.",
		},
		"opportunities": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Key growth opportunities for the channel.",
		},
		"videoIdeas": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":       {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
				},
				Required: []string{"title", "description"},
			},
			Description: "Three concrete video ideas that capitalize on the opportunities.",
		},
	},
	Required: []string{"strengths", "weaknesses", "opportunities", "videoIdeas"},
}

var scriptOutlineSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"hook":         {Type: genai.TypeString, Description: "A powerful, 15-second opening hook script."},
		"introduction": {Type: genai.TypeString, Description: "A brief introduction to the video's topic and value."},
		"mainPoints": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3-5 bullet points covering the main sections of the video.",
		},
		"callToAction": {Type: genai.TypeString, Description: "A clear call to action."},
		"outro":        {Type: genai.TypeString, Description: "A concluding summary and outro."},
	},
	Required: []string{"hook", "introduction", "mainPoints", "callToAction", "outro"},
}

var videoProposalSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"titles": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3 catchy, SEO-optimized alternative video titles.",
		},
		"description": {
			Type:        genai.TypeString,
			Description: "A complete, SEO-optimized video description built on the benchmark's insights.",
		},
		"tags": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "10-15 relevant keywords and tags for the video.",
		},
		"script": scriptOutlineSchema,
		"thumbnailConcepts": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "2 distinct thumbnail concepts described in detail.",
		},
	},
	Required: []string{"titles", "description", "tags", "script", "thumbnailConcepts"},
}

var comparativeAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"userVideo": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strength": {Type: genai.TypeString, Description: "The single biggest strength of the user's video."},
				"weakness": {Type: genai.TypeString, Description: "The single biggest weakness of the user's video."},
			},
			Required: []string{"strength", "weakness"},
		},
		"benchmarkVideo": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strength":      {Type: genai.TypeString, Description: "The single biggest strength of the benchmark video."},
				"tacticToAdopt": {Type: genai.TypeString, Description: "The key strategy the user should adopt from the benchmark."},
			},
			Required: []string{"strength", "tacticToAdopt"},
		},
		"improvementAreas": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":     {Type: genai.TypeString, Description: "Advice to improve the user's video title."},
				"thumbnail": {Type: genai.TypeString, Description: "Advice to improve the user's thumbnail."},
				"content":   {Type: genai.TypeString, Description: "Advice to improve the user's video content."},
			},
			Required: []string{"title", "thumbnail", "content"},
		},
	},
	Required: []string{"userVideo", "benchmarkVideo", "improvementAreas"},
}

// consultingSchema builds the full response envelope. The body schema is
// selected by the request mode up front, never sniffed from the reply.
func consultingSchema(comparative bool) *genai.Schema {
	body := videoProposalSchema
	if comparative {
		body = comparativeAnalysisSchema
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"benchmarkVideoAnalysis": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"titleHook":             {Type: genai.TypeString, Description: "What makes the benchmark video's title effective."},
					"contentStrategy":       {Type: genai.TypeString, Description: "The video's content structure and pacing."},
					"targetAudience":        {Type: genai.TypeString, Description: "A profile of the likely target audience."},
					"monetizationPotential": {Type: genai.TypeString, Description: "How this video format could be monetized."},
				},
				Required: []string{"titleHook", "contentStrategy", "targetAudience", "monetizationPotential"},
			},
			"consultingResult": body,
		},
		Required: []string{"benchmarkVideoAnalysis", "consultingResult"},
	}
}

var storyboardScenesSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"scene": {
				Type:        genai.TypeString,
				Description: "A short title for the key visual scene.",
			},
			"prompt": {
				Type:        genai.TypeString,
				Description: "A detailed prompt for an AI image generator: setting, characters, mood, camera angle.",
			},
		},
		Required: []string{"scene", "prompt"},
	},
}
