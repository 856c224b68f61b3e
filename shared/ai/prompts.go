package ai

import (
	"fmt"
	"strings"

	"creator-boost/internal/models"
)

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"pt": "Portuguese",
}

func languageDirective(lang string) string {
	name, ok := languageNames[lang]
	if !ok {
		name = "English"
	}
	return fmt.Sprintf("Your response must be in %s.", name)
}

func keywordPrompt(keyword, lang string) string {
	return fmt.Sprintf(`You are an expert YouTube growth strategist. A user wants to create content about %q. Generate 5 creative, high-engagement video ideas. For each idea, provide a catchy, SEO-optimized title, a brief description, and 3-5 relevant keywords/tags. %s`,
		keyword, languageDirective(lang))
}

func channelPrompt(channel *models.ChannelRecord, lang string) string {
	var titles strings.Builder
	for _, v := range channel.RecentVideos {
		fmt.Fprintf(&titles, "- %q\n", v.Title)
	}

	return fmt.Sprintf(`You are a professional YouTube channel analyst. I will provide you with data fetched directly from the YouTube API.
Analyze the following channel:

Channel Name: %s
Subscribers: %d
Total Views: %d
Total Videos: %d

Recent Video Titles:
%s
Based only on this provided data, perform an expert analysis. Provide:
1. Perceived Strengths: at least 3 strengths suggested by the data.
2. Potential Weaknesses: at least 3 potential weaknesses.
3. Key Opportunities for Growth: at least 3 actionable opportunities.
4. Three Concrete Video Ideas: titles and descriptions for three ideas that capitalize on the opportunities and fit the recent video titles. %s`,
		channel.Title,
		channel.Stats.SubscriberCount,
		channel.Stats.ViewCount,
		channel.Stats.VideoCount,
		titles.String(),
		languageDirective(lang))
}

func formatVideoData(video *models.VideoRecord, role string) string {
	desc := video.Description
	if len(desc) > 300 {
		desc = desc[:300] + "..."
	}
	tags := video.Tags
	if len(tags) > 10 {
		tags = tags[:10]
	}
	return fmt.Sprintf(`%s Video Details:
- Title: %s
- Views: %d
- Likes: %d
- Description: %s
- Tags: %s
`, role, video.Title, video.Stats.ViewCount, video.Stats.LikeCount, desc, strings.Join(tags, ", "))
}

func consultingPrompt(benchmark, user *models.VideoRecord, lang string) string {
	var b strings.Builder
	b.WriteString("You are a world-class YouTube growth consultant specializing in viral video strategy. Your analysis is sharp, actionable, and data-driven. ")
	b.WriteString(languageDirective(lang))
	b.WriteString("\n\nI need a deep analysis of the following video(s).\n\n")
	b.WriteString(formatVideoData(benchmark, "Benchmark"))

	if user != nil {
		b.WriteString(formatVideoData(user, "User's"))
		b.WriteString(`
Task:
1. Analyze Benchmark Video: briefly analyze the benchmark video's title hook, content strategy, target audience, and monetization potential.
2. Comparative Analysis: compare the user's video to the benchmark. Identify the single biggest strength and weakness for each.
3. Provide Actionable Advice: give concrete improvement suggestions for the user's video title, thumbnail, and content based on the benchmark's success.
`)
	} else {
		b.WriteString(`
Task:
1. Analyze Benchmark Video: deeply analyze the benchmark video's title hook, content strategy, target audience, and monetization potential.
2. Create a New Video Blueprint: based on the analysis, create a complete blueprint for a NEW video that could achieve similar or greater success, including 3 alternative titles, a full SEO-optimized description, 10-15 tags, a structured script outline (hook, intro, main points, call to action, outro), and 2 detailed thumbnail concepts.
`)
	}
	return b.String()
}

func outlineBlock(title string, outline models.ScriptOutline) string {
	var points strings.Builder
	for _, p := range outline.MainPoints {
		fmt.Fprintf(&points, "  - %s\n", p)
	}
	return fmt.Sprintf(`Video Title: %s

Script Outline:
- Hook: %s
- Introduction: %s
- Main Points:
%s- Call to Action: %s
- Outro: %s
`, title, outline.Hook, outline.Introduction, points.String(), outline.CallToAction, outline.Outro)
}

func fullScriptPrompt(title string, outline models.ScriptOutline, lang string) string {
	return fmt.Sprintf(`You are a professional YouTube scriptwriter. Based on the following video title and script outline, write a complete, engaging, and detailed script for an 8-10 minute video. Include spoken lines, camera shot suggestions, and on-screen text callouts. %s

%s`, languageDirective(lang), outlineBlock(title, outline))
}

func storyboardPrompt(title string, outline models.ScriptOutline, lang string) string {
	return fmt.Sprintf(`You are a creative director. Based on the following video title and script outline, break the video down into 4 key visual scenes for a compelling storyboard. For each scene, provide a short title and a detailed, descriptive prompt for an AI image generator covering setting, characters, mood, and camera angle. %s

%s`, languageDirective(lang), outlineBlock(title, outline))
}

func thumbnailPrompt(concept string) string {
	return fmt.Sprintf(`Create a cinematic, high-impact YouTube thumbnail based on this concept: %q. Ensure it is visually striking, easy to read, and evokes curiosity. Aspect ratio 16:9.`, concept)
}

func chatSystemPrompt(lang string) string {
	return fmt.Sprintf("You are 'Creator Boost AI', an expert YouTube consultant. Your goal is to provide actionable, data-driven advice to help content creators grow their channels and monetize their content. Be encouraging, specific, and professional. Use markdown formatting to make your responses easy to read. %s",
		languageDirective(lang))
}
