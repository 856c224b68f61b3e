package ai

import (
	"context"
	"fmt"
	"iter"

	"creator-boost/internal/models"

	"google.golang.org/genai"
)

// StreamChat opens a token stream for one chat turn: the system persona,
// the prior history, and the new user message. The returned sequence
// yields text fragments in arrival order; iteration stops at the first
// error.
func (c *Client) StreamChat(ctx context.Context, history []models.ChatMessage, message, lang string) (iter.Seq2[string, error], error) {
	var contents []*genai.Content
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}

	chat, err := c.client.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemPrompt(lang), genai.RoleUser),
	}, contents)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	stream := chat.SendMessageStream(ctx, genai.Part{Text: message})
	return func(yield func(string, error) bool) {
		for resp, err := range stream {
			if err != nil {
				yield("", err)
				return
			}
			if text := resp.Text(); text != "" {
				if !yield(text, nil) {
					return
				}
			}
		}
	}, nil
}
