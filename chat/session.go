// Package chat maintains the consultant chat: a linear message history
// driven by a token-streaming exchange with the AI.
package chat

import (
	"context"
	"errors"
	"iter"
	"sync"

	"creator-boost/internal/models"
)

// ErrStreamActive is returned when Send is called while a previous send
// is still streaming. Streams are never interleaved.
var ErrStreamActive = errors.New("a chat response is already streaming")

// errorReply replaces the placeholder when a stream fails.
const errorReply = "Sorry, something went wrong while answering. Please try again."

// Streamer produces the token stream for one chat turn.
type Streamer interface {
	StreamChat(ctx context.Context, history []models.ChatMessage, message, lang string) (iter.Seq2[string, error], error)
}

// Session is one user's conversation. The history is append-only and
// seeded with a greeting that is shown to the user but never sent
// upstream as history.
type Session struct {
	streamer Streamer

	mu       sync.Mutex
	busy     bool
	messages []models.ChatMessage
}

func NewSession(streamer Streamer, greeting string) *Session {
	return &Session{
		streamer: streamer,
		messages: []models.ChatMessage{
			{Role: models.RoleModel, Text: greeting},
		},
	}
}

// Messages returns a snapshot of the history, including the in-progress
// reply while a stream is active.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Send appends the user message and a placeholder reply, then streams
// the model's answer into the placeholder fragment by fragment. onUpdate
// (optional) observes the placeholder after every fragment, in arrival
// order. The final placeholder text equals the concatenation of all
// fragments; on stream failure it is replaced with a fixed error reply
// and the error is returned.
func (s *Session) Send(ctx context.Context, text, lang string, onUpdate func(partial string)) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrStreamActive
	}
	s.busy = true

	// History for the model: everything between the seed greeting and
	// the message being sent now.
	history := make([]models.ChatMessage, len(s.messages)-1)
	copy(history, s.messages[1:])

	s.messages = append(s.messages,
		models.ChatMessage{Role: models.RoleUser, Text: text},
		models.ChatMessage{Role: models.RoleModel, Text: ""},
	)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	stream, err := s.streamer.StreamChat(ctx, history, text, lang)
	if err != nil {
		s.setReply(errorReply, onUpdate)
		return err
	}

	var buffer string
	for fragment, err := range stream {
		if err != nil {
			s.setReply(errorReply, onUpdate)
			return err
		}
		buffer += fragment
		s.setReply(buffer, onUpdate)
	}
	return nil
}

// setReply overwrites the in-flight placeholder, the only message that
// is ever rewritten.
func (s *Session) setReply(text string, onUpdate func(string)) {
	s.mu.Lock()
	s.messages[len(s.messages)-1].Text = text
	s.mu.Unlock()
	if onUpdate != nil {
		onUpdate(text)
	}
}
