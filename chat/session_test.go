package chat

import (
	"context"
	"errors"
	"iter"
	"testing"

	"creator-boost/internal/models"
)

const testGreeting = "Hello! How can I help your channel today?"

type fakeStreamer struct {
	fragments []string
	openErr   error
	// failAfter injects a stream error after that many fragments.
	failAfter int

	histories [][]models.ChatMessage
	messages  []string

	// enterStream/releaseStream, when set, hold the stream open so a
	// test can observe the busy state.
	enterStream   chan struct{}
	releaseStream chan struct{}
}

func (f *fakeStreamer) StreamChat(ctx context.Context, history []models.ChatMessage, message, lang string) (iter.Seq2[string, error], error) {
	f.histories = append(f.histories, history)
	f.messages = append(f.messages, message)
	if f.openErr != nil {
		return nil, f.openErr
	}
	return func(yield func(string, error) bool) {
		if f.enterStream != nil {
			f.enterStream <- struct{}{}
			<-f.releaseStream
		}
		for i, fragment := range f.fragments {
			if f.failAfter != 0 && i == f.failAfter {
				yield("", errors.New("stream interrupted"))
				return
			}
			if !yield(fragment, nil) {
				return
			}
		}
	}, nil
}

func TestSendAppendsAndStreams(t *testing.T) {
	streamer := &fakeStreamer{fragments: []string{"Great ", "question", "!"}}
	session := NewSession(streamer, testGreeting)

	var updates []string
	err := session.Send(context.Background(), "How do I get more views?", "en", func(partial string) {
		updates = append(updates, partial)
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	messages := session.Messages()
	if len(messages) != 3 {
		t.Fatalf("history length = %d, want 3 (greeting, user, reply)", len(messages))
	}
	if messages[0].Role != models.RoleModel || messages[0].Text != testGreeting {
		t.Errorf("messages[0] = %+v, want the greeting", messages[0])
	}
	if messages[1].Role != models.RoleUser || messages[1].Text != "How do I get more views?" {
		t.Errorf("messages[1] = %+v", messages[1])
	}
	if messages[2].Role != models.RoleModel || messages[2].Text != "Great question!" {
		t.Errorf("messages[2] = %+v, want the concatenated reply", messages[2])
	}

	// Every update shows the reply so far, in arrival order.
	want := []string{"Great ", "Great question", "Great question!"}
	if len(updates) != len(want) {
		t.Fatalf("updates = %v, want %v", updates, want)
	}
	for i := range want {
		if updates[i] != want[i] {
			t.Errorf("updates[%d] = %q, want %q", i, updates[i], want[i])
		}
	}
}

func TestSendExcludesGreetingFromHistory(t *testing.T) {
	streamer := &fakeStreamer{fragments: []string{"First reply."}}
	session := NewSession(streamer, testGreeting)

	if err := session.Send(context.Background(), "first question", "en", nil); err != nil {
		t.Fatalf("first Send failed: %v", err)
	}
	if err := session.Send(context.Background(), "second question", "en", nil); err != nil {
		t.Fatalf("second Send failed: %v", err)
	}

	if len(streamer.histories[0]) != 0 {
		t.Errorf("first history = %+v, want empty (greeting never goes upstream)", streamer.histories[0])
	}

	second := streamer.histories[1]
	if len(second) != 2 {
		t.Fatalf("second history length = %d, want 2", len(second))
	}
	if second[0].Role != models.RoleUser || second[0].Text != "first question" {
		t.Errorf("second history[0] = %+v", second[0])
	}
	if second[1].Role != models.RoleModel || second[1].Text != "First reply." {
		t.Errorf("second history[1] = %+v", second[1])
	}
}

func TestSendStreamOpenFailure(t *testing.T) {
	streamer := &fakeStreamer{openErr: errors.New("upstream unavailable")}
	session := NewSession(streamer, testGreeting)

	err := session.Send(context.Background(), "hello?", "en", nil)
	if err == nil {
		t.Fatal("expected the open error to surface")
	}

	messages := session.Messages()
	last := messages[len(messages)-1]
	if last.Text != errorReply {
		t.Errorf("last message = %q, want the fixed error reply", last.Text)
	}
	if last.Role != models.RoleModel {
		t.Errorf("last message role = %v, want model", last.Role)
	}
}

func TestSendMidStreamFailure(t *testing.T) {
	streamer := &fakeStreamer{fragments: []string{"Partial ", "text ", "lost"}, failAfter: 2}
	session := NewSession(streamer, testGreeting)

	err := session.Send(context.Background(), "hello?", "en", nil)
	if err == nil {
		t.Fatal("expected the stream error to surface")
	}

	// The partial text is replaced wholesale, not kept.
	messages := session.Messages()
	if got := messages[len(messages)-1].Text; got != errorReply {
		t.Errorf("last message = %q, want the fixed error reply", got)
	}
}

func TestSendRejectsConcurrentSend(t *testing.T) {
	streamer := &fakeStreamer{
		fragments:     []string{"done"},
		enterStream:   make(chan struct{}),
		releaseStream: make(chan struct{}),
	}
	session := NewSession(streamer, testGreeting)

	done := make(chan error, 1)
	go func() {
		done <- session.Send(context.Background(), "first", "en", nil)
	}()

	<-streamer.enterStream

	err := session.Send(context.Background(), "second", "en", nil)
	if !errors.Is(err, ErrStreamActive) {
		t.Errorf("concurrent Send error = %v, want ErrStreamActive", err)
	}

	close(streamer.releaseStream)
	if err := <-done; err != nil {
		t.Errorf("first Send failed: %v", err)
	}

	// The rejected send leaves no trace in the history.
	messages := session.Messages()
	if len(messages) != 3 {
		t.Errorf("history length = %d, want 3", len(messages))
	}
}
