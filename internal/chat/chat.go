package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tiliavir/studyhub/internal/model"
)

// ErrEmptyMessage is returned by Send for blank input.
var ErrEmptyMessage = errors.New("message is empty")

// QuickActions are the prompts offered as one-tap shortcuts.
var QuickActions = []string{
	"Summarize text",
	"Explain a concept",
	"Solve a math problem",
}

// ReplyProvider produces the assistant's answer to prompt. history holds
// every message before prompt.
type ReplyProvider interface {
	Reply(ctx context.Context, history []model.Message, prompt model.Message) (string, error)
}

// Canned answers every prompt with the same text after a fixed delay.
type Canned struct {
	Delay time.Duration
	Text  string
}

// Reply waits for c.Delay and returns c.Text. It only fails when ctx ends first.
func (c Canned) Reply(ctx context.Context, _ []model.Message, _ model.Message) (string, error) {
	if c.Delay <= 0 {
		return c.Text, ctx.Err()
	}
	timer := time.NewTimer(c.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return c.Text, nil
	}
}

// Transcript is the running conversation. It is safe for concurrent use.
type Transcript struct {
	mu       sync.Mutex
	messages []model.Message
	provider ReplyProvider
	now      func() time.Time
}

// NewTranscript returns a transcript holding the opening exchange.
func NewTranscript(provider ReplyProvider) *Transcript {
	t := &Transcript{provider: provider, now: time.Now}
	ts := t.now()
	t.messages = []model.Message{
		newMessage(model.RoleAssistant, "Hi there! How can I help you today?", ts),
		newMessage(model.RoleUser, "Can you help me with my math homework?", ts),
		newMessage(model.RoleAssistant, "Of course! What's the problem?", ts),
	}
	return t
}

func newMessage(role model.Role, content string, ts time.Time) model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: ts,
	}
}

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []model.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]model.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) append(m model.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, m)
}

// Send appends text as a user message and asks the provider for a reply in
// the background. The reply is appended once it arrives; the returned
// Exchange reports when that happened.
func (t *Transcript) Send(ctx context.Context, text string) (*Exchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	t.mu.Lock()
	history := make([]model.Message, len(t.messages))
	copy(history, t.messages)
	prompt := newMessage(model.RoleUser, text, t.now())
	t.messages = append(t.messages, prompt)
	t.mu.Unlock()

	ex := &Exchange{Prompt: prompt, done: make(chan struct{})}
	go func() {
		defer close(ex.done)
		content, err := t.provider.Reply(ctx, history, prompt)
		if err != nil {
			ex.err = err
			return
		}
		ex.reply = newMessage(model.RoleAssistant, content, t.now())
		t.append(ex.reply)
	}()
	return ex, nil
}

// Exchange is one prompt and its pending reply.
type Exchange struct {
	Prompt model.Message

	done  chan struct{}
	reply model.Message
	err   error
}

// Done is closed once the reply has been appended or has failed.
func (e *Exchange) Done() <-chan struct{} {
	return e.done
}

// Wait blocks until the reply is available or ctx ends.
func (e *Exchange) Wait(ctx context.Context) (model.Message, error) {
	select {
	case <-ctx.Done():
		return model.Message{}, ctx.Err()
	case <-e.done:
		return e.reply, e.err
	}
}
