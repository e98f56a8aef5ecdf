package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Prompts shown before a destructive change.
const (
	DeletePlannerPrompt = "Are you sure you want to delete this planner?"
	RemoveDayPrompt     = "Are you sure you want to delete this day's workout?"
	DeleteStudentPrompt = "Are you sure you want to delete this student?"
)

var ErrConfirmationNotFound = errors.New("confirmation not found or expired")

// Confirmer answers a yes/no prompt. Destructive operations proceed only on true.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

var (
	AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })
	NeverConfirm  Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
)

// PendingConfirmation is a destructive action waiting for the trainer's answer.
type PendingConfirmation struct {
	ID        string    `json:"confirmationId"`
	Prompt    string    `json:"prompt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ConfirmationBroker splits a confirm-then-act operation across two requests:
// Request parks the action, Resolve runs it if the answer is yes.
type ConfirmationBroker interface {
	Request(ownerID, prompt string, action func(ctx context.Context) error) PendingConfirmation
	// Resolve consumes the pending confirmation. It reports whether the action ran.
	Resolve(ctx context.Context, ownerID, id string, confirm bool) (bool, error)
}

type pendingAction struct {
	PendingConfirmation
	ownerID string
	action  func(ctx context.Context) error
}

type confirmationBroker struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	pending map[string]pendingAction
	log     *zap.SugaredLogger
}

// NewConfirmationBroker creates a broker whose requests expire after ttl.
func NewConfirmationBroker(ttl time.Duration, log *zap.SugaredLogger) ConfirmationBroker {
	return newConfirmationBroker(ttl, time.Now, log)
}

func newConfirmationBroker(ttl time.Duration, now func() time.Time, log *zap.SugaredLogger) *confirmationBroker {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &confirmationBroker{
		ttl:     ttl,
		now:     now,
		pending: make(map[string]pendingAction),
		log:     log,
	}
}

func (b *confirmationBroker) Request(ownerID, prompt string, action func(ctx context.Context) error) PendingConfirmation {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sweepLocked()

	p := PendingConfirmation{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		ExpiresAt: b.now().Add(b.ttl),
	}
	b.pending[p.ID] = pendingAction{PendingConfirmation: p, ownerID: ownerID, action: action}
	b.log.Debugw("confirmation requested", "confirmationId", p.ID, "owner", ownerID, "prompt", prompt)
	return p
}

func (b *confirmationBroker) Resolve(ctx context.Context, ownerID, id string, confirm bool) (bool, error) {
	b.mu.Lock()
	p, ok := b.pending[id]
	if ok && p.ownerID != ownerID {
		ok = false
	}
	if ok {
		delete(b.pending, id)
	}
	expired := ok && b.now().After(p.ExpiresAt)
	b.mu.Unlock()

	if !ok || expired {
		return false, ErrConfirmationNotFound
	}
	if !confirm {
		b.log.Infow("confirmation declined", "confirmationId", id, "owner", ownerID)
		return false, nil
	}
	if err := p.action(ctx); err != nil {
		return false, err
	}
	b.log.Infow("confirmation accepted", "confirmationId", id, "owner", ownerID)
	return true, nil
}

// sweepLocked drops expired entries. Must be called with b.mu held.
func (b *confirmationBroker) sweepLocked() {
	now := b.now()
	for id, p := range b.pending {
		if now.After(p.ExpiresAt) {
			delete(b.pending, id)
		}
	}
}
