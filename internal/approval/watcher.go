package approval

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/pkg/logger"
)

type userWGetter interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

// Watcher periodically re-fetches a user's record and feeds the status into
// the machine. It stops itself on rejection, on logout, and — unless
// revocation watching is enabled — on approval. Fetch errors are not retried
// beyond the next scheduled tick.
type Watcher struct {
	store    userWGetter
	machine  *Machine
	interval time.Duration

	// watchRevocation keeps the watcher alive in StateApproved to catch an
	// externally triggered status regression.
	watchRevocation bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWatcher(store userWGetter, machine *Machine, interval time.Duration, watchRevocation bool) *Watcher {
	return &Watcher{
		store:           store,
		machine:         machine,
		interval:        interval,
		watchRevocation: watchRevocation,
	}
}

// Start begins polling for uid. Any previous watch is stopped first. Returns
// immediately; ticks run on their own goroutine until a terminal state is
// reached, ctx is cancelled, or Stop is called.
func (w *Watcher) Start(ctx context.Context, uid string) {
	w.Stop()
	if uid == "" {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	w.mu.Lock()
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go w.run(ctx, uid, done)
}

func (w *Watcher) run(ctx context.Context, uid string, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.tick(ctx, uid) {
				return
			}
		}
	}
}

// tick performs one fetch-and-compare; returns true when polling should end.
// A tick that fires after logout sees StateUnauthenticated and cancels
// itself instead of acting on stale identity.
func (w *Watcher) tick(ctx context.Context, uid string) bool {
	log := logger.FromContext(ctx)

	switch w.machine.State() {
	case StateUnauthenticated, StateRejected:
		return true
	case StateApproved:
		if !w.watchRevocation {
			return true
		}
	}

	user, err := w.store.GetUser(ctx, uid)
	if err != nil {
		var notFound *errs.NotFoundError
		if errors.As(err, &notFound) {
			// The record disappeared from the store: force logout.
			log.Warn("user record gone, ending session", "uid", uid)
			w.machine.Logout()
			return true
		}
		if ctx.Err() != nil {
			return true
		}
		log.Warn("status poll failed, will retry next tick", "uid", uid, "error", err)
		return false
	}

	switch w.machine.Observe(user.Status) {
	case StateRejected, StateUnauthenticated:
		return true
	case StateApproved:
		return !w.watchRevocation
	}
	return false
}

// Done returns a channel closed when the current watch ends, or nil if no
// watch was started.
func (w *Watcher) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}

// Stop cancels the watch and waits for an in-flight tick to finish. Safe to
// call multiple times and without a prior Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
