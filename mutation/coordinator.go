// Package mutation centralizes optimistic UI updates: apply the local
// change first, fire the network call, and either commit or roll the local
// change back. Every screen's create/delete/join/share goes through the
// same contract so rollback semantics are uniform instead of re-implemented
// per screen.
package mutation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	Logger "github.com/eliseodavidv/proyectocompleto/utils/log"
)

type Kind string

const (
	KindCreatePost    Kind = "CREATE_POST"
	KindDeletePost    Kind = "DELETE_POST"
	KindJoinGroup     Kind = "JOIN_GROUP"
	KindSharePost     Kind = "SHARE_POST"
	KindCreateGroup   Kind = "CREATE_GROUP"
	KindCreateComment Kind = "CREATE_COMMENT"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateCommitted
	StateRolledBack
)

// ErrActionInProgress is returned synchronously when an identical action
// for the same target is already pending (e.g. a double-tapped join). No
// second network call is issued.
var ErrActionInProgress = errors.New("action already in progress")

// Effect is one optimistic mutation.
//
// Apply runs synchronously before the network call and must leave the local
// state looking as if the action already succeeded. Rollback must revert
// Apply exactly (same position, same content). Call performs the server
// round-trip; Reconcile, when set, runs after a successful Call to fold
// authoritative server fields (like a real id replacing a temporary one)
// into the local state.
type Effect struct {
	Apply     func()
	Rollback  func()
	Call      func(ctx context.Context) error
	Reconcile func()
}

// Handle tracks one in-flight action. Done yields the terminal error (nil
// on commit) exactly once.
type Handle struct {
	Token string
	Done  <-chan error
}

// defaultStateRetention is how long a terminal action stays queryable via
// State() before its token is pruned.
const defaultStateRetention = time.Minute

type Coordinator struct {
	mu      sync.Mutex
	pending map[string]string // dedup key -> action token
	states  map[string]State  // action token -> state

	retention time.Duration

	// onFailure surfaces a user-facing message identifying the failed
	// action once its rollback has been applied.
	onFailure func(kind Kind, target string, err error)
}

type Option func(*Coordinator)

func WithFailureHandler(handler func(kind Kind, target string, err error)) Option {
	return func(c *Coordinator) { c.onFailure = handler }
}

// WithStateRetention overrides how long terminal action states are kept
// around for State() lookups.
func WithStateRetention(d time.Duration) Option {
	return func(c *Coordinator) { c.retention = d }
}

func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		pending:   map[string]string{},
		states:    map[string]State{},
		retention: defaultStateRetention,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run starts one optimistic action. The duplicate-submission guard is
// checked and the local change applied before Run returns; the network call
// resolves on Handle.Done. The guard is released only once Rollback or
// Reconcile has completed, so a retry never interleaves with the previous
// attempt's cleanup. Unrelated pending actions are never affected by this
// one failing: each rollback targets only its own token.
func (c *Coordinator) Run(ctx context.Context, kind Kind, target string, effect Effect) (*Handle, error) {
	key := dedupKey(kind, target)

	c.mu.Lock()
	if _, inFlight := c.pending[key]; inFlight {
		c.mu.Unlock()
		return nil, ErrActionInProgress
	}
	token := uuid.New().String()
	c.pending[key] = token
	c.states[token] = StatePending
	c.mu.Unlock()

	effect.Apply()

	done := make(chan error, 1)
	go func() {
		err := effect.Call(ctx)

		// Rollback/Reconcile run while the dedup key is still held: a
		// retry admitted mid-rollback would snapshot half-reverted state
		// and have its own effect erased by the late rollback.
		if err != nil {
			effect.Rollback()
			Logger.LogV2.Error(fmt.Sprintf("action %s on %s failed and was rolled back: %v", kind, target, err))
			if c.onFailure != nil {
				c.onFailure(kind, target, err)
			}
		} else if effect.Reconcile != nil {
			effect.Reconcile()
		}

		c.mu.Lock()
		delete(c.pending, key)
		if err != nil {
			c.states[token] = StateRolledBack
		} else {
			c.states[token] = StateCommitted
		}
		c.mu.Unlock()
		c.pruneStateLater(token)

		done <- err
	}()

	return &Handle{Token: token, Done: done}, nil
}

// pruneStateLater drops a terminal token from the states map after the
// retention window, so long-running apps don't accumulate one entry per
// action forever. Callers that still hold the Handle got the terminal
// error from Done already.
func (c *Coordinator) pruneStateLater(token string) {
	time.AfterFunc(c.retention, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.states, token)
	})
}

// State reports the lifecycle state of a previously started action.
func (c *Coordinator) State(token string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, ok := c.states[token]
	if !ok {
		return StateIdle
	}
	return state
}

func dedupKey(kind Kind, target string) string {
	return string(kind) + ":" + target
}
