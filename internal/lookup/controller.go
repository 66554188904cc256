// Package lookup owns the lifecycle of profile lookups: it moves a single
// State through loading, success and failure and decides which of several
// overlapping resolutions gets to be visible.
package lookup

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/devfinder/internal/logger"
	"github.com/alexisbeaulieu97/devfinder/internal/profile"
	apperrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

// Fetcher retrieves a profile for a trimmed, non-empty query.
type Fetcher interface {
	FetchUser(ctx context.Context, login string) (*profile.Profile, error)
}

// Ticket identifies one started lookup.
type Ticket struct {
	Seq   uint64
	Query string
	// Rejected is set when the query was blank; Run is a no-op for it.
	Rejected bool
}

// Options configures a Controller.
type Options struct {
	Policy CommitPolicy
	Logger *logger.Logger
}

// Controller is safe for concurrent use.
type Controller struct {
	fetcher Fetcher
	policy  CommitPolicy
	log     *logger.Logger

	mu    sync.Mutex
	state State
	seq   uint64

	wg sync.WaitGroup
}

// NewController creates an idle controller.
func NewController(fetcher Fetcher, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Controller{
		fetcher: fetcher,
		policy:  opts.Policy,
		log:     log,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Lookup starts a lookup and resolves it in the background.
func (c *Controller) Lookup(ctx context.Context, query string) Ticket {
	ticket := c.Begin(query)
	if ticket.Rejected {
		return ticket
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.Run(ctx, ticket)
	}()
	return ticket
}

// Wait blocks until every background lookup started by Lookup has resolved.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Begin is the synchronous half of a lookup. A blank query moves straight to
// failure; anything else moves to loading and clears the previous outcome.
func (c *Controller) Begin(query string) Ticket {
	trimmed := strings.TrimSpace(query)

	c.mu.Lock()
	c.seq++
	ticket := Ticket{Seq: c.seq, Query: trimmed}
	if trimmed == "" {
		ticket.Rejected = true
		c.state = State{Status: StatusFailure, Seq: ticket.Seq, Err: apperrors.ErrEmptyQuery}
	} else {
		c.state = State{Status: StatusLoading, Query: trimmed, Seq: ticket.Seq}
	}
	c.mu.Unlock()

	c.log.WithFields(map[string]any{"query": trimmed, "seq": ticket.Seq, "rejected": ticket.Rejected}).Debug("lookup started")
	return ticket
}

// Run performs the network half of a lookup and commits its outcome
// according to the policy. It returns the state as it stands after the
// attempt, which for a dropped resolution is the newer state.
func (c *Controller) Run(ctx context.Context, ticket Ticket) State {
	if ticket.Rejected {
		return c.Snapshot()
	}

	started := time.Now()
	resolved := State{Query: ticket.Query, Seq: ticket.Seq}

	p, err := c.fetch(ctx, ticket.Query)
	if err != nil {
		resolved.Status = StatusFailure
		resolved.Err = err
	} else {
		resolved.Status = StatusSuccess
		resolved.Profile = p
	}

	fields := map[string]any{
		"query":       ticket.Query,
		"seq":         ticket.Seq,
		"status":      resolved.Status.String(),
		"duration_ms": time.Since(started).Milliseconds(),
	}

	c.mu.Lock()
	if c.policy == CommitLatestRequest && ticket.Seq != c.seq {
		current := c.state
		c.mu.Unlock()
		fields["latest_seq"] = current.Seq
		c.log.WithFields(fields).Debug("stale lookup resolution dropped")
		return current
	}
	c.state = resolved
	c.mu.Unlock()

	if err != nil {
		c.log.WithFields(fields).Error(err, "lookup failed")
	} else {
		c.log.WithFields(fields).Info("lookup resolved")
	}
	return resolved
}

// fetch converts every way the fetcher can fail, panics included, into a
// lookup error so Run always reaches a terminal state.
func (c *Controller) fetch(ctx context.Context, query string) (p *profile.Profile, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = apperrors.NewLookupError(query, 0, panicError{value: r})
		}
	}()

	p, err = c.fetcher.FetchUser(ctx, query)
	if err != nil {
		if !apperrors.IsLookupFailure(err) {
			err = apperrors.NewLookupError(query, 0, err)
		}
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewLookupError(query, 0, errEmptyResponse)
	}
	return p, nil
}
