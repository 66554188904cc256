package lookup

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/devfinder/internal/profile"
)

// Status is the active variant of a State.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is a snapshot of the controller. Profile is set only on success and
// Err only on failure.
type State struct {
	Status  Status
	Query   string
	Seq     uint64
	Profile *profile.Profile
	Err     error
}

// Loading reports whether a lookup is outstanding.
func (s State) Loading() bool { return s.Status == StatusLoading }

// Failed reports whether the latest committed lookup failed.
func (s State) Failed() bool { return s.Status == StatusFailure }

// CommitPolicy decides which resolutions may overwrite the state.
type CommitPolicy int

const (
	// CommitLatestRequest commits a resolution only when it belongs to the
	// most recently issued lookup.
	CommitLatestRequest CommitPolicy = iota
	// CommitLastResolution commits every resolution in arrival order.
	CommitLastResolution
)

const (
	policyLatestRequest  = "latest-request"
	policyLastResolution = "last-resolution"
)

func (p CommitPolicy) String() string {
	if p == CommitLastResolution {
		return policyLastResolution
	}
	return policyLatestRequest
}

// ParseCommitPolicy maps a configuration value to a CommitPolicy.
func ParseCommitPolicy(value string) (CommitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", policyLatestRequest:
		return CommitLatestRequest, nil
	case policyLastResolution:
		return CommitLastResolution, nil
	default:
		return CommitLatestRequest, fmt.Errorf("unknown commit policy %q", value)
	}
}
