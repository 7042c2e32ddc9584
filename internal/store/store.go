// Package store holds the session-scoped state containers that cache backend
// data for a UI. A store is constructed once per session and passed by
// reference; there are no package-level singletons.
//
// Every operation follows the same contract: clear the error and raise the
// loading flag on entry, call the service, reconcile local state on success,
// set a fixed user-facing message on failure (the detailed error is logged,
// not surfaced) and lower the loading flag on every path. Responses are
// tagged with a sequence ticket so a slow response cannot overwrite state
// already replaced by a newer operation.
package store

import (
	"sync"

	"go.uber.org/atomic"
)

// state is the loading/error bookkeeping shared by every store. The embedding
// store's fields are guarded by the same mutex.
type state struct {
	mu      sync.Mutex
	loading bool
	errMsg  string
	seq     atomic.Int64
}

// begin starts an operation: clears the error, raises the loading flag and
// returns the operation's ticket.
func (s *state) begin() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.errMsg = ""
	return s.seq.Inc()
}

// finish completes the operation identified by ticket. A response from an
// operation that is no longer the newest is discarded wholesale; otherwise
// the loading flag drops and either the error message is set or apply runs
// under the lock.
func (s *state) finish(ticket int64, errMsg string, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket != s.seq.Load() {
		return
	}
	s.loading = false
	if errMsg != "" {
		s.errMsg = errMsg
		return
	}
	if apply != nil {
		apply()
	}
}

// IsLoading reports whether an operation is in flight
func (s *state) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the fixed user-facing message of the last failed operation,
// or "" after a success.
func (s *state) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
