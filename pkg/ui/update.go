package ui

import (
	"time"

	"github.com/go-edwin/edwin/pkg/errors"
)

// UpdateFunc is a per-frame callback run by Tick.
type UpdateFunc func()

type registration struct {
	node   ID
	update UpdateFunc
}

// RegisterUpdate adds fn to the update list. When id is not Null, fn only
// runs while the node is visible and is unregistered when the node is
// removed.
func (s *State) RegisterUpdate(id ID, fn UpdateFunc) {
	if len(s.updates) >= s.updCap {
		s.violate("ui.RegisterUpdate", errors.KindCapacity, id, "too many registered update functions (%d)", s.updCap)
		return
	}
	if id != Null {
		n, ok := s.live("ui.RegisterUpdate", id)
		if !ok {
			return
		}
		n.Flags |= FlagOwnUpdate
	}
	s.updates = append(s.updates, registration{node: id, update: fn})
}

// UnregisterUpdate removes every function registered for id. Null removes
// all registrations.
func (s *State) UnregisterUpdate(id ID) {
	if id == Null {
		clear(s.updates)
		s.updates = s.updates[:0]
		return
	}
	if s.inRange(id) {
		s.at(id).Flags &^= FlagOwnUpdate
	}
	for i := len(s.updates) - 1; i >= 0; i-- {
		if s.updates[i].node != id {
			continue
		}
		last := len(s.updates) - 1
		s.updates[i] = s.updates[last]
		s.updates[last] = registration{}
		s.updates = s.updates[:last]
	}
}

// Updates returns the number of registered update functions.
func (s *State) Updates() int { return len(s.updates) }

// Tick runs one chunk of the update list. Over n consecutive calls every
// registration runs once; the first chunk after wrapping absorbs the
// remainder. When there are fewer registrations than groups, all of them
// run together on every n-th call.
func (s *State) Tick(n int) {
	start := time.Now()
	s.stats.DataCalls = 0

	groups := max(n, 1)
	count := len(s.updates)
	chunk := count / groups

	if chunk > 0 || s.stats.UpdateCalls%uint64(groups) == 0 {
		if s.updateAt >= count {
			s.updateAt = 0
		}
		if s.updateAt == 0 {
			chunk += count % groups
		}
		end := min(s.updateAt+chunk, count)
		// Callbacks may unregister entries while the chunk runs.
		for i := s.updateAt; i < end && i < len(s.updates); i++ {
			s.runUpdate(s.updates[i])
		}
		s.updateAt += chunk
	}

	s.stats.UpdateCalls++
	s.stats.UpdateTime = time.Since(start)
}

func (s *State) runUpdate(r registration) {
	if r.update == nil {
		return
	}
	if r.node != Null && !s.visible(r.node) {
		return
	}
	defer errors.RecoverNode("ui.Tick", int(r.node))
	r.update()
}
