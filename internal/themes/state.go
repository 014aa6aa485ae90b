package themes

import (
	"sync"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Snapshot is the preference and applied appearance at one point in time.
type Snapshot struct {
	Preference Preference
	Resolved   Resolved
}

// State owns the appearance preference. It resolves once in Init and then
// changes only through SetPreference, Toggle and SystemChanged. State is
// safe for concurrent use.
type State struct {
	store  interfaces.PreferenceStore
	system interfaces.SystemAppearance
	logger interfaces.Logger

	mu          sync.Mutex
	initialized bool
	preference  Preference
	systemDark  bool
	resolved    Resolved
	nextID      int
	listeners   map[int]func(Snapshot)
}

// StateOption configures a State.
type StateOption func(*State)

// WithLogger sets the logger used for store failures and transitions.
func WithLogger(logger interfaces.Logger) StateOption {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewState returns an uninitialised State. A nil store keeps the preference
// in memory; a nil system source reports a light background.
func NewState(store interfaces.PreferenceStore, system interfaces.SystemAppearance, opts ...StateOption) *State {
	if store == nil {
		store = NewMemoryStore()
	}
	if system == nil {
		system = StaticSystem{}
	}
	s := &State{
		store:      store,
		system:     system,
		logger:     logging.NoOp(),
		preference: PreferenceSystem,
		resolved:   ResolvedLight,
		listeners:  map[int]func(Snapshot){},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Init reads the stored preference and the system appearance. A missing or
// invalid stored value means system. Calls after the first are no-ops.
func (s *State) Init() Snapshot {
	s.mu.Lock()
	if s.initialized {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	preference := PreferenceSystem
	stored, err := s.store.Load()
	if err != nil {
		s.logger.Warn("themes.preference.load_failed", "error", err)
	} else if parsed, perr := ParsePreference(stored); perr == nil {
		preference = parsed
	} else if stored != "" {
		s.logger.Warn("themes.preference.invalid", "value", stored)
	}

	s.initialized = true
	s.preference = preference
	s.systemDark = s.system.PrefersDark()
	s.resolved = preference.Resolve(s.systemDark)
	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.logger.Debug("themes.initialized", "preference", snap.Preference, "resolved", snap.Resolved)
	notify(listeners, snap)
	return snap
}

// Snapshot returns the current preference and applied appearance.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SetPreference stores p and re-resolves the applied appearance. Store
// failures are logged and do not prevent the change.
func (s *State) SetPreference(p Preference) (Snapshot, error) {
	parsed, err := ParsePreference(string(p))
	if err != nil {
		return s.Snapshot(), err
	}
	return s.update(func(Preference) Preference { return parsed }), nil
}

// Toggle advances the preference light, dark, system, light.
func (s *State) Toggle() Snapshot {
	return s.update(Preference.Next)
}

// update applies next to the current preference in one critical section and
// then persists and broadcasts the result.
func (s *State) update(next func(Preference) Preference) Snapshot {
	s.mu.Lock()
	s.initialized = true
	s.preference = next(s.preference)
	s.resolved = s.preference.Resolve(s.systemDark)
	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	if err := s.store.Save(string(snap.Preference)); err != nil {
		s.logger.Warn("themes.preference.save_failed", "error", err)
	}
	s.logger.Debug("themes.preference.changed", "preference", snap.Preference, "resolved", snap.Resolved)
	notify(listeners, snap)
	return snap
}

// SystemChanged records a change of the system appearance. The applied
// appearance only follows it while the preference is system.
func (s *State) SystemChanged(dark bool) Snapshot {
	s.mu.Lock()
	s.systemDark = dark
	if s.preference != PreferenceSystem {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	previous := s.resolved
	s.resolved = s.preference.Resolve(dark)
	snap := s.snapshotLocked()
	var listeners []func(Snapshot)
	if previous != snap.Resolved {
		listeners = s.listenersLocked()
	}
	s.mu.Unlock()

	notify(listeners, snap)
	return snap
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *State) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{Preference: s.preference, Resolved: s.resolved}
}

func (s *State) listenersLocked() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(listeners []func(Snapshot), snap Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
