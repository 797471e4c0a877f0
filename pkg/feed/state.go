package feed

import (
	"errors"
	"sync"

	"github.com/umputun/passiondaily/pkg/domain"
)

// errStale is returned when a result belongs to a superseded feed state
var errStale = errors.New("feed state superseded")

// frame is the mutable feed state of the active category
type frame struct {
	category   domain.Category
	items      []domain.Quote
	index      int
	loading    bool
	reachedEnd bool
	cursor     domain.Cursor
}

// State is the single owner of the feed state, every change is published as a snapshot.
// Category switch and seek start a new generation, mutations carrying an older generation are dropped.
type State struct {
	mu   sync.Mutex
	gen  uint64
	f    frame
	subs map[int]chan domain.Snapshot
	seq  int
}

// NewState makes an empty state with no category selected
func NewState() *State {
	return &State{subs: map[int]chan domain.Snapshot{}}
}

// Snapshot returns the current state copy
func (s *State) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe returns a channel receiving the latest snapshot after every change, starting with the current one.
// A slow reader skips intermediate snapshots. The returned func unsubscribes and closes the channel.
func (s *State) Subscribe() (snaps <-chan domain.Snapshot, unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan domain.Snapshot, 1)
	ch <- s.snapshot()
	s.seq++
	id := s.seq
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// generation returns the current generation
func (s *State) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// reset starts a new generation for the category, clearing everything and marking it loading
func (s *State) reset(c domain.Category) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.f = frame{category: c, loading: true}
	s.publish()
	return s.gen
}

// begin starts a new generation keeping the visible window until it is replaced
func (s *State) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.f.loading = true
	s.publish()
	return s.gen
}

// view returns a copy of the frame if gen is still current
func (s *State) view(gen uint64) (frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return frame{}, false
	}
	f := s.f
	f.items = append([]domain.Quote(nil), s.f.items...)
	return f, true
}

// update applies fn to the frame of the current generation and publishes if fn reports a change.
// Returns false without calling fn if gen is stale.
func (s *State) update(gen uint64, fn func(f *frame) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	if fn(&s.f) {
		s.publish()
	}
	return true
}

// replace swaps the whole window, used by seek
func (s *State) replace(gen uint64, c domain.Category, items []domain.Quote, index int) bool {
	return s.update(gen, func(f *frame) bool {
		*f = frame{category: c, items: items, index: index, loading: f.loading}
		return true
	})
}

// setLoading sets the loading flag of the generation
func (s *State) setLoading(gen uint64, loading bool) {
	s.update(gen, func(f *frame) bool {
		if f.loading == loading {
			return false
		}
		f.loading = loading
		return true
	})
}

// snapshot makes a copy of the frame, must be called under lock
func (s *State) snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Category:   s.f.category,
		Items:      append([]domain.Quote{}, s.f.items...),
		Index:      s.f.index,
		Loading:    s.f.loading,
		ReachedEnd: s.f.reachedEnd,
	}
	if s.f.index >= 0 && s.f.index < len(snap.Items) {
		cur := snap.Items[s.f.index]
		snap.Current = &cur
	}
	return snap
}

// publish sends the snapshot to every subscriber replacing an unread one, must be called under lock
func (s *State) publish() {
	snap := s.snapshot()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
