package usecase

import "sync"

// InFlight tracks which actions have a call outstanding. Each action is
// independent; a second trigger of the same action while the first is
// running is refused, like a disabled button.
type InFlight struct {
	mu     sync.Mutex
	active map[string]bool
}

func NewInFlight() *InFlight {
	return &InFlight{active: make(map[string]bool)}
}

// Acquire marks action as loading. The returned release is safe to call
// more than once and must be deferred by the caller.
func (f *InFlight) Acquire(action string) (release func(), ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.active[action] {
		return func() {}, false
	}
	f.active[action] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.active, action)
			f.mu.Unlock()
		})
	}, true
}

func (f *InFlight) Active(action string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active[action]
}

// Snapshot lists the actions currently loading.
func (f *InFlight) Snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.active))
	for action := range f.active {
		out = append(out, action)
	}
	return out
}
