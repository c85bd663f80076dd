package schedule

import "sync"

// Listener is called after a store mutation has been applied.
type Listener = func()

type notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// Subscribe registers fn for change notifications and returns a function that
// removes it again.
func (n *notifier) Subscribe(fn Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]Listener)
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

func (n *notifier) emit() {
	n.mu.Lock()
	fns := make([]Listener, 0, len(n.listeners))
	for i := 0; i < n.nextID; i++ {
		if fn, ok := n.listeners[i]; ok {
			fns = append(fns, fn)
		}
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
