package schedule

import (
	"sync"

	"github.com/julianstephens/aurapulse/internal/models"
)

// GoalStore holds long-term goals. Goals are only ever added.
type GoalStore struct {
	notifier
	mu  sync.RWMutex
	all []models.LongTermGoal
}

func NewGoalStore(initial []models.LongTermGoal) *GoalStore {
	s := &GoalStore{}
	s.Replace(initial)
	return s
}

// Add appends g unchanged and notifies subscribers.
func (s *GoalStore) Add(g models.LongTermGoal) {
	s.mu.Lock()
	s.all = AddGoal(s.all, g)
	s.mu.Unlock()

	s.emit()
}

func (s *GoalStore) All() []models.LongTermGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LongTermGoal, len(s.all))
	copy(out, s.all)
	return out
}

func (s *GoalStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.all)
}

// Replace swaps the whole collection without notifying subscribers.
func (s *GoalStore) Replace(all []models.LongTermGoal) {
	next := make([]models.LongTermGoal, len(all))
	copy(next, all)

	s.mu.Lock()
	s.all = next
	s.mu.Unlock()
}
