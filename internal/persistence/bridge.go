package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/storage"
)

// Records is the durable key/value surface the bridge needs.
type Records interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

// ActivitySource is an observable activity collection.
type ActivitySource interface {
	Subscribe(fn func()) func()
	All() []models.Activity
}

// GoalSource is an observable goal collection.
type GoalSource interface {
	Subscribe(fn func()) func()
	All() []models.LongTermGoal
}

// Bridge mirrors the activity and goal collections into two independent
// records, aura_activities and aura_goals.
type Bridge struct {
	records Records
	timeout time.Duration

	// serializes saves so an older snapshot never lands after a newer one
	mu sync.Mutex
}

func NewBridge(records Records) *Bridge {
	return &Bridge{
		records: records,
		timeout: 5 * time.Second,
	}
}

// Load reads both collections. A missing record is an empty collection. An
// unreadable or malformed record is also treated as empty and logged; Load
// never fails.
func (b *Bridge) Load(ctx context.Context) ([]models.Activity, []models.LongTermGoal) {
	activities := []models.Activity{}
	goals := []models.LongTermGoal{}

	loadRecord(ctx, b.records, constants.ActivitiesKey, &activities)
	loadRecord(ctx, b.records, constants.GoalsKey, &goals)

	if activities == nil {
		activities = []models.Activity{}
	}
	if goals == nil {
		goals = []models.LongTermGoal{}
	}
	return activities, goals
}

func loadRecord[T any](ctx context.Context, records Records, key string, dst *[]T) {
	data, err := records.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read record, starting empty", "key", key, "error", err)
		}
		return
	}

	var decoded []T
	if err := json.Unmarshal(data, &decoded); err != nil {
		logger.Warn("Malformed record, starting empty", "key", key, "error", err)
		return
	}
	*dst = decoded
}

// Save writes both collections. The two writes are independent: when the
// second fails the first is not rolled back.
func (b *Bridge) Save(ctx context.Context, activities []models.Activity, goals []models.LongTermGoal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error
	if err := saveRecord(ctx, b.records, constants.ActivitiesKey, activities); err != nil {
		errs = append(errs, err)
	}
	if err := saveRecord(ctx, b.records, constants.GoalsKey, goals); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func saveRecord[T any](ctx context.Context, records Records, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := records.Write(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Attach saves both collections whenever either store reports a change.
// Save failures are logged and never reach the store. The returned function
// detaches the bridge.
func (b *Bridge) Attach(activities ActivitySource, goals GoalSource) func() {
	save := func() {
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()
		if err := b.Save(ctx, activities.All(), goals.All()); err != nil {
			logger.Error("Failed to persist changes", "error", err)
		}
	}

	unsubActivities := activities.Subscribe(save)
	unsubGoals := goals.Subscribe(save)
	return func() {
		unsubActivities()
		unsubGoals()
	}
}

// RecordStatus describes one stored record as Check found it.
type RecordStatus struct {
	Key     string
	Present bool
	Count   int
	Err     error
}

// Check reads both records without the fail-closed fallback of Load, so
// callers can report what Load would silently discard.
func (b *Bridge) Check(ctx context.Context) []RecordStatus {
	return []RecordStatus{
		checkRecord[models.Activity](ctx, b.records, constants.ActivitiesKey),
		checkRecord[models.LongTermGoal](ctx, b.records, constants.GoalsKey),
	}
}

func checkRecord[T any](ctx context.Context, records Records, key string) RecordStatus {
	st := RecordStatus{Key: key}
	data, err := records.Read(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return st
	}
	if err != nil {
		st.Err = err
		return st
	}

	st.Present = true
	var decoded []T
	if err := json.Unmarshal(data, &decoded); err != nil {
		st.Err = fmt.Errorf("malformed %s: %w", key, err)
		return st
	}
	st.Count = len(decoded)
	return st
}
