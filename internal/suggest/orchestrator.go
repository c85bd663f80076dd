package suggest

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/models"
)

// Advisor produces schedule suggestions for one day.
type Advisor interface {
	Suggest(ctx context.Context, activities []models.Activity, goals []models.LongTermGoal) ([]models.Suggestion, error)
}

// State is a snapshot of the suggestion panel.
type State struct {
	Loading     bool
	Suggestions []models.Suggestion
}

// Request is one refresh in flight. It carries its own copy of the inputs.
type Request struct {
	Seq        uint64
	Activities []models.Activity
	Goals      []models.LongTermGoal
}

// Result is the outcome of running a Request.
type Result struct {
	Seq         uint64
	Suggestions []models.Suggestion
	Err         error
}

// Orchestrator owns the suggestion state and drives refreshes against an Advisor.
//
// A refresh has three steps so that UI loops can run the slow part elsewhere:
// Begin marks the state as loading and snapshots the inputs, Run talks to the
// advisor without touching state, and Complete applies the result. By default
// overlapping refreshes are allowed and the last completion wins.
type Orchestrator struct {
	advisor Advisor
	timeout time.Duration
	guard   bool

	mu          sync.Mutex
	loading     bool
	suggestions []models.Suggestion
	seq         uint64
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSequenceGuard makes Complete discard results older than the newest request.
func WithSequenceGuard() Option {
	return func(o *Orchestrator) { o.guard = true }
}

// WithTimeout bounds each advisor call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.timeout = d }
}

func New(advisor Advisor, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		advisor:     advisor,
		timeout:     constants.DefaultRequestTimeout,
		suggestions: []models.Suggestion{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns a copy of the current state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]models.Suggestion, len(o.suggestions))
	copy(out, o.suggestions)
	return State{Loading: o.loading, Suggestions: out}
}

// Begin starts a refresh for the selected day. It returns false and leaves the
// state untouched when there is neither an activity on the day nor any goal.
func (o *Orchestrator) Begin(dayActivities []models.Activity, goals []models.LongTermGoal) (Request, bool) {
	if len(dayActivities) == 0 && len(goals) == 0 {
		return Request{}, false
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.seq++
	o.loading = true

	req := Request{
		Seq:        o.seq,
		Activities: make([]models.Activity, len(dayActivities)),
		Goals:      make([]models.LongTermGoal, len(goals)),
	}
	copy(req.Activities, dayActivities)
	copy(req.Goals, goals)
	return req, true
}

// Run calls the advisor for req. It may block and does not touch the state.
func (o *Orchestrator) Run(ctx context.Context, req Request) Result {
	if o.advisor == nil {
		return Result{Seq: req.Seq, Suggestions: []models.Suggestion{}}
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	suggestions, err := o.advisor.Suggest(ctx, req.Activities, req.Goals)
	if err != nil {
		logger.Warn("Suggestion refresh failed", "seq", req.Seq, "error", err)
		return Result{Seq: req.Seq, Err: err}
	}
	return Result{Seq: req.Seq, Suggestions: suggestions}
}

// Complete applies res. A failed refresh clears the suggestions. Loading ends
// with whichever completion is applied. With the sequence guard, results from
// superseded requests are dropped and Complete returns false.
func (o *Orchestrator) Complete(res Result) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.guard && res.Seq != o.seq {
		logger.Debug("Discarding stale suggestions", "seq", res.Seq, "latest", o.seq)
		return false
	}

	switch {
	case res.Err != nil, res.Suggestions == nil:
		o.suggestions = []models.Suggestion{}
	default:
		o.suggestions = make([]models.Suggestion, len(res.Suggestions))
		copy(o.suggestions, res.Suggestions)
	}
	o.loading = false
	return true
}

// RefreshNow runs a whole refresh synchronously. It returns false when the
// precondition for a refresh is not met.
func (o *Orchestrator) RefreshNow(ctx context.Context, dayActivities []models.Activity, goals []models.LongTermGoal) bool {
	req, ok := o.Begin(dayActivities, goals)
	if !ok {
		return false
	}
	o.Complete(o.Run(ctx, req))
	return true
}
