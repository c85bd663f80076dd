package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/validation"
)

// Estimator answers how many hours a book or course takes.
type Estimator interface {
	Estimate(ctx context.Context, title, creator string, goalType models.GoalType) (models.Estimate, error)
}

// GoalPlanner turns a title/creator/type submission into a goal with frozen pacing.
type GoalPlanner struct {
	estimator Estimator
	timeout   time.Duration
	now       func() time.Time
	newID     func() string
}

// PlannerOption configures a GoalPlanner.
type PlannerOption func(*GoalPlanner)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) PlannerOption {
	return func(p *GoalPlanner) { p.now = now }
}

// WithIDs overrides uuid generation.
func WithIDs(newID func() string) PlannerOption {
	return func(p *GoalPlanner) { p.newID = newID }
}

// WithTimeout bounds each estimator call.
func WithTimeout(d time.Duration) PlannerOption {
	return func(p *GoalPlanner) { p.timeout = d }
}

func NewGoalPlanner(estimator Estimator, opts ...PlannerOption) *GoalPlanner {
	p := &GoalPlanner{
		estimator: estimator,
		timeout:   constants.DefaultRequestTimeout,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan validates the submission, asks the estimator for the total effort and
// builds the goal. Estimation problems never fail the call: the fixed fallback
// estimate is used instead. Only invalid input returns an error.
func (p *GoalPlanner) Plan(ctx context.Context, title, creator string, goalType models.GoalType) (models.LongTermGoal, models.Estimate, error) {
	title = strings.TrimSpace(title)
	creator = strings.TrimSpace(creator)
	if err := validation.ValidateGoalInput(title, creator, goalType); err != nil {
		return models.LongTermGoal{}, models.Estimate{}, err
	}

	est := p.estimate(ctx, title, creator, goalType)
	goal := models.NewGoal(p.newID(), title, creator, goalType, est.Hours, p.now())
	return goal, est, nil
}

func (p *GoalPlanner) estimate(ctx context.Context, title, creator string, goalType models.GoalType) models.Estimate {
	if p.estimator == nil {
		return models.FallbackEstimate()
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	est, err := p.estimator.Estimate(ctx, title, creator, goalType)
	if err != nil {
		logger.Warn("Goal estimation failed, using fallback", "title", title, "error", err)
		return models.FallbackEstimate()
	}
	if est.Hours <= 0 {
		logger.Warn("Goal estimation returned non-positive hours, using fallback", "title", title, "hours", est.Hours)
		return models.FallbackEstimate()
	}
	return est
}
