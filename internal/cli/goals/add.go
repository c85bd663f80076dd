package goals

import (
	"context"
	"fmt"

	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/models"
)

type AddCmd struct {
	Title   string `arg:"" help:"Book or course title."`
	Creator string `short:"b" name:"by" help:"Author or platform." required:""`
	Type    string `short:"t" help:"Goal type (book|course)." default:"book"`
}

func (c *AddCmd) Validate() error {
	if _, ok := models.ParseGoalType(c.Type); !ok {
		return fmt.Errorf("goal type must be book or course, got %q", c.Type)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.OpenSession(context.Background())
	if err != nil {
		return err
	}
	defer sess.Close()

	goalType, _ := models.ParseGoalType(c.Type)
	if ctx.AIEnabled {
		ctx.Printf("Estimating %s %q...\n", goalType, c.Title)
	}

	goal, est, err := sess.AddGoal(context.Background(), c.Title, c.Creator, goalType)
	if err != nil {
		return err
	}

	ctx.Printf("✓ Added goal %q by %s (%s)\n", goal.Title, goal.Creator, cli.ShortID(goal.ID))
	ctx.Printf("  Estimated total: %s (%s)\n", cli.FormatHours(goal.EstimatedTotalHours), est.Info)
	ctx.Printf("  Daily pace: %d min/day for %d days, target %s\n", goal.DailyRequirementMinutes, constants.GoalHorizonDays, goal.TargetDate)
	return nil
}
