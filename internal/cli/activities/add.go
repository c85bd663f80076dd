package activities

import (
	"context"
	"fmt"

	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/tracker"
	"github.com/julianstephens/aurapulse/internal/utils"
)

type AddCmd struct {
	Title       string `arg:"" help:"Activity title."`
	Start       string `short:"s" help:"Start time (HH:MM)." default:"09:00"`
	End         string `short:"e" help:"End time (HH:MM). Earlier than start means the activity runs past midnight." default:"10:00"`
	Category    string `short:"c" help:"Category (work|health|leisure|education|chores|sleep|other)." default:"work"`
	Description string `short:"d" help:"Optional description."`
	Goal        string `short:"g" help:"Related goal id."`
}

func (c *AddCmd) Validate() error {
	if !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time %q, expected HH:MM", c.Start)
	}
	if !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time %q, expected HH:MM", c.End)
	}
	if _, ok := models.ParseCategory(c.Category); !ok {
		return fmt.Errorf("unknown category %q", c.Category)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.OpenSession(context.Background())
	if err != nil {
		return err
	}
	defer sess.Close()

	category, _ := models.ParseCategory(c.Category)
	a, err := sess.AddActivity(tracker.ActivityInput{
		Title:       c.Title,
		StartTime:   c.Start,
		EndTime:     c.End,
		Category:    category,
		Description: c.Description,
		GoalID:      c.Goal,
	})
	if err != nil {
		return err
	}

	ctx.Printf("✓ Added %q %s-%s on %s (%s)\n", a.Title, a.StartTime, a.EndTime, a.Date, cli.ShortID(a.ID))

	if res := sess.Conflicts(); res.HasConflicts() {
		ctx.Printf("%s", res.FormatReport())
	}
	return nil
}
