package activities

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/utils"
)

type ListCmd struct {
	All bool `short:"a" help:"List activities of every day."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.OpenSession(context.Background())
	if err != nil {
		return err
	}
	defer sess.Close()

	var items []models.Activity
	if c.All {
		items = sess.Activities()
	} else {
		items = sess.DayActivities()
	}

	if len(items) == 0 {
		if c.All {
			ctx.Printf("No activities yet.\n")
		} else {
			ctx.Printf("No activities on %s.\n", sess.Date())
		}
		return nil
	}

	tw := cli.NewTable(ctx.Stdout())
	tw.AppendHeader(table.Row{"ID", "Date", "Time", "Duration", "Title", "Category"})
	for _, a := range items {
		tw.AppendRow(table.Row{
			cli.ShortID(a.ID),
			a.Date,
			a.StartTime + "-" + a.EndTime,
			cli.FormatHours(utils.DurationHours(a.StartTime, a.EndTime)),
			a.Title,
			a.Category,
		})
	}
	tw.Render()
	return nil
}
