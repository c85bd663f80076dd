package insights

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julianstephens/aurapulse/internal/analytics"
	"github.com/julianstephens/aurapulse/internal/cli"
)

const stripWidth = 48

type DayCmd struct {
	Width int `help:"Width of the timeline strip." default:"48"`
}

func (c *DayCmd) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative")
	}
	return nil
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.OpenSession(context.Background())
	if err != nil {
		return err
	}
	defer sess.Close()

	day := sess.DayActivities()
	ctx.Printf("%s\n\n", sess.Date())
	if len(day) == 0 {
		ctx.Printf("Nothing planned. Add an activity with 'aurapulse activity add'.\n")
		return nil
	}

	width := c.Width
	if width == 0 {
		width = stripWidth
	}
	ctx.Printf("00:00 %s 24:00\n\n", analytics.Strip(analytics.Timeline(day), width))

	tw := cli.NewTable(ctx.Stdout())
	tw.AppendHeader(table.Row{"Category", "Hours"})
	for _, ch := range analytics.Breakdown(day) {
		tw.AppendRow(table.Row{ch.Category, cli.FormatHours(ch.Hours)})
	}
	tw.Render()
	ctx.Printf("Total: %s across %d activities\n", cli.FormatHours(analytics.TotalHours(day)), len(day))

	result := sess.Conflicts()
	if result.HasConflicts() {
		ctx.Printf("\n%s", result.FormatReport())
	}
	return nil
}
