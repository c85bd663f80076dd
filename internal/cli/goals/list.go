package goals

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julianstephens/aurapulse/internal/cli"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.OpenSession(context.Background())
	if err != nil {
		return err
	}
	defer sess.Close()

	goals := sess.Goals()
	if len(goals) == 0 {
		ctx.Printf("No goals yet. Add one with 'aurapulse goal add'.\n")
		return nil
	}

	tw := cli.NewTable(ctx.Stdout())
	tw.AppendHeader(table.Row{"ID", "Title", "Type", "By", "Progress", "Daily", "Target"})
	for _, g := range goals {
		tw.AppendRow(table.Row{
			cli.ShortID(g.ID),
			g.Title,
			g.Type,
			g.Creator,
			fmt.Sprintf("%s / %s (%.0f%%)", cli.FormatHours(g.CompletedHours), cli.FormatHours(g.EstimatedTotalHours), g.Progress()*100),
			fmt.Sprintf("%d min", g.DailyRequirementMinutes),
			g.TargetDate,
		})
	}
	tw.Render()
	return nil
}
