package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	sess, err := ctx.OpenSession(context.Background())
	if err != nil {
		return err
	}
	defer sess.Close()

	p := tea.NewProgram(tui.NewModel(sess, ctx.AIEnabled), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
