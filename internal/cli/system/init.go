package system

import (
	"github.com/julianstephens/aurapulse/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized aurapulse storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
