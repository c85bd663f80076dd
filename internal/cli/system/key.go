package system

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/aurapulse/internal/ai"
	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/keyring"
)

type KeySetCmd struct {
	Key string `arg:"" optional:"" help:"API key. Prompted for when omitted."`
}

func (c *KeySetCmd) Run(ctx *cli.Context) error {
	key := c.Key
	if key == "" {
		err := huh.NewInput().
			Title("Gemini API key").
			EchoMode(huh.EchoModePassword).
			Value(&key).
			Run()
		if err != nil {
			return err
		}
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}
	ctx.Printf("✓ API key stored in the OS keyring\n")
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteAPIKey()
	if errors.Is(err, keyring.ErrNotFound) {
		ctx.Printf("No API key stored.\n")
		return nil
	}
	if err != nil {
		return err
	}
	ctx.Printf("✓ API key removed from the OS keyring\n")
	return nil
}

type KeyStatusCmd struct{}

func (c *KeyStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Printf("Keyring: unavailable\n")
	} else {
		ctx.Printf("Keyring: available\n")
	}

	_, source := ai.ResolveAPIKey("")
	ctx.Printf("Stored key: %s\n", yesNo(source == ai.KeySourceKeyring))
	ctx.Printf("AI features: %s\n", enabled(ctx.AIEnabled))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return fmt.Sprintf("disabled (set %s or run '%s key set')", constants.DefaultEnvAPIKey, constants.AppName)
}
