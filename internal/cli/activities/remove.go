package activities

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/models"
)

type RemoveCmd struct {
	ID string `arg:"" help:"Activity id or unique id prefix."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.OpenSession(context.Background())
	if err != nil {
		return err
	}
	defer sess.Close()

	id, err := resolveID(sess.Activities(), c.ID)
	if err != nil {
		return err
	}
	if id == "" || !sess.RemoveActivity(id) {
		ctx.Printf("No activity matches %q, nothing removed.\n", c.ID)
		return nil
	}
	ctx.Printf("✓ Removed activity %s\n", cli.ShortID(id))
	return nil
}

// resolveID finds the activity whose id equals or starts with prefix.
// An empty result means no match.
func resolveID(all []models.Activity, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", nil
	}

	var matches []string
	for _, a := range all {
		if a.ID == prefix {
			return a.ID, nil
		}
		if strings.HasPrefix(a.ID, prefix) {
			matches = append(matches, a.ID)
		}
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	return "", nil
}
