package insights

import (
	"context"

	"github.com/julianstephens/aurapulse/internal/cli"
)

type SuggestCmd struct{}

func (c *SuggestCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.OpenSession(context.Background())
	if err != nil {
		return err
	}
	defer sess.Close()

	if !ctx.AIEnabled {
		ctx.Printf("AI suggestions are disabled. Set a key with 'aurapulse key set' or GEMINI_API_KEY.\n")
		return nil
	}

	if !sess.Refresh(context.Background()) {
		ctx.Printf("Nothing to analyze on %s. Add an activity or a goal first.\n", sess.Date())
		return nil
	}

	suggestions := sess.Suggestions().State().Suggestions
	if len(suggestions) == 0 {
		ctx.Printf("No suggestions right now. Try again later.\n")
		return nil
	}

	ctx.Printf("Suggestions for %s\n\n", sess.Date())
	for i, s := range suggestions {
		ctx.Printf("%d. %s [%s]\n   %s\n", i+1, s.Title, cli.ImpactLabel(s.Impact), s.Suggestion)
	}
	return nil
}
