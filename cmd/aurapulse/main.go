package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/aurapulse/internal/ai"
	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/cli/activities"
	"github.com/julianstephens/aurapulse/internal/cli/backups"
	"github.com/julianstephens/aurapulse/internal/cli/goals"
	"github.com/julianstephens/aurapulse/internal/cli/insights"
	"github.com/julianstephens/aurapulse/internal/cli/system"
	"github.com/julianstephens/aurapulse/internal/constants"
	apperrors "github.com/julianstephens/aurapulse/internal/errors"
	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/schedule"
	"github.com/julianstephens/aurapulse/internal/storage"
	"github.com/julianstephens/aurapulse/internal/suggest"
	"github.com/julianstephens/aurapulse/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store path or PostgreSQL connection string. A trailing slash selects a diskv directory, .json a single JSON file." type:"string" default:"${default_store}"`
	Backend string `help:"Storage backend (sqlite, json, diskv, postgres). Inferred from --store when empty."`
	Date    string `help:"Selected day (YYYY-MM-DD). Defaults to today."`
	TZ      string `name:"tz" help:"IANA timezone that decides today. Defaults to local time."`
	Debug   bool   `help:"Log debug output to stderr."`
	APIKey  string `name:"api-key" help:"Gemini API key. Falls back to the OS keyring." env:"GEMINI_API_KEY"`
	Model   string `help:"Gemini model." env:"AURAPULSE_MODEL" default:"${default_model}"`
	Rate    int    `help:"Maximum model requests per minute (0 for unlimited)." default:"${default_rate}"`

	Init     system.InitCmd      `cmd:"" help:"Initialize aurapulse storage."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day      insights.DayCmd     `cmd:"" help:"Show the timeline and category breakdown of a day."`
	Suggest  insights.SuggestCmd `cmd:"" help:"Ask for AI suggestions about a day and your goals."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Activity struct {
		Add  activities.AddCmd    `cmd:"" help:"Add an activity to the selected day."`
		List activities.ListCmd   `cmd:"" help:"List activities." default:"1"`
		Rm   activities.RemoveCmd `cmd:"" aliases:"remove,delete" help:"Remove an activity."`
	} `cmd:"" help:"Manage activities."`
	Goal struct {
		Add  goals.AddCmd  `cmd:"" help:"Add a book or course goal."`
		List goals.ListCmd `cmd:"" help:"List goals." default:"1"`
	} `cmd:"" help:"Manage long-term goals."`
	Key struct {
		Set    system.KeySetCmd    `cmd:"" help:"Store the Gemini API key in the OS keyring."`
		Delete system.KeyDeleteCmd `cmd:"" help:"Remove the stored API key."`
		Status system.KeyStatusCmd `cmd:"" help:"Show API key status." default:"1"`
	} `cmd:"" help:"Manage the Gemini API key."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily schedule tracker with AI insights"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":       constants.Version,
			"default_store": constants.DefaultConfigPath,
			"default_model": constants.DefaultModel,
			"default_rate":  fmt.Sprint(constants.DefaultRequestsPerMin),
		},
	)

	command := ctx.Command()
	isTUI := command == "tui"
	if err := logger.Init(logger.Config{Dir: logDir(CLI.Store), Debug: CLI.Debug, Quiet: isTUI}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	store, err := cli.OpenStore(CLI.Backend, CLI.Store)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	backend := CLI.Backend
	if backend == "" {
		backend = cli.DetectBackend(CLI.Store)
	}

	if command != "init" && command != "doctor" && !strings.HasPrefix(command, "key") {
		if err := store.Load(); err != nil {
			if errors.Is(err, storage.ErrNotInitialized) {
				apperrors.Fatalf("storage not initialized, run '%s init' first", constants.AppName)
			}
			apperrors.Fatal(err)
		}
	}

	loc, err := utils.LoadLocation(CLI.TZ)
	if err != nil {
		apperrors.Fatalf("invalid --tz %q: %v", CLI.TZ, err)
	}

	advisor, estimator, enabled := newCollaborators(CLI.APIKey)

	appCtx := &cli.Context{
		Store:     store,
		Backend:   backend,
		Date:      CLI.Date,
		Location:  loc,
		Advisor:   advisor,
		Estimator: estimator,
		AIEnabled: enabled,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("Command failed", "command", command, "error", err)
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		store.Close()
		os.Exit(1)
	}
}

// newCollaborators builds the Gemini advisor and estimator, or disabled ones
// when no key is configured or the client cannot be created.
func newCollaborators(explicitKey string) (suggest.Advisor, schedule.Estimator, bool) {
	key, source := ai.ResolveAPIKey(explicitKey)
	if key == "" {
		logger.Debug("No api key, ai features disabled")
		return ai.Disabled{}, ai.Disabled{}, false
	}

	g, err := ai.NewGemini(context.Background(), ai.Config{
		APIKey:            key,
		Model:             CLI.Model,
		RequestsPerMinute: CLI.Rate,
		Burst:             constants.DefaultRequestBurst,
	})
	if err != nil {
		logger.Warn("Could not create Gemini client, ai features disabled", "error", err)
		return ai.Disabled{}, ai.Disabled{}, false
	}
	logger.Debug("Gemini client ready", "model", CLI.Model, "key_source", source)
	return g, g, true
}

// logDir places logs next to a file store, or in the default config
// directory for postgres.
func logDir(store string) string {
	location := store
	if cli.DetectBackend(store) == constants.BackendPostgres {
		location = constants.DefaultConfigPath
	}
	expanded, err := cli.ExpandPath(location)
	if err != nil {
		return os.TempDir()
	}
	if strings.HasSuffix(expanded, string(filepath.Separator)) {
		return filepath.Clean(expanded)
	}
	return filepath.Dir(expanded)
}
