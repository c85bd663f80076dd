package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/aurapulse/internal/backup"
	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/persistence"
	"github.com/julianstephens/aurapulse/internal/utils"
)

// schemaReporter is implemented by the SQL backends.
type schemaReporter interface {
	SchemaVersion(ctx context.Context) (current, latest int, err error)
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	bg := context.Background()
	ctx.Printf("Running diagnostics...\n\n")

	hasError := false
	fail := func(name string, err error) {
		ctx.Printf("❌ %s: FAIL\n   Error: %v\n", name, err)
		hasError = true
	}

	storeReachable := true
	if err := ctx.Store.Load(); err != nil {
		fail("Store reachable", err)
		storeReachable = false
	} else {
		ctx.Printf("✓ Store reachable: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	if sr, ok := ctx.Store.(schemaReporter); !ok {
		ctx.Printf("⊘ Schema version: SKIPPED (%s backend has no schema)\n", ctx.Backend)
	} else if !storeReachable {
		ctx.Printf("⊘ Schema version: SKIPPED (store not reachable)\n")
	} else if current, latest, err := sr.SchemaVersion(bg); err != nil {
		fail("Schema version", err)
	} else if current != latest {
		fail("Schema version", fmt.Errorf("at version %d, latest is %d", current, latest))
	} else {
		ctx.Printf("✓ Schema version: OK (v%d)\n", current)
	}

	if storeReachable {
		for _, st := range persistence.NewBridge(ctx.Store).Check(bg) {
			name := "Record " + st.Key
			switch {
			case st.Err != nil:
				fail(name, st.Err)
			case !st.Present:
				ctx.Printf("✓ %s: OK (not written yet)\n", name)
			default:
				ctx.Printf("✓ %s: OK (%d entries)\n", name, st.Count)
			}
		}
	} else {
		ctx.Printf("⊘ Records: SKIPPED (store not reachable)\n")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath(), ctx.Backend)
	if !mgr.Supported() {
		ctx.Printf("⊘ Backups present: SKIPPED (%s backend)\n", ctx.Backend)
	} else if backups, err := mgr.List(); err != nil {
		ctx.Printf("⚠ Backups present: WARNING\n   %v\n", err)
	} else if len(backups) == 0 {
		ctx.Printf("⚠ Backups present: WARNING\n   no backups in %s\n", mgr.Dir())
	} else {
		ctx.Printf("✓ Backups present: OK (latest %s)\n", backups[0].Timestamp.Format("2006-01-02 15:04"))
	}

	if today := utils.Today(nil); !utils.ValidateDate(today) {
		fail("Clock", fmt.Errorf("today resolves to %q", today))
	} else {
		ctx.Printf("✓ Clock: OK (%s)\n", today)
	}

	if path := logger.File(); path == "" {
		ctx.Printf("⊘ Log file: SKIPPED (logging not initialized)\n")
	} else {
		ctx.Printf("✓ Log file: OK (%s)\n", path)
	}

	if ctx.AIEnabled {
		ctx.Printf("✓ AI features: OK\n")
	} else {
		ctx.Printf("⚠ AI features: WARNING\n   %s\n", enabled(false))
	}

	ctx.Printf("\n")
	if hasError {
		ctx.Printf("Diagnostics completed with errors.\n")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Printf("All diagnostics passed!\n")
	return nil
}
