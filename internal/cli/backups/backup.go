package backups

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julianstephens/aurapulse/internal/backup"
	"github.com/julianstephens/aurapulse/internal/cli"
	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/logger"
)

func newManager(ctx *cli.Context) *backup.Manager {
	return backup.NewManager(ctx.Store.GetConfigPath(), ctx.Backend)
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	backupPath, err := newManager(ctx).Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	ctx.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := newManager(ctx)
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Printf("No backups found.\n")
		ctx.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n", len(backups), constants.MaxBackups)
	tw := cli.NewTable(ctx.Stdout())
	tw.AppendHeader(table.Row{"Created", "File", "Size"})
	for _, b := range backups {
		tw.AppendRow(table.Row{
			b.Timestamp.Format("2006-01-02 15:04:05"),
			filepath.Base(b.Path),
			fmt.Sprintf("%.1f KB", float64(b.Size)/1024.0),
		})
	}
	tw.Render()
	ctx.Printf("Backup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := newManager(ctx)

	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		possiblePath := filepath.Join(mgr.Dir(), c.BackupFile)
		if _, err := os.Stat(possiblePath); err == nil {
			backupPath = possiblePath
		}
	}
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Restore from %s?", filepath.Base(backupPath))).
			Description("This replaces your current data. A backup of it is taken first.").
			Affirmative("Restore").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.Printf("Restore cancelled.\n")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close store before restore", "error", err)
	}

	previous, err := mgr.Restore(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	ctx.Printf("✓ Restored from %s\n", filepath.Base(backupPath))
	if previous != "" {
		ctx.Printf("Previous data saved as %s\n", filepath.Base(previous))
	}
	return nil
}
