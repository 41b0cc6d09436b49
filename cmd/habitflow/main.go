package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/analytics"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/cli"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/habitflow/habitflow.db"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habitflow storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Today  cli.TodayCmd  `cmd:"" help:"Show habits due today."`
	Done   cli.DoneCmd   `cmd:"" help:"Toggle a habit's completion."`
	Habit  struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
	} `cmd:"" help:"Manage habits."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show habit analytics."`
	Correlate cli.CorrelateCmd `cmd:"" help:"Show the habit correlation matrix."`
	Export    cli.ExportCmd    `cmd:"" help:"Export state as JSON or CSV."`
	Import    cli.ImportCmd    `cmd:"" help:"Import a state snapshot."`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the storage file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitflow"),
		kong.Description("Habit tracker with streaks, consistency and momentum analytics"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:     store,
		Analytics: analytics.New(),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
