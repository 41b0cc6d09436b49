package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/backup"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: data consistency
	if err := checkDataConsistency(ctx); err != nil {
		fmt.Printf("❌ Data consistency: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Data consistency: OK\n")
	}

	// Check 3: single process (warning only; storage is single-writer)
	if err := checkSingleProcess(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if _, err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkDataConsistency(ctx *Context) error {
	st, err := ctx.Store.Load()
	if err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	habitIDs := make(map[string]bool)
	for _, h := range st.Habits {
		if habitIDs[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		habitIDs[h.ID] = true

		if h.BestStreak < h.Streak || h.Streak < 0 {
			return fmt.Errorf("habit %s has inconsistent streak counters (%d/%d)", h.ID, h.Streak, h.BestStreak)
		}
		if h.TotalCompletions < 0 {
			return fmt.Errorf("habit %s has negative total completions", h.ID)
		}
	}

	orphans := 0
	for _, entries := range st.Completions {
		for id := range entries {
			if !habitIDs[id] {
				orphans++
			}
		}
	}
	if orphans > 0 {
		return fmt.Errorf("%d completion entries reference unknown habits", orphans)
	}

	return nil
}

// checkSingleProcess looks for other running habitflow processes. The storage
// file supports only one writer at a time.
func checkSingleProcess() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	name := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	others := 0
	for _, p := range procs {
		if p.Pid() != self && strings.TrimSuffix(p.Executable(), ".exe") == name {
			others++
		}
	}
	if others > 0 {
		return fmt.Errorf("%d other %s process(es) running - concurrent writes can corrupt storage", others, name)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitflow backup create'")
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// Check if timezone is set
	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
