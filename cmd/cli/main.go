package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/cmd/cli/commands"
	"github.com/jakechorley/seva-rota/internal/config"
	"github.com/jakechorley/seva-rota/pkg/core/services"
	"github.com/jakechorley/seva-rota/pkg/db"
	"github.com/jakechorley/seva-rota/pkg/localstore"
	"github.com/jakechorley/seva-rota/pkg/utils/logging"
)

var (
	env       string
	verbose   bool
	assumeYes bool
	weekFlag  string
	app       = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seva-rota",
		Short: "Seva rota - weekly Stage and Sanchalan duty scheduling",
		Long: `A CLI tool for assigning volunteers to zones for the Stage and Sanchalan
services of each week, randomizing assignments so nobody repeats in a zone within a month.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to every confirmation")
	rootCmd.PersistentFlags().StringVarP(&weekFlag, "week", "w", "", "Any date in the week to open (yyyy-MM-dd or dd.MM.yy)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.ShowCmd(app))
	rootCmd.AddCommand(commands.GotoCmd(app))
	rootCmd.AddCommand(commands.NextCmd(app))
	rootCmd.AddCommand(commands.PrevCmd(app))
	rootCmd.AddCommand(commands.SetCmd(app))
	rootCmd.AddCommand(commands.ClearCmd(app))
	rootCmd.AddCommand(commands.RandomizeCmd(app))
	rootCmd.AddCommand(commands.SaveCmd(app))
	rootCmd.AddCommand(commands.ResetCmd(app))
	rootCmd.AddCommand(commands.CheckCmd(app))
	rootCmd.AddCommand(commands.VolunteersCmd(app))
	rootCmd.AddCommand(commands.ZonesCmd(app))
	rootCmd.AddCommand(commands.ExportCmd(app))
	rootCmd.AddCommand(commands.HistoryCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, storage and the editor session
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Input = bufio.NewReader(os.Stdin)

	// Load configuration
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	var logFile string
	app.Logger, logFile, err = logging.InitLogger(env, logging.Options{
		LogsDir: app.Cfg.LogsDir,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application",
		zap.String("environment", env),
		zap.String("log_file", logFile),
		zap.String("storage_dir", app.Cfg.StorageDir))

	// Open local storage
	app.Store, err = localstore.Open(app.Cfg.StorageDir, app.Logger, localstore.Options{
		VersionHistory: app.Cfg.VersionHistory,
		Author: localstore.Author{
			Name:  app.Cfg.Author.Name,
			Email: app.Cfg.Author.Email,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	database := db.New(app.Store, app.Logger, db.Defaults{
		Zones: app.Cfg.Zones,
		Pools: app.Cfg.Pools(),
	})

	start, err := startWeek()
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if app.Cfg.RandomSeed != nil {
		seed := *app.Cfg.RandomSeed
		rng = rand.New(rand.NewPCG(seed, seed))
		app.Logger.Debug("Using configured random seed", zap.Uint64("seed", seed))
	}

	app.Prompter = commands.NewTerminalPrompter(app.Input, assumeYes, app.Logger)

	app.Session, err = services.OpenSession(app.Ctx, database, app.Logger, app.Prompter, services.SessionOptions{
		StartWeek: start,
		Rand:      rng,
	})
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	return nil
}

// startWeek picks the week to open: --week, then the configured start week, then today
func startWeek() (time.Time, error) {
	if weekFlag != "" {
		date, err := commands.ParseDate(weekFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --week: %w", err)
		}
		return date, nil
	}

	start, err := app.Cfg.StartDate()
	if err != nil {
		return time.Time{}, err
	}
	if start.IsZero() {
		return time.Now(), nil
	}
	return start, nil
}
