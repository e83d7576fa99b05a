// unionroster is a turn-based character-roster demo driven from the terminal.
// Usage: unionroster [--plain] [--script <file>] [--trace] [--roster <dir>] [--seed <n>]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathoo/unionroster/cli"
	"github.com/nathoo/unionroster/config"
	"github.com/nathoo/unionroster/engine"
	"github.com/nathoo/unionroster/engine/save"
	"github.com/nathoo/unionroster/engine/state"
	"github.com/nathoo/unionroster/loader"
	"github.com/nathoo/unionroster/tui"
	"github.com/nathoo/unionroster/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagPlain  bool
	flagTrace  bool
	flagScript string
	flagRoster string
	flagSeed   int64
)

var rootCmd = &cobra.Command{
	Use:          "unionroster",
	Short:        "Turn-based character roster demo",
	Long:         `unionroster runs a party of four character classes. Select a character, perform class actions and manage status effects.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "unionroster %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "use the line-oriented CLI instead of the TUI")
	rootCmd.Flags().BoolVar(&flagTrace, "trace", false, "print a trace line after every command")
	rootCmd.Flags().StringVar(&flagScript, "script", "", "replay commands from a file (implies --plain)")
	rootCmd.Flags().StringVar(&flagRoster, "roster", "", "directory of Lua roster scenario files")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (overrides UNIONROSTER_SEED)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	initial, title, err := initialState(flagRoster)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	eng := engine.New(initial, cfg.Seed)
	slog.Debug("session started",
		slog.String("scenario", title),
		slog.Int("roster", len(initial.Roster)),
		slog.Int64("seed", cfg.Seed),
	)

	// Script mode: open file, force plain, echo commands.
	if flagScript != "" {
		f, err := os.Open(flagScript)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := cli.New(eng, store)
		c.Title = title
		c.In = f
		c.EchoInput = true
		c.Trace = flagTrace
		c.Run()
		return nil
	}

	if flagPlain || !isTerminal() {
		c := cli.New(eng, store)
		c.Title = title
		c.Trace = flagTrace
		c.Run()
		return nil
	}

	return tui.Run(eng, store, title)
}

// initialState returns the reference party, or the scenario in dir.
func initialState(dir string) (types.GameState, string, error) {
	if dir == "" {
		return state.NewState(), "Reference Party", nil
	}
	sc, err := loader.Load(dir)
	if err != nil {
		return types.GameState{}, "", fmt.Errorf("loading roster: %w", err)
	}
	s, err := state.FromScenario(sc.Roster, sc.Inventory)
	if err != nil {
		return types.GameState{}, "", err
	}
	return s, sc.Title, nil
}

// openStore picks Redis when an address is configured, files otherwise.
func openStore(cfg config.Config) (save.Store, error) {
	if cfg.RedisAddr != "" {
		return save.DialRedis(cfg.RedisAddr)
	}
	return save.NewFileStore(cfg.SaveDir), nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
