// Package main provides the CLI entrypoint for bikeshare.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/bikeshare/internal/catalog"
	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/console"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/session"
	"github.com/verte-zerg/bikeshare/internal/tripdata"
)

const defaultDataDir = "data"

var (
	dataDir    string
	noClear    bool
	verbose    bool
	configPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runExploreCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/bikeshare/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir, "directory holding the city CSV files")
	rootCmd.Flags().BoolVar(&noClear, "no-clear", false, "do not clear the screen between prompts")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log loading details to stderr")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCitiesCmd())

	return rootCmd
}

func runExploreCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	clearScreen := cfg.ClearScreen && isTerminal(cmd.OutOrStdout())
	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), clearScreen)
	driver := session.NewDriver(c, tripdata.NewLoader(cfg.DataDir, logger))
	if err := driver.Run(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(resolveConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := model.Config{
		DataDir:     dataDir,
		ClearScreen: !noClear,
		Verbose:     verbose,
	}
	if fileCfg.Data.Dir != nil && !cmd.Flags().Changed("data-dir") {
		cfg.DataDir = *fileCfg.Data.Dir
	}
	if fileCfg.Display.ClearScreen != nil && !cmd.Flags().Changed("no-clear") {
		cfg.ClearScreen = *fileCfg.Display.ClearScreen
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return model.Config{}, fmt.Errorf("--data-dir must not be empty")
	}
	return cfg, nil
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := resolveConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List cities and their data files",
		Args:  cobra.NoArgs,
		RunE:  runCitiesCmd,
	}
}

func runCitiesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	loader := tripdata.NewLoader(cfg.DataDir, nil)
	for _, city := range catalog.Cities() {
		path := loader.Path(city)
		status := "ok"
		if _, err := os.Stat(path); err != nil {
			if !os.IsNotExist(err) {
				logErrf("failed to stat %s: %v\n", path, err)
			}
			status = "missing"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d. %-15s %-8s %s\n", city.Code, city.Title(), status, path); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bikeshare configuration
# Uncomment a value to enable it. CLI flags override config values.

[data]
# dir = %q               # Directory holding chicago.csv, new_york_city.csv, washington.csv

[display]
# clear-screen = true       # Clear the terminal between prompts
`,
		defaultDataDir,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
