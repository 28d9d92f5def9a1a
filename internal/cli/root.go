// Package cli implements the pairrot CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/config"
	"github.com/Jaesu26/pairrot-solver/internal/logging"
	"github.com/Jaesu26/pairrot-solver/internal/store"
)

var (
	dbPath      string
	configPath  string
	formatFlag  string
	sessionFlag string
	noColor     bool

	cfg    *config.Config
	logger = zerolog.Nop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "pairrot",
	Short: "Solver for the two-syllable Korean word game",
	Long: "Suggests guesses for a two-syllable Hangul word game and narrows the candidates from the\n" +
		"hints each guess receives. Hints are 사과 바나나 가지 마늘 버섯 당근. SQLite-backed, single binary.",
	PersistentPreRun: loadConfig,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $PAIRROT_DB or ~/.pairrot/pairrot.db)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: $CONFIG_PATH or ./pairrot.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVarP(&sessionFlag, "session", "s", "", "Session id (default: latest open session)")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored text output")
}

func loadConfig(cmd *cobra.Command, args []string) {
	_ = godotenv.Load()

	c, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		c.Store.DBPath = dbPath
	}
	cfg = c
	logger = logging.New(cfg.Log, os.Stderr)
	setupColor(noColor)
}

func getDBPath() string {
	return cfg.DBPath()
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// emit writes v as indented JSON, or calls text when --format=text and text is set.
func emit(cmd *cobra.Command, v any, text func(w io.Writer)) {
	out := cmd.OutOrStdout()
	if formatFlag == "text" && text != nil {
		text(out)
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(out, string(b))
}
