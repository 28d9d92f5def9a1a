package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	emit(cmd, stats, func(w io.Writer) {
		fmt.Fprintf(w, "db: %s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
		fmt.Fprintf(w, "words: %d\n", stats.TotalWords)
		for _, l := range stats.Labels {
			fmt.Fprintf(w, "  %s: %d\n", l.Label, l.Count)
		}
		fmt.Fprintf(w, "sessions: %d (%d open), turns: %d\n", stats.Sessions, stats.OpenSessions, stats.Turns)
	})
}
