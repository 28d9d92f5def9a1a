package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Session management",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new session",
		Run:   runSessionNew,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		Run:   runSessionList,
	}
	listCmd.Flags().IntP("limit", "l", 20, "Max results")
	listCmd.Flags().Bool("open", false, "Only unfinished sessions")

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a session with its turns",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSessionShow,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		Run:   runSessionRm,
	}

	sessionCmd.AddCommand(newCmd, listCmd, showCmd, rmCmd)
	RootCmd.AddCommand(sessionCmd)
}

func runSessionNew(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess, err := s.CreateSession(cmd.Context())
	if err != nil {
		exitErr("create session", err)
	}

	emit(cmd, sess, func(w io.Writer) { fmt.Fprintln(w, sess.ID) })
}

func runSessionList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	openOnly, _ := cmd.Flags().GetBool("open")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sessions, err := s.ListSessions(cmd.Context(), limit, openOnly)
	if err != nil {
		exitErr("list sessions", err)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "[]")
		return
	}
	emit(cmd, sessions, func(w io.Writer) {
		for _, sess := range sessions {
			state := "open"
			if sess.FinishedAt != nil {
				state = "solved " + sess.Answer
			}
			fmt.Fprintf(w, "%s\t%d turns\t%s\n", sess.ID, sess.TurnCount, state)
		}
	})
}

func runSessionShow(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		sessionFlag = args[0]
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess := resolveSession(cmd.Context(), s, false)
	if sess == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "null")
		return
	}

	emit(cmd, sess, func(w io.Writer) {
		fmt.Fprintf(w, "%s (%d turns)\n", sess.ID, sess.TurnCount)
		for _, t := range sess.Turns {
			switch {
			case t.Jamo != "":
				fmt.Fprintf(w, "%3d. %s %s -> %d\n", t.Seq, t.Kind, t.Jamo, t.Remaining)
			case t.First != "":
				fmt.Fprintf(w, "%3d. %s %s %s -> %d\n", t.Seq, t.Guess, paintToken(t.First), paintToken(t.Second), t.Remaining)
			default:
				fmt.Fprintf(w, "%3d. %s %s -> %d\n", t.Seq, t.Kind, t.Guess, t.Remaining)
			}
		}
	})
}

func runSessionRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.RmSession(cmd.Context(), args[0]); err != nil {
		exitErr("rm session", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"session":%q}`+"\n", args[0])
}
