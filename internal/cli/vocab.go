package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/model"
	"github.com/Jaesu26/pairrot-solver/internal/store"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Vocabulary management",
	Long: "Manage the labelled word list. Labels: possible, impossible, maybe_possible, maybe_impossible.\n" +
		"Until words are added, the built-in list is used.",
}

func init() {
	addCmd := &cobra.Command{
		Use:   "add <word>...",
		Short: "Add or relabel words",
		Args:  cobra.MinimumNArgs(1),
		Run:   runVocabAdd,
	}
	addCmd.Flags().String("label", string(vocab.Possible), "Label for the words")

	getCmd := &cobra.Command{
		Use:   "get <word>",
		Short: "Show a word and its label",
		Args:  cobra.ExactArgs(1),
		Run:   runVocabGet,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List words in order",
		Run:   runVocabList,
	}
	listCmd.Flags().String("label", "", "Filter by label")
	listCmd.Flags().IntP("limit", "l", 0, "Max results (0 = all)")
	listCmd.Flags().Bool("words-only", false, "Only output the words")

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find words containing a substring",
		Args:  cobra.ExactArgs(1),
		Run:   runVocabSearch,
	}
	searchCmd.Flags().String("label", "", "Filter by label")
	searchCmd.Flags().IntP("limit", "l", 20, "Max results")

	rmCmd := &cobra.Command{
		Use:   "rm <word>...",
		Short: "Delete words",
		Args:  cobra.MinimumNArgs(1),
		Run:   runVocabRm,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Seed the database with the built-in word list",
		Run:   runVocabInit,
	}
	initCmd.Flags().Bool("force", false, "Seed even when words are already stored")

	vocabCmd.AddCommand(addCmd, getCmd, listCmd, searchCmd, rmCmd, initCmd)
	RootCmd.AddCommand(vocabCmd)
}

func runVocabAdd(cmd *cobra.Command, args []string) {
	label, _ := cmd.Flags().GetString("label")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Put(cmd.Context(), store.PutParams{Words: args, Label: label})
	if err != nil {
		exitErr("add", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"label":%q,"written":%d}`+"\n", label, n)
}

func runVocabGet(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}

	emit(cmd, e, func(w io.Writer) { fmt.Fprintf(w, "%s\t%s\n", e.Word, e.Label) })
}

func runVocabList(cmd *cobra.Command, args []string) {
	label, _ := cmd.Flags().GetString("label")
	limit, _ := cmd.Flags().GetInt("limit")
	wordsOnly, _ := cmd.Flags().GetBool("words-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.List(cmd.Context(), store.ListParams{Label: label, Limit: limit})
	if err != nil {
		exitErr("list", err)
	}

	if wordsOnly {
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), e.Word)
		}
		return
	}
	printEntries(cmd, entries)
}

func runVocabSearch(cmd *cobra.Command, args []string) {
	label, _ := cmd.Flags().GetString("label")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.Search(cmd.Context(), store.SearchParams{Query: args[0], Label: label, Limit: limit})
	if err != nil {
		exitErr("search", err)
	}
	printEntries(cmd, entries)
}

func printEntries(cmd *cobra.Command, entries []model.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "[]")
		return
	}
	emit(cmd, entries, func(w io.Writer) {
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e.Word, e.Label)
		}
	})
}

func runVocabRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Rm(cmd.Context(), args)
	if err != nil {
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"words":%q,"deleted":%d}`+"\n", strings.Join(args, ","), n)
}

func runVocabInit(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	existing, err := s.List(cmd.Context(), store.ListParams{Limit: 1})
	if err != nil {
		exitErr("list", err)
	}
	if len(existing) > 0 && !force {
		exitErr("init", fmt.Errorf("vocabulary already has words (use --force to merge the built-in list)"))
	}

	n, err := s.Import(cmd.Context(), vocab.Default())
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", n)
}
