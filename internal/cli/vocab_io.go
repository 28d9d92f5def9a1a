package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

func init() {
	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import words from JSON or a word list",
		Long: "Import words from a file or stdin. A JSON object maps words to labels (the format\n" +
			"produced by export); anything else is read as one word per line with --label.",
		Args: cobra.MaximumNArgs(1),
		Run:  runVocabImport,
	}
	importCmd.Flags().String("label", string(vocab.Possible), "Label for word-list input")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the vocabulary as JSON",
		Run:   runVocabExport,
	}
	exportCmd.Flags().String("label", "", "Only export words with this label")
	exportCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")

	vocabCmd.AddCommand(importCmd, exportCmd)
}

func runVocabImport(cmd *cobra.Command, args []string) {
	labelStr, _ := cmd.Flags().GetString("label")

	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		exitErr("read input", err)
	}

	var v vocab.Vocabulary
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		v, err = vocab.Decode(bytes.NewReader(data))
		if err != nil {
			exitErr("parse json", err)
		}
	} else {
		label, err := vocab.ParseLabel(labelStr)
		if err != nil {
			exitErr("import", err)
		}
		words, err := vocab.ReadWordList(bytes.NewReader(data))
		if err != nil {
			exitErr("parse word list", err)
		}
		v, err = vocab.Vocabulary{}.Merge(vocab.WithLabel(words, label)...)
		if err != nil {
			exitErr("import", err)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), v)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}

func runVocabExport(cmd *cobra.Command, args []string) {
	label, _ := cmd.Flags().GetString("label")
	outPath, _ := cmd.Flags().GetString("out")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	v, err := s.ExportAll(cmd.Context(), label)
	if err != nil {
		exitErr("export", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			exitErr("create output", err)
		}
		defer f.Close()
		w = f
	}
	if err := vocab.Encode(w, v); err != nil {
		exitErr("encode", err)
	}
}
