package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clubnotes/internal/search"
	"clubnotes/internal/service"
	"clubnotes/internal/storage"
)

var (
	searchMaxLength int
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the notes of all stored sessions",
	Long: `Search titles, definitions and examples of every stored session for a
case-insensitive substring. Queries shorter than two characters match nothing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer func() {
			_ = db.Close()
		}()

		sessions := service.NewSessionService(storage.NewSessionRepo(db))
		results, err := service.NewSearchService(sessions, search.DefaultSnippetLength).
			Search(cmd.Context(), strings.Join(args, " "), searchMaxLength)
		if err != nil {
			return err
		}

		if searchJSON {
			return printJSON(cmd.OutOrStdout(), results)
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results.")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(out, "%s  [%s] %s\n    %s\n",
				r.DisplayDate, r.Badge, r.NoteTitle, search.TextSnippet(r.MatchedText, r.Query, searchMaxLengthOrDefault()))
		}
		return nil
	},
}

func searchMaxLengthOrDefault() int {
	if searchMaxLength <= 0 {
		return search.DefaultSnippetLength
	}
	return searchMaxLength
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchMaxLength, "max-length", 0, "Snippet length in characters (default 150)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output rendered results as JSON")
}
