package main

import (
	"github.com/spf13/cobra"

	"clubnotes/internal/importer"
	"clubnotes/internal/service"
	"clubnotes/internal/storage"
)

var importDirCmd = &cobra.Command{
	Use:   "import-dir [dir]",
	Short: "Import every dated notes file in a directory",
	Long: `Walk a directory for files named YYYY-MM-DD.txt or YYYY-MM-DD.md and store
each as the session for that date. Existing sessions get their notes replaced;
unchanged files are skipped. Prints the import statistics as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer func() {
			_ = db.Close()
		}()

		sessions := service.NewSessionService(storage.NewSessionRepo(db))
		stats, err := importer.NewImporter(sessions, args[0]).ImportAll(cmd.Context())
		if printErr := printJSON(cmd.OutOrStdout(), stats); printErr != nil {
			return printErr
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(importDirCmd)
}
