package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubnotes/internal/service"
	"clubnotes/internal/storage"
)

var (
	importDate string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Store a notes file as a new session",
	Long:  `Parse a notes file (or stdin) and store it as a session on the given date.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		db, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer func() {
			_ = db.Close()
		}()

		session, err := service.NewSessionService(storage.NewSessionRepo(db)).
			CreateSession(cmd.Context(), service.SessionInput{Date: importDate, NotesText: text})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes as session %s (%s)\n", len(session.Notes), session.ID, session.Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importDate, "date", "", "Session date (YYYY-MM-DD)")
	_ = importCmd.MarkFlagRequired("date")
}
