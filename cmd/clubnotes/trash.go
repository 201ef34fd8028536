package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clubnotes/internal/service"
	"clubnotes/internal/storage"
)

var (
	purgeOlderThan time.Duration
)

var restoreCmd = &cobra.Command{
	Use:   "restore [session-id]",
	Short: "Take a deleted session out of the trash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer func() {
			_ = db.Close()
		}()

		session, err := service.NewSessionService(storage.NewSessionRepo(db)).RestoreSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored session %s (%s)\n", session.ID, session.Date)
		return nil
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently remove deleted sessions",
	Long: `Permanently remove sessions that have been in the trash longer than
--older-than, along with their favorites and completion marks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer func() {
			_ = db.Close()
		}()

		purged, err := service.NewSessionService(storage.NewSessionRepo(db)).PurgeDeleted(cmd.Context(), purgeOlderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Purged %d sessions\n", purged)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().DurationVar(&purgeOlderThan, "older-than", 24*time.Hour, "Only purge sessions deleted at least this long ago")
}
