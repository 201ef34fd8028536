package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"clubnotes/internal/notes"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse notes text into JSON",
	Long:  `Parse notes text from a file (or stdin) and print the notes as JSON.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), notes.Parse(text))
	},
}

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Format JSON notes back into notes text",
	Long:  `Read a JSON array of notes from a file (or stdin) and print it as editable notes text.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		var parsed []notes.Note
		if err := json.Unmarshal([]byte(data), &parsed); err != nil {
			return fmt.Errorf("invalid notes JSON: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), notes.Format(parsed))
		return err
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
}
