package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/charpos/cmd/charpos/commands"
	"github.com/teranos/charpos/logger"
)

var rootCmd = &cobra.Command{
	Use:   "charpos",
	Short: "charpos - Character position inspector for UTF-8 text",
	Long: `charpos - Inspect line, column, and byte positions in UTF-8 text.

Columns count Unicode scalar values, so multi-byte characters such as emoji
advance the column by one while occupying several bytes. Line feed and
carriage return each end a line.

Available commands:
  scan    - Print the position of every character in a file
  locate  - Resolve a byte offset to a line:column position
  version - Show version information

Examples:
  charpos scan main.go             # Position table for a file
  charpos scan --json < notes.txt  # JSON lines from stdin
  charpos locate main.go 1024      # Where is byte 1024?`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(false, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ScanCmd)
	rootCmd.AddCommand(commands.LocateCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
