package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/charpos"
	"github.com/teranos/charpos/errors"
	"github.com/teranos/charpos/logger"
)

// ScanCmd prints the position of every character in the input
var ScanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Print the position of every character in a file",
	Long: `Decode the input one character at a time and print each one with its
1-based line and column and the byte span it occupies. Reads from stdin when
no file is given or the file is "-".

Examples:
  charpos scan main.go              # Position table for a file
  charpos scan --json main.go       # One JSON object per character
  charpos scan --limit 20 main.go   # First 20 characters only`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		jsonOut, _ := cmd.Flags().GetBool("json")
		limit, _ := cmd.Flags().GetInt("limit")
		return runScan(cmd.OutOrStdout(), path, jsonOut, limit)
	},
}

func init() {
	ScanCmd.Flags().BoolP("json", "j", false, "Output one JSON object per character")
	ScanCmd.Flags().IntP("limit", "n", 0, "Stop after N characters (0 = no limit)")
}

// scanRecord is the JSON form of one scanned character
type scanRecord struct {
	charpos.Position
	Char string `json:"char"`
}

func runScan(out io.Writer, path string, jsonOut bool, limit int) error {
	src, err := readInput(path)
	if err != nil {
		return err
	}

	it := charpos.Scan[charpos.Position](src)
	count := 0

	var enc *json.Encoder
	var rows pterm.TableData
	if jsonOut {
		enc = json.NewEncoder(out)
	} else {
		rows = pterm.TableData{{"LINE", "COL", "SPAN", "CHAR"}}
	}

	for {
		pos, r, ok := it.Next()
		if !ok {
			break
		}
		if jsonOut {
			if err := enc.Encode(scanRecord{Position: pos, Char: string(r)}); err != nil {
				return errors.Wrap(err, "failed to encode record")
			}
		} else {
			rows = append(rows, []string{
				strconv.Itoa(pos.Line),
				strconv.Itoa(pos.Col),
				fmt.Sprintf("%d..%d", pos.ByteStart, pos.ByteEnd),
				strconv.QuoteRune(r),
			})
		}
		count++
		if limit > 0 && count >= limit {
			break
		}
	}

	if !jsonOut {
		if err := pterm.DefaultTable.WithWriter(out).WithHasHeader().WithData(rows).Render(); err != nil {
			return errors.Wrap(err, "failed to render table")
		}
	}

	logger.Logger.Infow("scan complete",
		"input", path,
		"characters", count,
		"bytes", len(src))
	return nil
}

// readInput reads the named file, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(data), nil
}
