package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/teranos/charpos"
	"github.com/teranos/charpos/errors"
)

// LocateCmd resolves a byte offset to a line:column position
var LocateCmd = &cobra.Command{
	Use:   "locate <file> <offset>",
	Short: "Resolve a byte offset to a line:column position",
	Long: `Find the character containing the given byte offset and print its
1-based line and column. Offsets inside a multi-byte character resolve to
that character. Reads from stdin when the file is "-".

Example:
  charpos locate main.go 1024`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "invalid offset %q", args[1])
		}
		jsonOut, _ := cmd.Flags().GetBool("json")
		return runLocate(cmd.OutOrStdout(), args[0], offset, jsonOut)
	},
}

func init() {
	LocateCmd.Flags().BoolP("json", "j", false, "Output the position as JSON")
}

func runLocate(out io.Writer, path string, offset int, jsonOut bool) error {
	src, err := readInput(path)
	if err != nil {
		return err
	}

	pos, r, err := locate(src, offset)
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(out).Encode(scanRecord{Position: pos, Char: string(r)})
	}
	fmt.Fprintf(out, "%s:%d:%d\n", path, pos.Line, pos.Col)
	fmt.Fprintf(out, "character %s at bytes %d..%d\n", strconv.QuoteRune(r), pos.ByteStart, pos.ByteEnd)
	return nil
}

// locate scans src until it reaches the character whose byte span contains
// offset.
func locate(src string, offset int) (charpos.Position, rune, error) {
	if offset < 0 || offset >= len(src) {
		return charpos.Position{}, 0, errors.WithHint(
			errors.Wrapf(errors.ErrOffsetOutOfRange, "offset %d in %d-byte input", offset, len(src)),
			"offsets are 0-based and must fall inside the input")
	}

	it := charpos.Scan[charpos.Position](src)
	for {
		pos, r, ok := it.Next()
		if !ok {
			// unreachable: offset < len(src) and spans cover the input
			return charpos.Position{}, 0, errors.ErrOffsetOutOfRange
		}
		if offset < pos.ByteEnd {
			return pos, r, nil
		}
	}
}
