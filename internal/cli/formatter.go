package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/enratl/mdu/internal/model"
)

// PrintPlain writes one "<size>\t<path>" line per total. Sizes are in
// 1024-byte units (du's default), or humanized IEC sizes when human is set.
func PrintPlain(totals []model.Total, writer io.Writer, human bool) error {
	for _, t := range totals {
		size := strconv.FormatInt(t.KUnits(), 10)
		if human {
			size = humanize.IBytes(uint64(t.Bytes())) //nolint:gosec // Blocks is never negative
		}

		if _, err := fmt.Fprintf(writer, "%s\t%s\n", size, t.Path); err != nil {
			return err
		}
	}

	return nil
}

// PrintJSON writes the totals as an indented JSON array.
func PrintJSON(totals []model.Total, writer io.Writer) error {
	data, err := json.MarshalIndent(totals, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}
