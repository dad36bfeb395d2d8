package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/FedericoCeratto/debian-slimmer/pkg/blame"
)

// renderSummary writes the ranked blame table. Sizes use decimal (SI)
// units, matching the apt convention.
func renderSummary(w io.Writer, entries []blame.Entry) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Package", "Attributed size").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == 1 {
				return styleSize.Padding(0, 1).Align(lipgloss.Right)
			}
			return styleName.Padding(0, 1)
		})

	for _, e := range entries {
		t.Row(e.Name, humanize.Bytes(uint64(e.Size)))
	}

	fmt.Fprintln(w, t)
}
