package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all terminal output.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorYellow = lipgloss.Color("220") // Amber - warnings and sizes
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleHeader for table headers and section titles.
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleSize for byte counts.
	styleSize = lipgloss.NewStyle().Foreground(colorYellow)

	// styleName for package names.
	styleName = lipgloss.NewStyle().Foreground(colorWhite)

	// styleDim for muted annotations.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleBorder for table borders.
	styleBorder = lipgloss.NewStyle().Foreground(colorGray)
)
