package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pep621/pkg/deps"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleName    = lipgloss.NewStyle().Foreground(colorCyan)
	styleSkipped = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// Status lines go to stderr so stdout carries only extraction output.
var statusOut io.Writer = os.Stderr

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(statusOut, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(statusOut, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(statusOut, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// =============================================================================
// Extraction Output
// =============================================================================

// printStats prints the dependency count and cache status on one line.
func printStats(depCount int, cached bool) {
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(fmt.Sprintf("%d dependencies", depCount))+
		StyleDim.Render(" · ")+statusStyle.Render(status))
}

// depsTable renders dependencies as a bordered table.
func depsTable(list []deps.Dependency) string {
	rows := make([][]string, 0, len(list))
	for _, d := range list {
		rows = append(rows, []string{
			d.DepName,
			d.DepType,
			orDash(d.CurrentValue),
			orDash(d.CurrentVersion),
			orDash(d.LockedVersion),
			orDash(d.SkipReason),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Package", "Type", "Constraint", "Pinned", "Locked", "Skip").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case col == 0:
				return base.Inherit(styleName)
			case col == 5 && list[row].SkipReason != "":
				return base.Inherit(styleSkipped)
			case col == 1:
				return base.Foreground(colorGray)
			}
			return base
		})
	return t.Render()
}

// writeSummary writes the package-level fields under the table.
func writeSummary(w io.Writer, pf *deps.PackageFile) {
	var parts []string
	if pf.PackageFileVersion != "" {
		parts = append(parts, "version "+pf.PackageFileVersion)
	}
	if !pf.ExtractedConstraints.IsZero() {
		parts = append(parts, "python "+pf.ExtractedConstraints.Python)
	}
	if len(pf.Deps) > 0 && len(pf.Deps[0].RegistryURLs) > 0 {
		parts = append(parts, "registries "+strings.Join(pf.Deps[0].RegistryURLs, ", "))
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, StyleDim.Render(strings.Join(parts, " · ")))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
