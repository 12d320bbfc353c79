package rendering

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultWidth = 80

var (
	HighlightedColor = lipgloss.Color("33")
	DamageColor      = lipgloss.Color("160")
	HealColor        = lipgloss.Color("34")
	FieldColor       = lipgloss.Color("214")

	BranchStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
	PercentageStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightedColor)
	EndOfTurnStyle  = lipgloss.NewStyle().Faint(true)
	ItemStyle       = lipgloss.NewStyle().PaddingLeft(2)
)

// Terminal reports whether f is a terminal and its width, falling back to 80 columns
func Terminal(f *os.File) (bool, int) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, defaultWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return true, defaultWidth
	}

	return true, width
}

// DisplayName turns a data id like "eiscue-noice" into "Eiscue Noice"
func DisplayName(id string) string {
	if id == "" {
		return "Empty"
	}

	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

func BestTextColor(backgroundColor lipgloss.Color) lipgloss.Color {
	// thanks https://andrisignorell.github.io/DescTools/reference/TextContrastColor.html
	r, g, b, _ := backgroundColor.RGBA()
	mean := (r>>8 + g>>8 + b>>8) / 3

	if mean < 127 {
		return lipgloss.Color("#FFFFFF")
	} else {
		return lipgloss.Color("#000000")
	}
}
