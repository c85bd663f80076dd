package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julianstephens/aurapulse/internal/models"
)

// NewTable returns a table writer rendering to w.
func NewTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	return tw
}

// ShortID trims a uuid for display. Commands accept the short form as a prefix.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ImpactLabel renders an impact level with its color.
func ImpactLabel(impact models.Impact) string {
	var c *color.Color
	switch impact {
	case models.ImpactHigh:
		c = color.New(color.FgHiRed, color.Bold)
	case models.ImpactMedium:
		c = color.New(color.FgHiYellow)
	default:
		c = color.New(color.FgHiGreen)
	}
	return c.Sprint(string(impact))
}

// FormatHours renders hours with at most one decimal.
func FormatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}
