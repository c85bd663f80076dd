package analytics

import (
	"strings"

	"github.com/julianstephens/aurapulse/internal/models"
)

// EmptyCell fills strip cells no activity covers.
const EmptyCell = '·'

// Strip renders placements as a fixed-width bar. Each cell holds the mark of
// the category occupying it; later placements overwrite earlier ones and an
// activity crossing midnight continues from the left edge.
func Strip(placements []Placement, width int) string {
	if width <= 0 {
		return ""
	}
	cells := []rune(strings.Repeat(string(EmptyCell), width))
	for _, p := range placements {
		if p.Width <= 0 {
			continue
		}
		mark := CategoryMark(p.Activity.Category)
		start := int(p.Left * float64(width))
		n := int(p.Width*float64(width) + 0.5)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n && i < width; i++ {
			cells[(start+i)%width] = mark
		}
	}
	return string(cells)
}

// CategoryMark is the single-letter mark of a category on the strip.
func CategoryMark(c models.Category) rune {
	switch c {
	case models.CategoryWork:
		return 'W'
	case models.CategoryHealth:
		return 'H'
	case models.CategoryLeisure:
		return 'L'
	case models.CategoryEducation:
		return 'E'
	case models.CategoryChores:
		return 'C'
	case models.CategorySleep:
		return 'S'
	default:
		return 'O'
	}
}
