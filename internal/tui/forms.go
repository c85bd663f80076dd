package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/utils"
)

// ActivityFormModel backs the add-activity form.
type ActivityFormModel struct {
	Title       string
	Start       string
	End         string
	Category    models.Category
	Description string
}

// GoalFormModel backs the add-goal form.
type GoalFormModel struct {
	Title   string
	Creator string
	Type    models.GoalType
}

func newActivityFormModel() *ActivityFormModel {
	return &ActivityFormModel{
		Start:    constants.DefaultStartTime,
		End:      constants.DefaultEndTime,
		Category: models.CategoryWork,
	}
}

func newGoalFormModel() *GoalFormModel {
	return &GoalFormModel{Type: models.GoalTypeBook}
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func clockTime(s string) error {
	if !utils.ValidateTimeFormat(strings.TrimSpace(s)) {
		return errors.New("use HH:MM (24h)")
	}
	return nil
}

// NewActivityForm builds the add-activity form bound to f.
func NewActivityForm(f *ActivityFormModel) *huh.Form {
	categories := make([]huh.Option[models.Category], 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categories = append(categories, huh.NewOption(string(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(required("title")),
			huh.NewInput().
				Title("Start").
				Description("HH:MM").
				Value(&f.Start).
				Validate(clockTime),
			huh.NewInput().
				Title("End").
				Description("HH:MM, may be past midnight").
				Value(&f.End).
				Validate(clockTime),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(categories...).
				Value(&f.Category),
			huh.NewInput().
				Title("Notes").
				Value(&f.Description),
		),
	).WithShowHelp(true)
}

// NewGoalForm builds the add-goal form bound to f.
func NewGoalForm(f *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.GoalType]().
				Title("Type").
				Options(
					huh.NewOption("Book", models.GoalTypeBook),
					huh.NewOption("Course", models.GoalTypeCourse),
				).
				Value(&f.Type),
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(required("title")),
			huh.NewInput().
				Title("Author or platform").
				Value(&f.Creator).
				Validate(required("author or platform")),
		),
	).WithShowHelp(true)
}
