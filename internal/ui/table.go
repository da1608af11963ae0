package ui

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalaries/internal/models"
)

// TableHeader is the first row of every report table.
var TableHeader = []string{"Language", "Vacancies Found", "Vacancies Processed", "Average Salary"}

// FormatSalary groups thousands, e.g. 120000 -> "120,000".
func FormatSalary(salary models.AverageSalary) string {
	if !salary.Known {
		return models.NoData
	}
	return humanize.Comma(int64(salary.Amount))
}

// ColorizeSalary applies color formatting to salary strings
func ColorizeSalary(salary models.AverageSalary) string {
	formatted := FormatSalary(salary)
	if !salary.Known {
		return pterm.Gray(formatted)
	}

	switch {
	case salary.Amount >= 300000:
		return pterm.Green(formatted)
	case salary.Amount >= 200000:
		return pterm.LightGreen(formatted)
	case salary.Amount >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// TableRows converts a report into table rows, header first.
func TableRows(report *models.Report) [][]string {
	rows := [][]string{TableHeader}
	for _, entry := range report.Entries {
		rows = append(rows, []string{
			entry.Language,
			strconv.Itoa(entry.Stats.VacanciesFound),
			strconv.Itoa(entry.Stats.VacanciesProcessed),
			ColorizeSalary(entry.Stats.AverageSalary),
		})
	}
	return rows
}

// RenderTable renders a titled, boxed table of the report.
func RenderTable(report *models.Report) (string, error) {
	title := pterm.DefaultSection.WithLevel(2).Sprint(report.Title)

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithRightAlignment().
		WithData(TableRows(report)).
		Srender()
	if err != nil {
		return "", errors.Wrapf(err, "failed to render %s table", report.Title)
	}
	return title + table + "\n", nil
}
