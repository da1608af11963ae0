package models

import (
	"encoding/json"
	"strconv"
)

// NoData is how an unknown average salary is shown to people.
const NoData = "No Data"

// SalaryBounds holds the salary range disclosed by a vacancy.
// A zero bound means the vacancy did not disclose it.
type SalaryBounds struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// AverageSalary is an integer salary figure or no data at all.
type AverageSalary struct {
	Amount int
	Known  bool
}

// KnownSalary returns an AverageSalary carrying amount.
func KnownSalary(amount int) AverageSalary {
	return AverageSalary{Amount: amount, Known: true}
}

func (a AverageSalary) String() string {
	if !a.Known {
		return NoData
	}
	return strconv.Itoa(a.Amount)
}

// MarshalJSON encodes a known salary as a number and an unknown one as "no data".
func (a AverageSalary) MarshalJSON() ([]byte, error) {
	if !a.Known {
		return json.Marshal("no data")
	}
	return json.Marshal(a.Amount)
}

// MarshalYAML mirrors MarshalJSON.
func (a AverageSalary) MarshalYAML() (interface{}, error) {
	if !a.Known {
		return "no data", nil
	}
	return a.Amount, nil
}

// LanguageStats summarises one language's vacancies on one provider.
type LanguageStats struct {
	VacanciesFound     int           `json:"vacancies_found" yaml:"vacancies_found"`
	VacanciesProcessed int           `json:"vacancies_processed" yaml:"vacancies_processed"`
	AverageSalary      AverageSalary `json:"average_salary" yaml:"average_salary"`
}

// ReportEntry pairs a language with its statistics.
type ReportEntry struct {
	Language string        `json:"language" yaml:"language"`
	Stats    LanguageStats `json:"stats" yaml:"stats"`
}

// Report is the ordered per-language result for one provider.
type Report struct {
	Title   string        `json:"title" yaml:"title"`
	Entries []ReportEntry `json:"entries" yaml:"entries"`
}

// Add appends stats for language, keeping insertion order.
func (r *Report) Add(language string, stats LanguageStats) {
	r.Entries = append(r.Entries, ReportEntry{Language: language, Stats: stats})
}
