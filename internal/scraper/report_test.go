package scraper

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/langsalaries/internal/models"
)

// fakeProvider returns canned statistics and records call order.
type fakeProvider struct {
	stats  map[string]models.LanguageStats
	failOn string
	calls  []string
}

func (f *fakeProvider) Name() string {
	return "Fake"
}

func (f *fakeProvider) AverageSalary(ctx context.Context, language string) (models.LanguageStats, error) {
	f.calls = append(f.calls, language)
	if language == f.failOn {
		return models.LanguageStats{}, fmt.Errorf("upstream unavailable")
	}
	return f.stats[language], nil
}

// reportLanguages lists the report's languages in order.
func reportLanguages(report *models.Report) []string {
	languages := make([]string, 0, len(report.Entries))
	for _, entry := range report.Entries {
		languages = append(languages, entry.Language)
	}
	return languages
}

// reportStats looks up the statistics recorded for language.
func reportStats(report *models.Report, language string) (models.LanguageStats, bool) {
	for _, entry := range report.Entries {
		if entry.Language == language {
			return entry.Stats, true
		}
	}
	return models.LanguageStats{}, false
}

func TestBuildReportPreservesCatalogOrder(t *testing.T) {
	catalogs := [][]string{
		{"Python"},
		{"Ruby", "C", "JavaScript"},
		{"JavaScript", "Python", "Java", "TypeScript", "C#", "PHP", "C++", "C", "Ruby"},
	}

	for _, catalog := range catalogs {
		provider := &fakeProvider{}
		report, err := BuildReport(context.Background(), provider, catalog, nil)
		if err != nil {
			t.Fatalf("BuildReport failed: %v", err)
		}

		got := reportLanguages(report)
		if len(got) != len(catalog) {
			t.Fatalf("Expected %d entries, got %d", len(catalog), len(got))
		}
		for i := range catalog {
			if got[i] != catalog[i] || provider.calls[i] != catalog[i] {
				t.Errorf("Position %d: expected %s, got report %s / call %s", i, catalog[i], got[i], provider.calls[i])
			}
		}
	}
}

func TestBuildReportKeepsStats(t *testing.T) {
	provider := &fakeProvider{stats: map[string]models.LanguageStats{
		"Python": {VacanciesFound: 10, VacanciesProcessed: 2, AverageSalary: models.KnownSalary(120000)},
	}}

	bar := pb.New(1)
	bar.SetWriter(io.Discard)

	report, err := BuildReport(context.Background(), provider, []string{"Python"}, bar)
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	if report.Title != "Fake" {
		t.Errorf("Expected title Fake, got %q", report.Title)
	}

	stats, ok := reportStats(report, "Python")
	if !ok {
		t.Fatal("Expected Python in report")
	}
	if stats.VacanciesFound != 10 || stats.VacanciesProcessed != 2 || stats.AverageSalary.Amount != 120000 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if bar.Current() != 1 {
		t.Errorf("Expected progress 1, got %d", bar.Current())
	}
}

func TestBuildReportAbortsOnError(t *testing.T) {
	provider := &fakeProvider{failOn: "Java"}
	report, err := BuildReport(context.Background(), provider, []string{"Python", "Java", "Ruby"}, nil)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if report != nil {
		t.Error("No partial report should be produced")
	}
	if len(provider.calls) != 2 {
		t.Errorf("Expected aggregation to stop at Java, calls: %v", provider.calls)
	}
}
