package scraper

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/fr4nk3nst1ner/langsalaries/internal/models"
)

// Provider computes per-language salary statistics from one job site.
type Provider interface {
	Name() string
	AverageSalary(ctx context.Context, language string) (models.LanguageStats, error)
}

// BuildReport runs provider for every language in order. The first failure
// aborts the report. bar may be nil.
func BuildReport(ctx context.Context, provider Provider, languages []string, bar *pb.ProgressBar) (*models.Report, error) {
	report := &models.Report{Title: provider.Name()}

	for _, language := range languages {
		if bar != nil {
			bar.Set("prefix", provider.Name()+" "+language+" ")
		}

		stats, err := provider.AverageSalary(ctx, language)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: failed to aggregate %s vacancies", provider.Name(), language)
		}
		report.Add(language, stats)

		if bar != nil {
			bar.Increment()
		}
	}

	return report, nil
}
