package scraper

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalaries/internal/client"
	"github.com/fr4nk3nst1ner/langsalaries/internal/models"
	"github.com/fr4nk3nst1ner/langsalaries/internal/salary"
)

// vacanciesPerPage is the page size requested from both providers.
const vacanciesPerPage = 100

// Termination decides what a failed page fetch means for pagination.
type Termination int

const (
	// EndOnUpstreamError treats a non-2xx answer as "no more pages".
	// Transport and decoding failures are still returned.
	EndOnUpstreamError Termination = iota
	// EndOnLastPageFlag relies on the provider's continuation flag only;
	// every fetch failure is returned.
	EndOnLastPageFlag
)

func (t Termination) String() string {
	switch t {
	case EndOnUpstreamError:
		return "end-on-upstream-error"
	case EndOnLastPageFlag:
		return "end-on-last-page-flag"
	default:
		return "unknown"
	}
}

// handleFetchError returns nil when err only marks the end of pagination.
func (t Termination) handleFetchError(err error) error {
	if t == EndOnUpstreamError {
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			return nil
		}
	}
	return err
}

// Page is one provider response reduced to what aggregation needs.
type Page[V any] struct {
	Found int
	Items []V
	More  bool
}

// FetchFunc fetches one zero-based page.
type FetchFunc[V any] func(ctx context.Context, page int) (*Page[V], error)

// ExtractFunc pulls salary bounds out of a vacancy, reporting false to skip it.
type ExtractFunc[V any] func(vacancy V) (models.SalaryBounds, bool)

// aggregate walks pages until termination and summarises the salaries seen.
func aggregate[V any](ctx context.Context, fetch FetchFunc[V], extract ExtractFunc[V], termination Termination) (models.LanguageStats, error) {
	var (
		stats     models.LanguageStats
		estimates []float64
	)

	for pageNum := 0; ; pageNum++ {
		page, err := fetch(ctx, pageNum)
		if err != nil {
			if err = termination.handleFetchError(err); err != nil {
				return models.LanguageStats{}, errors.Wrapf(err, "failed to fetch page %d", pageNum)
			}
			pterm.Debug.Printfln("Page %d ended pagination (%s)", pageNum, termination)
			break
		}

		if pageNum == 0 {
			stats.VacanciesFound = page.Found
		}

		for _, vacancy := range page.Items {
			bounds, ok := extract(vacancy)
			if !ok {
				continue
			}
			if estimate, ok := salary.EstimateBounds(bounds); ok {
				estimates = append(estimates, estimate)
			}
		}
		stats.VacanciesProcessed += len(page.Items)

		pterm.Debug.Printfln("Page %d: %d vacancies, %d salaries so far", pageNum, len(page.Items), len(estimates))

		if !page.More {
			break
		}
	}

	stats.AverageSalary = salary.Average(estimates)
	return stats, nil
}
