package scraper

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalaries/internal/client"
	"github.com/fr4nk3nst1ner/langsalaries/internal/config"
	"github.com/fr4nk3nst1ner/langsalaries/internal/models"
)

const (
	superJobAPIURL   = "https://api.superjob.ru/2.0/vacancies/"
	superJobCurrency = "rub"
	// category "Разработка, программирование"
	superJobCatalogue = 48
)

// SJVacancy is a SuperJob vacancy, reduced to the fields used here.
type SJVacancy struct {
	ID          int     `json:"id"`
	Profession  string  `json:"profession"`
	Currency    string  `json:"currency"`
	PaymentFrom float64 `json:"payment_from"`
	PaymentTo   float64 `json:"payment_to"`
}

// SJSearchResponse is a page of SuperJob search results.
type SJSearchResponse struct {
	Objects []SJVacancy `json:"objects"`
	Total   int         `json:"total"`
	More    bool        `json:"more"`
}

// SuperJob searches vacancies on superjob.ru.
type SuperJob struct {
	BaseURL    string
	APIKey     string
	Town       string
	HTTPClient *http.Client
}

// NewSuperJob creates a SuperJob source authenticated with apiKey.
func NewSuperJob(httpClient *http.Client, apiKey string) *SuperJob {
	return &SuperJob{
		BaseURL:    superJobAPIURL,
		APIKey:     apiKey,
		Town:       config.City,
		HTTPClient: httpClient,
	}
}

// Name returns the human-readable source name.
func (s *SuperJob) Name() string {
	return "SuperJob"
}

// FetchVacancies fetches one page of vacancies for language.
func (s *SuperJob) FetchVacancies(ctx context.Context, language string, page int) (*SJSearchResponse, error) {
	apiURL, err := s.buildURL(language, page)
	if err != nil {
		return nil, err
	}
	pterm.Debug.Printfln("Fetching %s", apiURL)

	headers := client.APIHeaders()
	headers.Set("X-Api-App-Id", s.APIKey)

	var response SJSearchResponse
	if err := client.GetJSON(ctx, s.HTTPClient, apiURL, headers, &response); err != nil {
		return nil, errors.Wrapf(err, "SuperJob search for %s failed", language)
	}
	return &response, nil
}

// AverageSalary aggregates pages for language until SuperJob says there are
// no more. Any failed request is returned to the caller.
func (s *SuperJob) AverageSalary(ctx context.Context, language string) (models.LanguageStats, error) {
	fetch := func(ctx context.Context, pageNum int) (*Page[SJVacancy], error) {
		response, err := s.FetchVacancies(ctx, language, pageNum)
		if err != nil {
			return nil, err
		}
		return &Page[SJVacancy]{Found: response.Total, Items: response.Objects, More: response.More}, nil
	}

	return aggregate[SJVacancy](ctx, fetch, ExtractSuperJobBounds, EndOnLastPageFlag)
}

// ExtractSuperJobBounds returns the rouble payment range of a vacancy.
func ExtractSuperJobBounds(vacancy SJVacancy) (models.SalaryBounds, bool) {
	if vacancy.Currency != superJobCurrency {
		return models.SalaryBounds{}, false
	}
	return models.SalaryBounds{From: vacancy.PaymentFrom, To: vacancy.PaymentTo}, true
}

func (s *SuperJob) buildURL(language string, page int) (string, error) {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid SuperJob URL")
	}

	// Broad queries return unrelated vacancies, so the language has to
	// appear in the title together with the occupation keyword.
	query := u.Query()
	query.Set("town", s.Town)
	query.Set("catalogues", strconv.Itoa(superJobCatalogue))
	query.Set("keywords[0]", occupationKeyword)
	query.Set("keywords[1][srws]", "1")
	query.Set("keywords[1][skwc]", "and")
	query.Set("keywords[1][keys]", language)
	query.Set("count", strconv.Itoa(vacanciesPerPage))
	query.Set("page", strconv.Itoa(page))

	u.RawQuery = query.Encode()
	return u.String(), nil
}
