package scraper

import (
	"context"
	"fmt"
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
	headHunterAPIURL = "https://api.hh.ru/vacancies"
	// headHunterCurrency is how HeadHunter spells roubles.
	headHunterCurrency = "RUR"
	// headHunterPeriodDays limits results to recently published vacancies.
	headHunterPeriodDays = 30
	occupationKeyword    = "программист"
)

// HHSalary is the salary block of a HeadHunter vacancy.
type HHSalary struct {
	Currency string   `json:"currency"`
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
}

// HHVacancy is a HeadHunter vacancy, reduced to the fields used here.
type HHVacancy struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Salary *HHSalary `json:"salary"`
}

// HHSearchResponse is a page of HeadHunter search results.
type HHSearchResponse struct {
	Items []HHVacancy `json:"items"`
	Found int         `json:"found"`
	Pages int         `json:"pages"`
	Page  int         `json:"page"`
}

// HeadHunter searches vacancies on hh.ru.
type HeadHunter struct {
	BaseURL    string
	City       string
	HTTPClient *http.Client
}

// NewHeadHunter creates a HeadHunter source for the configured city.
func NewHeadHunter(httpClient *http.Client) *HeadHunter {
	return &HeadHunter{
		BaseURL:    headHunterAPIURL,
		City:       config.City,
		HTTPClient: httpClient,
	}
}

// Name returns the human-readable source name.
func (h *HeadHunter) Name() string {
	return "HeadHunter"
}

// FetchVacancies fetches one page of vacancies for language.
func (h *HeadHunter) FetchVacancies(ctx context.Context, language string, page int) (*HHSearchResponse, error) {
	apiURL, err := h.buildURL(language, page)
	if err != nil {
		return nil, err
	}
	pterm.Debug.Printfln("Fetching %s", apiURL)

	var response HHSearchResponse
	if err := client.GetJSON(ctx, h.HTTPClient, apiURL, client.APIHeaders(), &response); err != nil {
		return nil, errors.Wrapf(err, "HeadHunter search for %s failed", language)
	}
	return &response, nil
}

// AverageSalary aggregates every page HeadHunter returns for language.
// A non-2xx answer ends pagination, which is how HeadHunter reports a page
// past the last one.
func (h *HeadHunter) AverageSalary(ctx context.Context, language string) (models.LanguageStats, error) {
	fetch := func(ctx context.Context, pageNum int) (*Page[HHVacancy], error) {
		response, err := h.FetchVacancies(ctx, language, pageNum)
		if err != nil {
			return nil, err
		}

		more := len(response.Items) > 0
		if response.Pages > 0 && pageNum+1 >= response.Pages {
			more = false
		}
		return &Page[HHVacancy]{Found: response.Found, Items: response.Items, More: more}, nil
	}

	return aggregate[HHVacancy](ctx, fetch, ExtractHeadHunterBounds, EndOnUpstreamError)
}

// ExtractHeadHunterBounds returns the rouble salary range of a vacancy.
func ExtractHeadHunterBounds(vacancy HHVacancy) (models.SalaryBounds, bool) {
	if vacancy.Salary == nil || vacancy.Salary.Currency != headHunterCurrency {
		return models.SalaryBounds{}, false
	}

	var bounds models.SalaryBounds
	if vacancy.Salary.From != nil {
		bounds.From = *vacancy.Salary.From
	}
	if vacancy.Salary.To != nil {
		bounds.To = *vacancy.Salary.To
	}
	return bounds, true
}

func (h *HeadHunter) buildURL(language string, page int) (string, error) {
	u, err := url.Parse(h.BaseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid HeadHunter URL")
	}

	area, ok := config.AreaID(h.City)
	if !ok {
		return "", errors.Errorf("unknown HeadHunter area %q", h.City)
	}

	query := u.Query()
	query.Set("text", fmt.Sprintf("%s %s", occupationKeyword, language))
	query.Set("area", strconv.Itoa(area))
	query.Set("period", strconv.Itoa(headHunterPeriodDays))
	query.Set("per_page", strconv.Itoa(vacanciesPerPage))
	query.Set("page", strconv.Itoa(page))

	u.RawQuery = query.Encode()
	return u.String(), nil
}
