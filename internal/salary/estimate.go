package salary

import "github.com/fr4nk3nst1ner/langsalaries/internal/models"

const (
	// floorMarkup is applied when only the lower bound is known.
	floorMarkup = 1.2
	// ceilingDiscount is applied when only the upper bound is known.
	ceilingDiscount = 0.8
)

// Estimate predicts a single salary figure from a salary range.
// A zero bound is treated as not disclosed. It reports false when neither
// bound is known.
func Estimate(from, to float64) (float64, bool) {
	switch {
	case from == 0 && to == 0:
		return 0, false
	case from != 0 && to != 0:
		return (from + to) / 2, true
	case from != 0:
		return from * floorMarkup, true
	default:
		return to * ceilingDiscount, true
	}
}

// EstimateBounds is Estimate for a SalaryBounds value.
func EstimateBounds(bounds models.SalaryBounds) (float64, bool) {
	return Estimate(bounds.From, bounds.To)
}

// Average truncates the mean of estimates to an integer.
func Average(estimates []float64) models.AverageSalary {
	if len(estimates) == 0 {
		return models.AverageSalary{}
	}

	var sum float64
	for _, estimate := range estimates {
		sum += estimate
	}
	return models.KnownSalary(int(sum / float64(len(estimates))))
}
