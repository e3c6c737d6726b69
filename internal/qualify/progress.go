package qualify

import (
	"math"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/domain"
)

// Progress estimates interview completion as an integer percentage. Finished
// steps contribute their full share; the current step contributes its share
// scaled by the fraction of required fields already filled. A step with no
// required fields counts as fully done the moment it is reached.
//
// A currentStep beyond the catalog means the interview is over: exactly 100.
func Progress(cat *catalog.Catalog, currentStep int, data domain.FieldMap) int {
	n := cat.TotalSteps()
	if currentStep > n {
		return 100
	}

	base := math.Round(100 * float64(currentStep-1) / float64(n))
	sectionWeight := 100 / float64(n)

	sectionCompletion := 1.0
	if step, ok := cat.StepAt(currentStep); ok && len(step.RequiredFields) > 0 {
		filled := 0
		for _, f := range step.RequiredFields {
			if data.Has(f) {
				filled++
			}
		}
		sectionCompletion = float64(filled) / float64(len(step.RequiredFields))
	}

	pct := int(base) + int(math.Round(sectionCompletion*sectionWeight))
	if pct > 100 {
		pct = 100
	}
	return pct
}
