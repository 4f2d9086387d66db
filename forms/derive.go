package forms

import (
	"math"
	"strconv"
	"strings"
)

// Derive recomputes every derived field whose inputs parse as numbers and
// whose divisor is positive, writing the result back into values with two
// decimal places. Anything else leaves the derived field unchanged: a zero,
// absent or non-numeric divisor never produces NaN or Inf in form state.
func (s *Schema) Derive(values map[string]string) {
	for _, d := range s.Derived {
		num, errN := strconv.ParseFloat(strings.TrimSpace(values[d.Numerator]), 64)
		div, errD := strconv.ParseFloat(strings.TrimSpace(values[d.Divisor]), 64)
		if errN != nil || errD != nil || div <= 0 {
			continue
		}
		pct := math.Round(num/div*100*100) / 100
		values[d.Name] = strconv.FormatFloat(pct, 'f', 2, 64)
	}
}
