// Package forecast synthesizes 24-month job demand forecasts from the static
// industry catalog.
package forecast

import "fmt"

// ErrUnsupportedIndustry indicates Predict was called with an industry key
// absent from the catalog.
type ErrUnsupportedIndustry struct {
	Industry string
}

func (e *ErrUnsupportedIndustry) Error() string {
	return fmt.Sprintf("industry %s not supported", e.Industry)
}
