package validation

import (
	"fmt"
	"strings"
)

// TenderLineInput is one product line of a tender form.
type TenderLineInput struct {
	ProductID string
	Quantity  int
}

// TenderInput is the form-shaped input for creating a tender with its
// initial set of order lines.
type TenderInput struct {
	Client    string
	AwardDate string
	Lines     []TenderLineInput
}

// ValidateTender checks a tender form against the business rules and
// returns one message per violated rule. Line messages are indexed
// 1-based to match the form the user filled in.
func ValidateTender(in TenderInput) []string {
	var errs []string

	if strings.TrimSpace(in.Client) == "" {
		errs = append(errs, "client is required")
	}

	if in.AwardDate == "" {
		errs = append(errs, "award date is required")
	}

	if len(in.Lines) == 0 {
		errs = append(errs, "at least one product is required")
	}

	for i, line := range in.Lines {
		if line.ProductID == "" {
			errs = append(errs, fmt.Sprintf("product line %d requires a product", i+1))
		}
		if line.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("product line %d quantity must be greater than 0", i+1))
		}
	}

	return errs
}
