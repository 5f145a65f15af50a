// Package validation contains the pure business-rule checks applied to
// form input before anything is written to storage. Every rule is checked
// independently and contributes its own message; an empty result means the
// input is valid. Storage-dependent checks (sku uniqueness, product
// existence) belong to the repositories, not here.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductInput is the form-shaped input for creating or updating a product.
type ProductInput struct {
	Name      string
	SKU       string
	SalePrice decimal.Decimal
	CostPrice decimal.Decimal
}

// ValidateProduct checks a product form against the business rules and
// returns one message per violated rule.
func ValidateProduct(in ProductInput) []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "product name is required")
	}

	if strings.TrimSpace(in.SKU) == "" {
		errs = append(errs, "sku is required")
	}

	if in.SalePrice.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "sale price must be greater than 0")
	}

	if in.CostPrice.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "cost price must be greater than 0")
	}

	if in.SalePrice.LessThanOrEqual(in.CostPrice) {
		errs = append(errs, "sale price must be greater than cost price")
	}

	return errs
}
