package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func productInput(name, sku, salePrice, costPrice string) ProductInput {
	return ProductInput{
		Name:      name,
		SKU:       sku,
		SalePrice: decimal.RequireFromString(salePrice),
		CostPrice: decimal.RequireFromString(costPrice),
	}
}

func TestValidateProduct_Valid(t *testing.T) {
	errs := ValidateProduct(productInput("Pen", "P1", "100", "60"))
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateProduct_AllFieldsInvalid(t *testing.T) {
	errs := ValidateProduct(productInput("", "", "0", "0"))

	// Every rule fails, including sale > cost since 0 <= 0.
	if len(errs) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(errs), errs)
	}

	expected := []string{
		"product name is required",
		"sku is required",
		"sale price must be greater than 0",
		"cost price must be greater than 0",
		"sale price must be greater than cost price",
	}
	for i, want := range expected {
		if errs[i] != want {
			t.Errorf("error %d: expected %q, got %q", i, want, errs[i])
		}
	}
}

func TestValidateProduct_SaleBelowCost(t *testing.T) {
	errs := ValidateProduct(productInput("Pen", "P1", "100", "150"))

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0] != "sale price must be greater than cost price" {
		t.Errorf("unexpected message: %q", errs[0])
	}
}

func TestValidateProduct_SaleEqualsCost(t *testing.T) {
	errs := ValidateProduct(productInput("Pen", "P1", "100", "100"))

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
}

func TestValidateProduct_BlankAfterTrim(t *testing.T) {
	errs := ValidateProduct(productInput("   ", "\t", "100", "60"))

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}
