package validation

import "testing"

func TestValidateTender_Valid(t *testing.T) {
	errs := ValidateTender(TenderInput{
		Client:    "Municipalidad de Lima",
		AwardDate: "2025-03-12",
		Lines: []TenderLineInput{
			{ProductID: "a1", Quantity: 3},
		},
	})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateTender_MissingEverything(t *testing.T) {
	errs := ValidateTender(TenderInput{})

	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}

	expected := []string{
		"client is required",
		"award date is required",
		"at least one product is required",
	}
	for i, want := range expected {
		if errs[i] != want {
			t.Errorf("error %d: expected %q, got %q", i, want, errs[i])
		}
	}
}

func TestValidateTender_LineErrors(t *testing.T) {
	errs := ValidateTender(TenderInput{
		Client:    "Ministerio de Salud",
		AwardDate: "2025-01-01",
		Lines: []TenderLineInput{
			{ProductID: "", Quantity: 5},
			{ProductID: "b2", Quantity: 0},
			{ProductID: "c3", Quantity: -1},
		},
	})

	expected := []string{
		"product line 1 requires a product",
		"product line 2 quantity must be greater than 0",
		"product line 3 quantity must be greater than 0",
	}
	if len(errs) != len(expected) {
		t.Fatalf("expected %d errors, got %d: %v", len(expected), len(errs), errs)
	}
	for i, want := range expected {
		if errs[i] != want {
			t.Errorf("error %d: expected %q, got %q", i, want, errs[i])
		}
	}
}

func TestValidateTender_EveryRuleIndependent(t *testing.T) {
	// A blank client must not short-circuit the line checks.
	errs := ValidateTender(TenderInput{
		Client:    "",
		AwardDate: "2025-01-01",
		Lines: []TenderLineInput{
			{ProductID: "a1", Quantity: 0},
		},
	})

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}
