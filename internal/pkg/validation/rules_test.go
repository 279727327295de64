package validation

import (
	"reflect"
	"testing"
)

type productInput struct {
	Name  string
	Price float64
	Stock int
}

func productRules() *RuleSet[productInput] {
	return NewRuleSet[productInput]().
		Field("Name", func(in productInput) any { return in.Name },
			Required("Name is required"),
			MaxLen(5, "Name must not exceed 5 characters"),
		).
		Field("Price", func(in productInput) any { return in.Price },
			Positive("Price must be greater than 0"),
		).
		Field("Stock", func(in productInput) any { return in.Stock },
			NotNegative("Stock must be greater than or equal to 0"),
		)
}

func TestRuleSetValidateValid(t *testing.T) {
	// Arrange
	rules := productRules()

	// Act
	fails := rules.Validate(productInput{Name: "bolt", Price: 9.5, Stock: 0})

	// Assert
	if len(fails) != 0 {
		t.Fatalf("expected no failures, got %v", fails)
	}
}

func TestRuleSetValidateCollectsEveryFailure(t *testing.T) {
	// Arrange
	rules := productRules()

	// Act
	fails := rules.Validate(productInput{Name: "", Price: 0, Stock: -1})

	// Assert
	want := Failures{
		{Field: "Name", Message: "Name is required"},
		{Field: "Price", Message: "Price must be greater than 0"},
		{Field: "Stock", Message: "Stock must be greater than or equal to 0"},
	}
	if !reflect.DeepEqual(fails, want) {
		t.Fatalf("failures mismatch\n got: %v\nwant: %v", fails, want)
	}
}

func TestRuleSetValidateOrderWithinField(t *testing.T) {
	// Arrange
	rules := NewRuleSet[productInput]().
		Field("Name", func(in productInput) any { return in.Name },
			MaxLen(3, "too long"),
			Required("missing"),
		)

	// Act
	fails := rules.Validate(productInput{Name: "toolong"})

	// Assert
	if len(fails) != 1 || fails[0].Message != "too long" {
		t.Fatalf("expected check order preserved, got %v", fails)
	}
}

func TestRuleSetValidateTrimsStrings(t *testing.T) {
	// Arrange
	rules := productRules()

	// Act
	fails := rules.Validate(productInput{Name: "   ", Price: 1, Stock: 1})

	// Assert
	if len(fails) != 1 || fails[0].Message != "Name is required" {
		t.Fatalf("expected whitespace-only name to count as empty, got %v", fails)
	}
}

func TestRuleSetMaxLenSkipsEmpty(t *testing.T) {
	// Arrange
	rules := NewRuleSet[productInput]().
		Field("Name", func(in productInput) any { return in.Name },
			MaxLen(3, "too long"),
		)

	// Act
	fails := rules.Validate(productInput{Name: ""})

	// Assert
	if len(fails) != 0 {
		t.Fatalf("expected empty value to pass max length, got %v", fails)
	}
}

func TestFailuresByField(t *testing.T) {
	// Arrange
	fails := Failures{
		{Field: "Name", Message: "Name is required"},
		{Field: "Name", Message: "Name must not exceed 5 characters"},
		{Field: "Price", Message: "Price must be greater than 0"},
	}

	// Act
	got := fails.ByField()

	// Assert
	want := map[string][]string{
		"Name":  {"Name is required", "Name must not exceed 5 characters"},
		"Price": {"Price must be greater than 0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("grouping mismatch\n got: %v\nwant: %v", got, want)
	}
}

func TestFailuresByFieldEmpty(t *testing.T) {
	// Act
	got := Failures{}.ByField()

	// Assert
	if got != nil {
		t.Fatalf("expected nil map for no failures, got %v", got)
	}
}

func TestEmailCheck(t *testing.T) {
	// Arrange
	rules := NewRuleSet[string]().
		Field("Email", func(in string) any { return in },
			Email("Email is not a valid email address"),
		)

	tests := []struct {
		value string
		valid bool
	}{
		{"person@example.com", true},
		{"", true},
		{"not-an-email", false},
	}

	for _, tc := range tests {
		// Act
		fails := rules.Validate(tc.value)

		// Assert
		if tc.valid && len(fails) != 0 {
			t.Fatalf("value %q: expected valid, got %v", tc.value, fails)
		}
		if !tc.valid && len(fails) == 0 {
			t.Fatalf("value %q: expected failure", tc.value)
		}
	}
}
