package validator

import "testing"

func TestPasswordStrengthRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"strong password passes", "hunter22!", true},
		{"too short fails", "a1!", false},
		{"no digit fails", "password!!", false},
		{"no special character fails", "password22", false},
		{"letters only fails", "justletters", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatorInstance.ValidateValue(tt.password, "password")
			if (err == nil) != tt.wantOK {
				t.Errorf("password %q: err = %v, wantOK = %v", tt.password, err, tt.wantOK)
			}
		})
	}
}

func TestSKURule(t *testing.T) {
	tests := []struct {
		name   string
		sku    string
		wantOK bool
	}{
		{"standard sku passes", "ACM-001", true},
		{"digits only passes", "1234", true},
		{"lowercase fails", "acm-001", false},
		{"too short fails", "AB", false},
		{"leading dash fails", "-ACM001", false},
		{"spaces fail", "ACM 001", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatorInstance.ValidateValue(tt.sku, "sku")
			if (err == nil) != tt.wantOK {
				t.Errorf("sku %q: err = %v, wantOK = %v", tt.sku, err, tt.wantOK)
			}
		})
	}
}

type createProductShape struct {
	SKU       string  `validate:"required,sku"`
	Name      string  `validate:"required"`
	UnitPrice float64 `validate:"gte=0"`
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	errs := ValidatorInstance.ValidateStruct(createProductShape{SKU: "bad sku", UnitPrice: -2})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if len(*errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(*errs), *errs)
	}
}
