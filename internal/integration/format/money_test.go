package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewFormatter_Invalid(t *testing.T) {
	if _, err := NewFormatter("XX", "en-US"); err == nil {
		t.Error("expected error for invalid currency")
	}
	if _, err := NewFormatter("USD", "not a locale!"); err == nil {
		t.Error("expected error for invalid locale")
	}
}

func TestFormatter_Money(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		amount string
		digits string
	}{
		{"grouping", "1234.5", "1,234.50"},
		{"rounding", "0.005", "0.01"},
		{"whole", "42", "42.00"},
		{"zero", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Money(decimal.RequireFromString(tt.amount))
			if !strings.HasSuffix(got, tt.digits) {
				t.Errorf("Money(%s) = %q, want suffix %q", tt.amount, got, tt.digits)
			}
			if got == tt.digits {
				t.Errorf("Money(%s) = %q, expected a currency symbol", tt.amount, got)
			}
		})
	}

	t.Run("negative", func(t *testing.T) {
		got := f.Money(decimal.RequireFromString("-3"))
		if !strings.HasPrefix(got, "-") || !strings.HasSuffix(got, "3.00") {
			t.Errorf("unexpected negative format %q", got)
		}
	})
}

func TestFormatter_Percent(t *testing.T) {
	f, err := NewFormatter("EUR", "de-DE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.Percent(decimal.RequireFromString("92.46")); got != "92,5%" {
		t.Errorf("Percent = %q, want 92,5%%", got)
	}
	if got := f.Money(decimal.RequireFromString("1234.5")); !strings.Contains(got, "1.234,50") {
		t.Errorf("Money = %q, want German grouping", got)
	}
}
