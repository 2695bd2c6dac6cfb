package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"150", "150", false},
		{"150.50", "150.50", false},
		{"1,500,000", "1500000", false},
		{" 2 500 ", "2500", false},
		{"-75.25", "-75.25", false},
		{"", "", true},
		{"   ", "", true},
		{"abc", "", true},
		{"12..5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %s, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) failed: %v", tt.in, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in     string
		symbol string
		want   string
	}{
		{"0", "Rp", "Rp 0.00"},
		{"150.5", "Rp", "Rp 150.50"},
		{"1500000", "Rp", "Rp 1,500,000.00"},
		{"-95000", "Rp", "Rp -95,000.00"},
		{"12345.678", "", "12,345.68"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tt.in), tt.symbol)
			if got != tt.want {
				t.Errorf("FormatAmount(%s, %q) = %q, want %q", tt.in, tt.symbol, got, tt.want)
			}
		})
	}
}
