package companycode

import "testing"

func TestFromDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"acme.test", "ACMETEST"},
		{"acme.example.com", "ACMEEXAMPL"},
		{"", "COMP"},
		{"   ", "COMP"},
		{"---", "COMP"},
		{"Über-Café.io", "UBERCAFEIO"},
		{"planner-x.co", "PLANNERXCO"},
		{"a1.b2", "A1B2"},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			if got := FromDomain(tt.domain); got != tt.want {
				t.Errorf("FromDomain(%q) = %q, want %q", tt.domain, got, tt.want)
			}
		})
	}
}
