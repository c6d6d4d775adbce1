package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCompanyName(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        string
	}{
		{"at", "We are hiring a backend engineer at Stripe to build payments.", "Stripe"},
		{"multi word", "Join the data team with Acme Corp. this fall", "Acme Corp"},
		{"lowercase next word ignored", "Work at home in your pajamas.", "the company"},
		{"no mention", "Great role, apply now.", "the company"},
		{"empty", "", "the company"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractCompanyName(tc.description))
		})
	}
}
