package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artfolio/artfolio-api/internal/domain"
)

func TestAction_Valid(t *testing.T) {
	assert.True(t, domain.ActionLike.Valid())
	assert.True(t, domain.ActionUnlike.Valid())
	assert.False(t, domain.Action("upvote").Valid())
	assert.False(t, domain.Action("").Valid())
}

func TestAction_Value(t *testing.T) {
	assert.Equal(t, 1, domain.ActionLike.Value())
	assert.Equal(t, -1, domain.ActionUnlike.Value())
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		domain.NormalizeAddress("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"))
	assert.Equal(t,
		"0x752aa32a2cc49aed842874326379ea1f95b1cbe6",
		domain.NormalizeAddress("0x752aa32a2cc49aed842874326379ea1f95b1cbe6"))
}

func TestValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"valid lowercase", "0x752aa32a2cc49aed842874326379ea1f95b1cbe6", true},
		{"valid mixed case", "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", true},
		{"missing prefix", "752aa32a2cc49aed842874326379ea1f95b1cbe6aa", false},
		{"too short", "0x752aa32a2cc49aed842874326379ea1f95b1cbe", false},
		{"too long", "0x752aa32a2cc49aed842874326379ea1f95b1cbe6a", false},
		{"invalid characters", "0x752aa32a2cc49aed84287432637&ea1f95b1cbe6", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidAddress(tt.address))
		})
	}
}
