package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRounds() []Round {
	return []Round{
		{Organization: "Acme", Industries: "AI, Software", Investors: "X, Y", MoneyRaised: 200, InvestorCount: 2},
		{Organization: "Bolt", Industries: "AI", Investors: "X", MoneyRaised: 100, InvestorCount: 1},
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "two values", input: "AI, Software", want: []string{"AI", "Software"}},
		{name: "single value", input: "AI", want: []string{"AI"}},
		{name: "empty cell yields one blank element", input: "", want: []string{""}},
		{name: "plain comma is not a separator", input: "Health,Care", want: []string{"Health,Care"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestJoinListRoundTrip(t *testing.T) {
	for _, s := range []string{"AI, Software, SaaS", "AI", ""} {
		assert.Equal(t, s, JoinList(SplitList(s)))
	}
}

func TestExpandIndustries(t *testing.T) {
	rows := ExpandIndustries(sampleRounds())
	require.Len(t, rows, 3)

	assert.Equal(t, "AI", rows[0].Industry)
	assert.Equal(t, "Software", rows[1].Industry)
	assert.Equal(t, "AI", rows[2].Industry)

	// Scalar fields replicate onto every exploded row.
	assert.Equal(t, "Acme", rows[0].Organization)
	assert.Equal(t, "Acme", rows[1].Organization)
	assert.Equal(t, 200.0, rows[1].MoneyRaised)
	assert.Equal(t, "X, Y", rows[0].Investors)
}

func TestExpandIndustries_EmptyCell(t *testing.T) {
	rows := ExpandIndustries([]Round{{Organization: "Solo", Industries: "", MoneyRaised: 50}})
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Industry)
	assert.Equal(t, 50.0, rows[0].MoneyRaised)
}

func TestExpandDeals(t *testing.T) {
	rows := ExpandDeals(sampleRounds())
	require.Len(t, rows, 5)

	want := []DealRow{
		{Organization: "Acme", Industry: "AI", Investor: "X", MoneyRaised: 200, InvestorCount: 2},
		{Organization: "Acme", Industry: "AI", Investor: "Y", MoneyRaised: 200, InvestorCount: 2},
		{Organization: "Acme", Industry: "Software", Investor: "X", MoneyRaised: 200, InvestorCount: 2},
		{Organization: "Acme", Industry: "Software", Investor: "Y", MoneyRaised: 200, InvestorCount: 2},
		{Organization: "Bolt", Industry: "AI", Investor: "X", MoneyRaised: 100, InvestorCount: 1},
	}
	assert.Equal(t, want, rows)
}

func TestExpandDeals_DropsBlankInvestors(t *testing.T) {
	tests := []struct {
		name      string
		investors string
	}{
		{name: "empty cell", investors: ""},
		{name: "not mentioned sentinel", investors: "Not Mentioned"},
		{name: "whitespace only", investors: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ExpandDeals([]Round{{Organization: "Ghost", Industries: "AI", Investors: tt.investors}})
			assert.Empty(t, rows)
		})
	}
}

func TestExpandDeals_KeepsBlankIndustry(t *testing.T) {
	rows := ExpandDeals([]Round{{Organization: "NoSector", Industries: "", Investors: "X"}})
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Industry)
	assert.Equal(t, "X", rows[0].Investor)
}
