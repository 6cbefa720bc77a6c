package dataset

import "strings"

// ListSeparator joins multi-valued cells in the source spreadsheet.
const ListSeparator = ", "

// NotMentioned is the sentinel the source uses for an absent investor list.
const NotMentioned = "Not Mentioned"

// Round is one funding round as loaded from the spreadsheet. Industries and
// Investors keep the raw comma-space joined form; use ExpandIndustries /
// ExpandDeals to explode them.
type Round struct {
	Organization  string  `json:"organization_name"`
	Industries    string  `json:"organization_industries"`
	Investors     string  `json:"investor_names"`
	MoneyRaised   float64 `json:"money_raised_usd"`
	InvestorCount int     `json:"investor_count_computed"`
}

// IndustryRow is a Round exploded to one row per industry label.
type IndustryRow struct {
	Organization  string
	Industry      string
	Investors     string
	MoneyRaised   float64
	InvestorCount int
}

// DealRow is a Round exploded to one row per (industry, investor) pair.
type DealRow struct {
	Organization  string
	Industry      string
	Investor      string
	MoneyRaised   float64
	InvestorCount int
}

// SplitList splits a multi-valued cell on the ", " separator. An empty cell
// yields a single empty element so the row survives the explode as one row
// with a blank label.
func SplitList(s string) []string {
	return strings.Split(s, ListSeparator)
}

// JoinList is the inverse of SplitList.
func JoinList(values []string) string {
	return strings.Join(values, ListSeparator)
}

// ExpandIndustries explodes the industries column: each round becomes one
// IndustryRow per industry label, all scalar fields replicated.
func ExpandIndustries(rounds []Round) []IndustryRow {
	rows := make([]IndustryRow, 0, len(rounds))
	for _, r := range rounds {
		for _, industry := range SplitList(r.Industries) {
			rows = append(rows, IndustryRow{
				Organization:  r.Organization,
				Industry:      industry,
				Investors:     r.Investors,
				MoneyRaised:   r.MoneyRaised,
				InvestorCount: r.InvestorCount,
			})
		}
	}
	return rows
}

// ExpandDeals explodes industries and then investors, normalizing the
// "Not Mentioned" sentinel to blank and dropping rows whose investor is blank
// after trimming. This is the frame the investor analyses run on.
func ExpandDeals(rounds []Round) []DealRow {
	rows := make([]DealRow, 0, len(rounds))
	for _, r := range rounds {
		investors := r.Investors
		if investors == NotMentioned {
			investors = ""
		}
		for _, industry := range SplitList(r.Industries) {
			for _, investor := range SplitList(investors) {
				if strings.TrimSpace(investor) == "" {
					continue
				}
				rows = append(rows, DealRow{
					Organization:  r.Organization,
					Industry:      industry,
					Investor:      investor,
					MoneyRaised:   r.MoneyRaised,
					InvestorCount: r.InvestorCount,
				})
			}
		}
	}
	return rows
}
