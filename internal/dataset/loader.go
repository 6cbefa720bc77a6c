package dataset

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Required spreadsheet columns, by their exact header names.
const (
	ColOrganization  = "organization_name"
	ColIndustries    = "organization_industries"
	ColInvestors     = "investor_names"
	ColMoneyRaised   = "money_raised_(in_usd)"
	ColInvestorCount = "investor_count_computed"
)

var requiredColumns = []string{
	ColOrganization,
	ColIndustries,
	ColInvestors,
	ColMoneyRaised,
	ColInvestorCount,
}

// LoadError reports a dataset that could not be loaded: missing file,
// unreadable workbook, or a required column absent from the header row.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the funding rounds workbook at path. The first sheet's first row
// must contain the required column headers; remaining rows become Rounds.
// Missing industries/investors cells are filled with the empty string. A money
// cell that is present but not numeric is kept as NaN so the analyses can
// reject it instead of silently coercing.
func Load(path string, logger *slog.Logger) ([]Round, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read sheet %q: %w", sheets[0], err)}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("sheet %q is empty", sheets[0])}
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	rounds := make([]Round, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rounds = append(rounds, Round{
			Organization:  cell(row, columns[ColOrganization]),
			Industries:    cell(row, columns[ColIndustries]),
			Investors:     cell(row, columns[ColInvestors]),
			MoneyRaised:   parseMoney(cell(row, columns[ColMoneyRaised])),
			InvestorCount: parseCount(cell(row, columns[ColInvestorCount])),
		})
	}

	logger.Info("dataset loaded",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("rounds", len(rounds)))

	return rounds, nil
}

// mapColumns maps the required header names to their column indices.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return columns, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseMoney parses a money cell. Empty means no amount recorded and counts
// as zero; anything else that fails to parse becomes NaN so the integrity
// check in the analyses can surface it.
func parseMoney(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func parseCount(s string) int {
	v, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return 0
	}
	return v
}
