package dataset

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// writeWorkbook writes an xlsx file whose first sheet holds the given rows.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rounds.xlsx")
	writeWorkbookAt(t, path, rows)
	return path
}

func writeWorkbookAt(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
}

func headerRow() []interface{} {
	return []interface{}{
		ColOrganization,
		ColIndustries,
		ColInvestors,
		ColMoneyRaised,
		ColInvestorCount,
	}
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		headerRow(),
		{"Acme", "AI, Software", "X, Y", 200, 2},
		{"Bolt", "AI", "X", 100, 1},
	})

	rounds, err := Load(path, testLogger())
	require.NoError(t, err)
	require.Len(t, rounds, 2)

	assert.Equal(t, Round{
		Organization:  "Acme",
		Industries:    "AI, Software",
		Investors:     "X, Y",
		MoneyRaised:   200,
		InvestorCount: 2,
	}, rounds[0])
	assert.Equal(t, "Bolt", rounds[1].Organization)
	assert.Equal(t, 100.0, rounds[1].MoneyRaised)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), testLogger())
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Path, "nope.xlsx")
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{ColOrganization, ColIndustries, ColInvestors, ColMoneyRaised},
		{"Acme", "AI", "X", 200},
	})

	_, err := Load(path, testLogger())
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), ColInvestorCount)
}

func TestLoad_EmptySheet(t *testing.T) {
	path := writeWorkbook(t, nil)

	_, err := Load(path, testLogger())
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_MoneyParsing(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		headerRow(),
		{"NoMoney", "AI", "X", "", 1},
		{"Commas", "AI", "X", "1,500,000", 1},
		{"Garbage", "AI", "X", "undisclosed", 1},
	})

	rounds, err := Load(path, testLogger())
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	assert.Equal(t, 0.0, rounds[0].MoneyRaised)
	assert.Equal(t, 1500000.0, rounds[1].MoneyRaised)
	assert.True(t, math.IsNaN(rounds[2].MoneyRaised))
}

func TestLoad_SkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		headerRow(),
		{"Acme", "AI", "X", 200, 2},
		{"", "", "", "", ""},
		{"Bolt", "AI", "X", 100, 1},
	})

	rounds, err := Load(path, testLogger())
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, "Bolt", rounds[1].Organization)
}

func TestLoad_ShortRows(t *testing.T) {
	// Trailing empty cells are often dropped by the writer; missing cells
	// read back as empty strings.
	path := writeWorkbook(t, [][]interface{}{
		headerRow(),
		{"Acme", "AI"},
	})

	rounds, err := Load(path, testLogger())
	require.NoError(t, err)
	require.Len(t, rounds, 1)

	assert.Equal(t, "", rounds[0].Investors)
	assert.Equal(t, 0.0, rounds[0].MoneyRaised)
	assert.Equal(t, 0, rounds[0].InvestorCount)
}

func TestLoadError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &LoadError{Path: "x.xlsx", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "x.xlsx")
}
