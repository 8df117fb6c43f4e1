package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/cbakit/internal/projection"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func newExporter(t *testing.T, embed bool) *Exporter {
	t.Helper()
	return &Exporter{
		Dir:            t.TempDir(),
		EmbedCharts:    embed,
		ChartWidth:     640,
		ChartHeight:    400,
		CurrencySymbol: "£",
	}
}

func openRows(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return rows
}

func sheets(t *testing.T, path string) []string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	return f.GetSheetList()
}

func paybackResult(t *testing.T) projection.PaybackResult {
	t.Helper()
	res, err := projection.Payback(projection.PaybackInput{InitialInvestment: 10000, AnnualBenefit: 2500})
	require.NoError(t, err)
	return res
}

func TestExportPaybackEmbedsChart(t *testing.T) {
	e := newExporter(t, true)
	rep, err := e.ExportPayback(paybackResult(t))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(e.Dir, PaybackFile), rep.Workbook)
	assert.Empty(t, rep.Chart)
	assert.Empty(t, rep.Warnings)
	assert.Equal(t, []string{SheetCashFlows, SheetSummary, SheetPaybackChart}, sheets(t, rep.Workbook))

	rows := openRows(t, rep.Workbook, SheetCashFlows)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Year", "Cash Flow", "Cumulative Cash Flow"}, rows[0])
	assert.Equal(t, []string{"1", "2500", "-7500"}, rows[1])
	assert.Equal(t, []string{"4", "2500", "0"}, rows[4])

	summary := openRows(t, rep.Workbook, SheetSummary)
	assert.Equal(t, "4 years and 0 months", summary[3][1])
}

func TestExportPaybackWithoutEmbedding(t *testing.T) {
	e := newExporter(t, false)
	rep, err := e.ExportPayback(paybackResult(t))
	require.NoError(t, err)

	assert.Equal(t, []string{SheetCashFlows, SheetSummary}, sheets(t, rep.Workbook))
	require.NotEmpty(t, rep.Chart)
	assert.Equal(t, filepath.Join(e.Dir, "payback_period_calculation.png"), rep.Chart)
	assert.Len(t, rep.Warnings, 1)

	data, err := os.ReadFile(rep.Chart)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestAttachChartFallsBackWhenEmbedFails(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := newExporter(t, true)
	e.Logger = zap.New(core)

	f := excelize.NewFile()
	defer f.Close()
	workbook := filepath.Join(e.Dir, PaybackFile)
	corrupt := []byte("not an image")

	var rep Report
	e.attachChart(f, SheetPaybackChart, workbook, corrupt, &rep)

	assert.NotContains(t, f.GetSheetList(), SheetPaybackChart)
	assert.Equal(t, filepath.Join(e.Dir, "payback_period_calculation.png"), rep.Chart)
	assert.FileExists(t, rep.Chart)
	require.Len(t, rep.Warnings, 2)
	assert.Contains(t, rep.Warnings[0], "could not embed chart")
	assert.Contains(t, rep.Warnings[1], "chart saved separately")
	assert.Equal(t, 1, logs.FilterMessage("chart embed failed").Len())
}

func TestSetStyleLogsInvalidStyle(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := newExporter(t, true)
	e.Logger = zap.New(core)

	f, st, err := newWorkbook(SheetSummary, "£")
	require.NoError(t, err)
	defer f.Close()

	e.setStyle(f, SheetSummary, "B2", "B2", st.currency)
	assert.Zero(t, logs.Len())

	e.setStyle(f, SheetSummary, "B2", "B2", 9999)
	e.styleColumn(f, "Missing", "B", 3, st.currency)
	entries := logs.FilterMessage("cell style not applied").All()
	require.Len(t, entries, 2)
	assert.Equal(t, SheetSummary, entries[0].ContextMap()["sheet"])
	assert.Equal(t, "B2:B2", entries[0].ContextMap()["range"])
}

func TestExportPaybackNotRecovered(t *testing.T) {
	res, err := projection.Payback(projection.PaybackInput{InitialInvestment: 1_000_000, AnnualBenefit: 1, MaxYears: 5})
	require.NoError(t, err)
	require.False(t, res.Recovered)

	rep, err := newExporter(t, true).ExportPayback(res)
	require.NoError(t, err)
	summary := openRows(t, rep.Workbook, SheetSummary)
	assert.Equal(t, "Not recovered within 5 years", summary[3][1])
}

func TestExportNPV(t *testing.T) {
	res, err := projection.NPV(projection.NPVInput{
		DiscountRate:      10,
		InitialInvestment: 10000,
		CashFlows:         []float64{3000, 3500, 4000, 4500, 5000},
	})
	require.NoError(t, err)

	rep, err := newExporter(t, true).ExportNPV(res)
	require.NoError(t, err)
	assert.Equal(t, []string{SheetCashFlows, SheetSummary, SheetNPVChart}, sheets(t, rep.Workbook))

	rows := openRows(t, rep.Workbook, SheetCashFlows)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Year", "Cash Flow", "Discount Factor", "Present Value"}, rows[0])
	assert.Equal(t, "2727.27", rows[1][3])

	summary := openRows(t, rep.Workbook, SheetSummary)
	assert.Equal(t, "Net Present Value", summary[4][0])
	assert.Equal(t, "4803.26", summary[4][1])
}

func TestExportBreakEven(t *testing.T) {
	res, err := projection.BreakEven(projection.BreakEvenInput{FixedCosts: 5000, VariableCost: 20, SalesPrice: 50})
	require.NoError(t, err)

	rep, err := newExporter(t, true).ExportBreakEven(res)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(rep.Workbook), BreakEvenFile), rep.Workbook)
	assert.Equal(t, []string{SheetBreakEven, SheetBreakEvenChart}, sheets(t, rep.Workbook))

	rows := openRows(t, rep.Workbook, SheetBreakEven)
	assert.Equal(t, []string{"Break-Even Units", "166.67"}, rows[4])
	assert.Equal(t, []string{"Break-Even Revenue", "8333.33"}, rows[5])
	assert.Equal(t, []string{"Units", "Total Cost", "Total Revenue"}, rows[8])
	assert.Len(t, rows, 9+breakEvenCurvePoints)
}

func TestExportReference(t *testing.T) {
	rep, err := newExporter(t, true).ExportReference()
	require.NoError(t, err)
	assert.Empty(t, rep.Chart)
	assert.Equal(t, []string{SheetComparison, SheetSteps}, sheets(t, rep.Workbook))

	rows := openRows(t, rep.Workbook, SheetComparison)
	require.Len(t, rows, 7)
	assert.Equal(t, "Metric", rows[0][0])
	assert.Equal(t, "Definition:", rows[1][0])

	steps := openRows(t, rep.Workbook, SheetSteps)
	assert.Equal(t, []string{"1", "Define Scope", "Clarify procurement project goals, including evaluated products & desired outcomes."}, steps[1])
}

func TestExportEmptyResult(t *testing.T) {
	_, err := newExporter(t, true).ExportPayback(projection.PaybackResult{})
	assert.ErrorIs(t, err, ErrEmptyResult)
	_, err = newExporter(t, true).ExportNPV(projection.NPVResult{})
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestExportIntoMissingDir(t *testing.T) {
	e := newExporter(t, false)
	e.Dir = filepath.Join(e.Dir, "nested", "out")
	rep, err := e.ExportReference()
	require.NoError(t, err)
	assert.FileExists(t, rep.Workbook)
}

func TestRenderCharts(t *testing.T) {
	be, err := projection.BreakEven(projection.BreakEvenInput{FixedCosts: 0, VariableCost: 1, SalesPrice: 2})
	require.NoError(t, err)
	npv, err := projection.NPV(projection.NPVInput{DiscountRate: 5, InitialInvestment: 100, CashFlows: []float64{-50}})
	require.NoError(t, err)

	tests := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"payback", func() ([]byte, error) { return RenderPaybackChart(paybackResult(t), 320, 200) }},
		{"npv single negative flow", func() ([]byte, error) { return RenderNPVChart(npv, 320, 200) }},
		{"break-even at zero units", func() ([]byte, error) { return RenderBreakEvenChart(be, 320, 200) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := tt.render()
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngMagic))
		})
	}
}

func TestSaveChartRejectsEmpty(t *testing.T) {
	assert.Error(t, SaveChart(filepath.Join(t.TempDir(), "x.png"), nil))
}

func TestSaveChartDefaultsToDir(t *testing.T) {
	e := newExporter(t, true)
	path, err := e.SavePaybackChart(paybackResult(t), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(e.Dir, PaybackChartFile), path)
	assert.FileExists(t, path)

	custom := filepath.Join(t.TempDir(), "charts", "be.png")
	be, err := projection.BreakEven(projection.BreakEvenInput{FixedCosts: 5000, VariableCost: 20, SalesPrice: 50})
	require.NoError(t, err)
	path, err = e.SaveBreakEvenChart(be, custom)
	require.NoError(t, err)
	assert.Equal(t, custom, path)
	assert.FileExists(t, custom)
}
