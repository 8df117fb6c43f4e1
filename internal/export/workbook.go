package export

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/cbakit/internal/projection"
	"github.com/theirongolddev/cbakit/internal/reference"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Sheet names.
const (
	SheetCashFlows      = "Cash Flows"
	SheetSummary        = "Summary"
	SheetPaybackChart   = "Payback Chart"
	SheetNPVChart       = "NPV Chart"
	SheetBreakEven      = "Break-Even"
	SheetBreakEvenChart = "Break-Even Chart"
	SheetComparison     = "BCR vs Net Profit"
	SheetSteps          = "CBA Steps"
)

// breakEvenCurvePoints is the number of curve samples written and charted.
const breakEvenCurvePoints = 31

type styles struct {
	header   int
	currency int
	factor   int
	ratio    int
}

func newWorkbook(first string, symbol string) (*excelize.File, styles, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", first); err != nil {
		_ = f.Close()
		return nil, styles{}, err
	}

	var s styles
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, styles{}, err
	}
	money := fmt.Sprintf(`"%s"#,##0.00;-"%s"#,##0.00`, symbol, symbol)
	if s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &money}); err != nil {
		_ = f.Close()
		return nil, styles{}, err
	}
	four := "0.0000"
	if s.factor, err = f.NewStyle(&excelize.Style{CustomNumFmt: &four}); err != nil {
		_ = f.Close()
		return nil, styles{}, err
	}
	two := "0.00"
	if s.ratio, err = f.NewStyle(&excelize.Style{CustomNumFmt: &two}); err != nil {
		_ = f.Close()
		return nil, styles{}, err
	}
	return f, s, nil
}

// writeTable writes a header row at row 1 and data rows below it.
func writeTable(f *excelize.File, sheet string, header int, headers []string, rows [][]any) error {
	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheet, "A1", last+"1", header); err != nil {
		return err
	}
	for i, r := range rows {
		row := r
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", last, 22)
}

// styleColumn applies style to rows 2..n+1 of col.
func (e *Exporter) styleColumn(f *excelize.File, sheet, col string, n, style int) {
	if n == 0 {
		return
	}
	e.setStyle(f, sheet, col+"2", col+strconv.Itoa(n+1), style)
}

// setStyle applies a number format or header style. A failure leaves the
// values unformatted, so it is logged rather than aborting the export.
func (e *Exporter) setStyle(f *excelize.File, sheet, from, to string, style int) {
	if err := f.SetCellStyle(sheet, from, to, style); err != nil {
		e.logger().Warn("cell style not applied",
			zap.String("sheet", sheet), zap.String("range", from+":"+to), zap.Error(err))
	}
}

func (e *Exporter) setColWidth(f *excelize.File, sheet, from, to string, width float64) {
	if err := f.SetColWidth(sheet, from, to, width); err != nil {
		e.logger().Warn("column width not applied",
			zap.String("sheet", sheet), zap.String("cols", from+":"+to), zap.Error(err))
	}
}

// ExportPayback writes the payback schedule, a summary sheet and the chart.
func (e *Exporter) ExportPayback(res projection.PaybackResult) (Report, error) {
	if len(res.Rows) == 0 {
		return Report{}, ErrEmptyResult
	}
	path, err := e.path(PaybackFile)
	if err != nil {
		return Report{}, err
	}
	w, h := e.size()
	png, err := RenderPaybackChart(res, w, h)
	if err != nil {
		return Report{}, fmt.Errorf("rendering payback chart: %w", err)
	}

	f, st, err := newWorkbook(SheetCashFlows, e.symbol())
	if err != nil {
		return Report{}, fmt.Errorf("creating workbook: %w", err)
	}

	rows := make([][]any, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = []any{r.Year, projection.Round2(r.CashFlow), projection.Round2(r.Cumulative)}
	}
	if err := writeTable(f, SheetCashFlows, st.header, []string{"Year", "Cash Flow", "Cumulative Cash Flow"}, rows); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("writing cash flows: %w", err)
	}
	e.styleColumn(f, SheetCashFlows, "B", len(rows), st.currency)
	e.styleColumn(f, SheetCashFlows, "C", len(rows), st.currency)

	if _, err := f.NewSheet(SheetSummary); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("creating summary: %w", err)
	}
	period := fmt.Sprintf("Not recovered within %d years", len(res.Rows))
	fractional := any("")
	if res.Recovered {
		period = fmt.Sprintf("%d years and %d months", res.Years, res.Months)
		fractional = projection.Round2(res.FractionalYears)
	}
	summary := [][]any{
		{"Initial Investment", projection.Round2(res.Input.InitialInvestment)},
		{"Annual Benefit", projection.Round2(res.Input.AnnualBenefit)},
		{"Payback Period", period},
		{"Payback (years)", fractional},
	}
	if err := writeTable(f, SheetSummary, st.header, []string{"Metric", "Value"}, summary); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("writing summary: %w", err)
	}
	e.setStyle(f, SheetSummary, "B2", "B3", st.currency)
	e.setStyle(f, SheetSummary, "B5", "B5", st.ratio)

	rep := Report{Workbook: path}
	e.attachChart(f, SheetPaybackChart, path, png, &rep)
	if err := save(f, path); err != nil {
		return Report{}, err
	}
	e.logger().Info("exported payback", zap.String("path", path), zap.Int("rows", len(res.Rows)))
	return rep, nil
}

// ExportNPV writes the discounted schedule, a summary sheet and the chart.
func (e *Exporter) ExportNPV(res projection.NPVResult) (Report, error) {
	if len(res.Rows) == 0 {
		return Report{}, ErrEmptyResult
	}
	path, err := e.path(NPVFile)
	if err != nil {
		return Report{}, err
	}
	w, h := e.size()
	png, err := RenderNPVChart(res, w, h)
	if err != nil {
		return Report{}, fmt.Errorf("rendering npv chart: %w", err)
	}

	f, st, err := newWorkbook(SheetCashFlows, e.symbol())
	if err != nil {
		return Report{}, fmt.Errorf("creating workbook: %w", err)
	}

	rows := make([][]any, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = []any{r.Year, projection.Round2(r.CashFlow), r.DiscountFactor, projection.Round2(r.PresentValue)}
	}
	headers := []string{"Year", "Cash Flow", "Discount Factor", "Present Value"}
	if err := writeTable(f, SheetCashFlows, st.header, headers, rows); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("writing cash flows: %w", err)
	}
	e.styleColumn(f, SheetCashFlows, "B", len(rows), st.currency)
	e.styleColumn(f, SheetCashFlows, "C", len(rows), st.factor)
	e.styleColumn(f, SheetCashFlows, "D", len(rows), st.currency)

	if _, err := f.NewSheet(SheetSummary); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("creating summary: %w", err)
	}
	summary := [][]any{
		{"Discount Rate (%)", res.Input.DiscountRate},
		{"Initial Investment", projection.Round2(res.InitialInvestment)},
		{"Total Present Value of Benefits", projection.Round2(res.TotalPresentValue)},
		{"Net Present Value", projection.Round2(res.NetPresentValue)},
		{"Benefit-Cost Ratio", projection.Round2(res.BenefitCostRatio)},
	}
	if err := writeTable(f, SheetSummary, st.header, []string{"Metric", "Value"}, summary); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("writing summary: %w", err)
	}
	e.setStyle(f, SheetSummary, "B2", "B2", st.ratio)
	e.setStyle(f, SheetSummary, "B3", "B5", st.currency)
	e.setStyle(f, SheetSummary, "B6", "B6", st.ratio)

	rep := Report{Workbook: path}
	e.attachChart(f, SheetNPVChart, path, png, &rep)
	if err := save(f, path); err != nil {
		return Report{}, err
	}
	e.logger().Info("exported npv", zap.String("path", path), zap.Int("rows", len(res.Rows)))
	return rep, nil
}

// ExportBreakEven writes the break-even inputs, results and cost/revenue
// samples to one sheet plus the chart.
func (e *Exporter) ExportBreakEven(res projection.BreakEvenResult) (Report, error) {
	path, err := e.path(BreakEvenFile)
	if err != nil {
		return Report{}, err
	}
	w, h := e.size()
	png, err := RenderBreakEvenChart(res, w, h)
	if err != nil {
		return Report{}, fmt.Errorf("rendering break-even chart: %w", err)
	}

	f, st, err := newWorkbook(SheetBreakEven, e.symbol())
	if err != nil {
		return Report{}, fmt.Errorf("creating workbook: %w", err)
	}
	rows := [][]any{
		{"Fixed Costs", projection.Round2(res.Input.FixedCosts)},
		{"Variable Cost per Unit", projection.Round2(res.Input.VariableCost)},
		{"Sales Price per Unit", projection.Round2(res.Input.SalesPrice)},
		{"Break-Even Units", res.Units},
		{"Break-Even Revenue", res.Revenue},
	}
	if err := writeTable(f, SheetBreakEven, st.header, []string{"Metric", "Value"}, rows); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("writing break-even: %w", err)
	}
	e.setStyle(f, SheetBreakEven, "B2", "B4", st.currency)
	e.setStyle(f, SheetBreakEven, "B5", "B5", st.ratio)
	e.setStyle(f, SheetBreakEven, "B6", "B6", st.currency)

	// Curve samples start two rows below the summary block.
	const curveRow = 9
	hdr := []any{"Units", "Total Cost", "Total Revenue"}
	if err := f.SetSheetRow(SheetBreakEven, "A"+strconv.Itoa(curveRow), &hdr); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("writing curve: %w", err)
	}
	e.setStyle(f, SheetBreakEven, "A"+strconv.Itoa(curveRow), "C"+strconv.Itoa(curveRow), st.header)
	curve := res.Curve(breakEvenCurvePoints)
	for i, p := range curve {
		row := []any{projection.Round2(p.Units), projection.Round2(p.TotalCost), projection.Round2(p.TotalRevenue)}
		if err := f.SetSheetRow(SheetBreakEven, "A"+strconv.Itoa(curveRow+1+i), &row); err != nil {
			_ = f.Close()
			return Report{}, fmt.Errorf("writing curve: %w", err)
		}
	}
	lastRow := strconv.Itoa(curveRow + len(curve))
	e.setStyle(f, SheetBreakEven, "B"+strconv.Itoa(curveRow+1), "C"+lastRow, st.currency)

	rep := Report{Workbook: path}
	e.attachChart(f, SheetBreakEvenChart, path, png, &rep)
	if err := save(f, path); err != nil {
		return Report{}, err
	}
	e.logger().Info("exported break-even", zap.String("path", path))
	return rep, nil
}

// ExportReference writes the BCR vs Net Profit table and the CBA steps.
func (e *Exporter) ExportReference() (Report, error) {
	path, err := e.path(ReferenceFile)
	if err != nil {
		return Report{}, err
	}
	f, st, err := newWorkbook(SheetComparison, e.symbol())
	if err != nil {
		return Report{}, fmt.Errorf("creating workbook: %w", err)
	}

	cmp := reference.Comparison()
	rows := make([][]any, len(cmp.Rows))
	for i, r := range cmp.Rows {
		row := make([]any, len(r))
		for j, c := range r {
			row[j] = c
		}
		rows[i] = row
	}
	if err := writeTable(f, SheetComparison, st.header, cmp.Headers, rows); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("writing comparison: %w", err)
	}
	e.setColWidth(f, SheetComparison, "B", "C", 50)

	if _, err := f.NewSheet(SheetSteps); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("creating steps: %w", err)
	}
	var stepRows [][]any
	for i, s := range reference.Steps() {
		stepRows = append(stepRows, []any{i + 1, s.Title, s.Summary})
		for _, p := range s.Points {
			text := p.Text
			if p.Title != "" {
				text = p.Title + ": " + p.Text
			}
			stepRows = append(stepRows, []any{"", "", text})
		}
	}
	if err := writeTable(f, SheetSteps, st.header, []string{"Step", "Title", "Detail"}, stepRows); err != nil {
		_ = f.Close()
		return Report{}, fmt.Errorf("writing steps: %w", err)
	}
	e.setColWidth(f, SheetSteps, "A", "A", 8)
	e.setColWidth(f, SheetSteps, "C", "C", 90)

	if err := save(f, path); err != nil {
		return Report{}, err
	}
	e.logger().Info("exported reference", zap.String("path", path))
	return Report{Workbook: path}, nil
}
