// Package export writes calculation results to xlsx workbooks and PNG charts.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Default workbook file names.
const (
	PaybackFile   = "payback_period_calculation.xlsx"
	NPVFile       = "NPV_Calculation.xlsx"
	BreakEvenFile = "break_even_analysis.xlsx"
	ReferenceFile = "BCR_vs_Net_Profit.xlsx"
)

// Default chart dimensions in pixels.
const (
	DefaultChartWidth  = 1024
	DefaultChartHeight = 600
)

// ErrEmptyResult is returned when asked to export a result with no rows.
var ErrEmptyResult = errors.New("nothing to export")

// Exporter writes workbooks and charts into Dir.
type Exporter struct {
	Dir            string
	EmbedCharts    bool
	ChartWidth     int
	ChartHeight    int
	CurrencySymbol string
	Logger         *zap.Logger
}

// Report describes the files written by one export.
// Chart is empty when the chart was embedded in the workbook.
type Report struct {
	Workbook string
	Chart    string
	Warnings []string
}

func (e *Exporter) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Exporter) size() (int, int) {
	w, h := e.ChartWidth, e.ChartHeight
	if w <= 0 {
		w = DefaultChartWidth
	}
	if h <= 0 {
		h = DefaultChartHeight
	}
	return w, h
}

func (e *Exporter) symbol() string {
	if e.CurrencySymbol == "" {
		return "£"
	}
	return e.CurrencySymbol
}

func (e *Exporter) path(name string) (string, error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	return filepath.Join(dir, name), nil
}

// attachChart embeds png into a chart sheet of f, or saves it next to the
// workbook when embedding is disabled or fails. The workbook is never lost
// to a chart problem.
func (e *Exporter) attachChart(f *excelize.File, sheet, workbook string, png []byte, rep *Report) {
	if e.EmbedCharts {
		err := embedPicture(f, sheet, png)
		if err == nil {
			return
		}
		e.logger().Warn("chart embed failed", zap.String("sheet", sheet), zap.Error(err))
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("could not embed chart: %v", err))
	}

	chartPath := strings.TrimSuffix(workbook, filepath.Ext(workbook)) + ".png"
	if err := SaveChart(chartPath, png); err != nil {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("could not save chart image: %v", err))
		return
	}
	rep.Chart = chartPath
	rep.Warnings = append(rep.Warnings, "chart saved separately as "+filepath.Base(chartPath))
}

func embedPicture(f *excelize.File, sheet string, png []byte) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	err := f.AddPictureFromBytes(sheet, "A1", &excelize.Picture{
		Extension: ".png",
		File:      png,
		Format:    &excelize.GraphicOptions{AltText: sheet},
	})
	if err != nil {
		_ = f.DeleteSheet(sheet)
		return err
	}
	return nil
}

// SaveChart writes a rendered PNG to path.
func SaveChart(path string, png []byte) error {
	if len(png) == 0 {
		return errors.New("empty chart image")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart dir: %w", err)
		}
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

// save writes f to path and closes it.
func save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing workbook: %w", err)
	}
	return f.Close()
}
