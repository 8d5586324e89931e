package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"go-pricing-gp/internal/pricing"
	"go-pricing-gp/internal/repository"
)

// csvHeader is the fixed column set of the analysis export.
var csvHeader = []string{
	"SKU", "Brand", "Supplier/Basis",
	"Adjusted Cost (Excl. VAT)", "Selling Price (Excl. VAT)",
	"GP (Rand)", "GP (%)",
}

// AnalysisRow is a GP analysis row plus the selling price as the caller
// wants it displayed. GP math always runs on the tax-exclusive figure;
// DisplayPrice only differs when VAT-inclusive display is requested.
type AnalysisRow struct {
	pricing.Row
	DisplayPrice float64 `json:"displayPrice"`
}

type AnalysisService interface {
	Analysis(vatIncluded bool) []AnalysisRow
	ExportCSV() []byte
}

type analysisService struct {
	repo repository.DatasetRepository
	cfg  pricing.Config
}

func NewAnalysisService(repo repository.DatasetRepository, cfg pricing.Config) AnalysisService {
	return &analysisService{repo: repo, cfg: cfg}
}

func (s *analysisService) Analysis(vatIncluded bool) []AnalysisRow {
	rows := s.build()

	out := make([]AnalysisRow, 0, len(rows))
	for _, row := range rows {
		display := row.SellingPrice
		if vatIncluded {
			display = pricing.ToInclusive(row.SellingPrice, s.cfg.VATRate)
		}
		out = append(out, AnalysisRow{Row: row, DisplayPrice: display})
	}
	return out
}

// ExportCSV renders the full analysis as CSV, money to 2 decimals and GP%
// to 1.
func (s *analysisService) ExportCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(csvHeader)
	for _, row := range s.build() {
		_ = w.Write([]string{
			row.SKU,
			row.Brand,
			row.Basis,
			fmt.Sprintf("%.2f", row.Cost),
			fmt.Sprintf("%.2f", row.SellingPrice),
			fmt.Sprintf("%.2f", row.GPRand),
			fmt.Sprintf("%.1f", row.GPPercent),
		})
	}
	w.Flush()

	return buf.Bytes()
}

func (s *analysisService) build() []pricing.Row {
	return pricing.BuildAnalysis(
		s.repo.Suppliers(),
		s.repo.SupplierProducts(),
		s.repo.ScrapValues(),
		s.repo.ManualPrices(),
		s.cfg,
	)
}
