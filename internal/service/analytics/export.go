package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// ExportFilename is the attachment name of the CSV export.
const ExportFilename = "analytics-export.csv"

// Export renders the current overview as CSV.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Export: %w", err)
	}
	return ExportCSV(ov)
}

// ExportCSV writes the metric rows, a blank line and the document type rows.
func ExportCSV(ov domain.Overview) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Metric", "Value"},
		{"Total Documents", strconv.Itoa(ov.TotalDocuments)},
		{"Total Quizzes", strconv.Itoa(ov.TotalQuizzes)},
		{"Total Searches", strconv.FormatInt(ov.TotalSearches, 10)},
		{"AI Interactions", strconv.FormatInt(ov.AIInteractions, 10)},
		{"Total File Size", domain.FormatFileSize(ov.TotalFileSize)},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write metrics: %w", err)
	}

	buf.WriteString("\n")

	types := [][]string{
		{"Document Type", "Count"},
		{"PDF", strconv.Itoa(ov.DocumentTypes.PDF)},
		{"DOC", strconv.Itoa(ov.DocumentTypes.DOC)},
		{"PPT", strconv.Itoa(ov.DocumentTypes.PPT)},
		{"ZIP", strconv.Itoa(ov.DocumentTypes.ZIP)},
		{"OTHER", strconv.Itoa(ov.DocumentTypes.Other)},
	}
	if err := w.WriteAll(types); err != nil {
		return nil, fmt.Errorf("write document types: %w", err)
	}
	return buf.Bytes(), nil
}
