package results

import (
	"context"
	"fmt"

	"github.com/mcdev12/devprix/go/clients/sheets_client"
	"github.com/mcdev12/devprix/go/internal/models"
)

// ResultsSource defines what the app needs from the upstream data provider.
type ResultsSource interface {
	FetchResults(ctx context.Context) ([]models.Result, error)
}

// SheetsSource reads results from a spreadsheet range.
type SheetsSource struct {
	client     *sheets_client.SheetsClient
	valueRange string
}

// NewSheetsSource creates a source over valueRange, defaulting to the Results sheet.
func NewSheetsSource(client *sheets_client.SheetsClient, valueRange string) *SheetsSource {
	if valueRange == "" {
		valueRange = sheets_client.ResultsRange
	}
	return &SheetsSource{
		client:     client,
		valueRange: valueRange,
	}
}

func (s *SheetsSource) FetchResults(ctx context.Context) ([]models.Result, error) {
	vr, err := s.client.GetValues(ctx, s.valueRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.valueRange, err)
	}

	var rows [][]string
	if vr.Values != nil {
		rows = vr.Rows()
	}

	results, err := MapRows(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", s.valueRange, err)
	}
	return results, nil
}
