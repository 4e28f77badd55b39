package results

import (
	"strconv"
	"time"

	"github.com/mcdev12/devprix/go/internal/models"
)

const (
	// BoardSize is the number of slots rendered across both tables.
	BoardSize = 20
	// PageSize is the number of rows in one table.
	PageSize = 10
)

// Row is a single rendered table line. A nil Result is an empty placeholder.
type Row struct {
	Position int
	Result   *models.Result
}

// IsPlaceholder reports whether the row pads the table.
func (r Row) IsPlaceholder() bool {
	return r.Result == nil
}

// Name returns the player name, or "" for a placeholder.
func (r Row) Name() string {
	if r.Result == nil {
		return ""
	}
	return r.Result.Name
}

// Points returns the score as text, or "" for a placeholder or missing score.
func (r Row) Points() string {
	if r.Result == nil || r.Result.Score == nil {
		return ""
	}
	return strconv.Itoa(*r.Result.Score)
}

// Board is a padded snapshot of the results and the time it was taken.
type Board struct {
	Slots     []*models.Result
	UpdatedAt time.Time
}

// NewBoard pads results to BoardSize.
func NewBoard(results []models.Result, updatedAt time.Time) Board {
	return Board{
		Slots:     Pad(results, BoardSize),
		UpdatedAt: updatedAt,
	}
}

// Tables returns the board split into BoardSize/PageSize windows.
func (b Board) Tables() [][]Row {
	tables := make([][]Row, 0, BoardSize/PageSize)
	for offset := 0; offset < len(b.Slots); offset += PageSize {
		tables = append(tables, Window(b.Slots, offset, PageSize))
	}
	return tables
}

// Pad appends placeholders until size slots exist, then truncates to size.
// Each returned pointer refers to a copy, so callers may not mutate results through it.
func Pad(results []models.Result, size int) []*models.Result {
	if size < 0 {
		size = 0
	}
	padded := make([]*models.Result, size)
	for i := 0; i < size && i < len(results); i++ {
		r := results[i]
		padded[i] = &r
	}
	return padded
}

// Window returns the rows [offset, offset+size) of padded, clipped to its length.
func Window(padded []*models.Result, offset, size int) []Row {
	if offset < 0 {
		offset = 0
	}
	end := offset + size
	if end > len(padded) {
		end = len(padded)
	}
	if offset >= end {
		return []Row{}
	}

	rows := make([]Row, 0, end-offset)
	for i, r := range padded[offset:end] {
		rows = append(rows, Row{Position: offset + i + 1, Result: r})
	}
	return rows
}
