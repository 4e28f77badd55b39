package results

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mcdev12/devprix/go/internal/models"
)

// MapRows converts sheet rows into results. The first row is a header and is
// dropped. Each remaining row is read as (id, name, score); missing trailing
// cells are treated as empty. A nil rows slice means the upstream sent no
// values at all and is reported as ErrMalformedPayload.
func MapRows(rows [][]string) ([]models.Result, error) {
	if rows == nil {
		return nil, fmt.Errorf("%w: no values in response", ErrMalformedPayload)
	}
	if len(rows) <= 1 {
		return []models.Result{}, nil
	}

	results := make([]models.Result, 0, len(rows)-1)
	for _, row := range rows[1:] {
		results = append(results, models.Result{
			ID:    cell(row, 0),
			Name:  cell(row, 1),
			Score: ParseScore(cell(row, 2)),
		})
	}
	return results, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ParseScore reads the leading base-10 integer of s, ignoring leading
// whitespace and any trailing text ("42 pts" is 42). It returns nil when no
// digits lead the string or the value is negative.
func ParseScore(s string) *int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
