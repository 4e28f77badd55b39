package results

import "time"

// RowView is the JSON form of a Row.
type RowView struct {
	Position    int    `json:"position"`
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Score       *int   `json:"score,omitempty"`
	Placeholder bool   `json:"placeholder"`
}

// BoardView is the JSON form of a Board shared by the API, WebSocket and NATS payloads.
type BoardView struct {
	UpdatedAt time.Time   `json:"updated_at"`
	Tables    [][]RowView `json:"tables"`
}

// View converts the board into its JSON form.
func (b Board) View() BoardView {
	tables := b.Tables()
	view := BoardView{
		UpdatedAt: b.UpdatedAt,
		Tables:    make([][]RowView, len(tables)),
	}
	for i, table := range tables {
		rows := make([]RowView, len(table))
		for j, row := range table {
			rows[j] = row.View()
		}
		view.Tables[i] = rows
	}
	return view
}

// View converts the row into its JSON form.
func (r Row) View() RowView {
	if r.Result == nil {
		return RowView{Position: r.Position, Placeholder: true}
	}
	return RowView{
		Position: r.Position,
		ID:       r.Result.ID,
		Name:     r.Result.Name,
		Score:    r.Result.Score,
	}
}
