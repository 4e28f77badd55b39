package results

import (
	"fmt"
	"testing"
	"time"

	"github.com/mcdev12/devprix/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResults(n int) []models.Result {
	out := make([]models.Result, n)
	for i := range out {
		score := 100 + i
		out[i] = models.Result{ID: fmt.Sprint(i + 1), Name: fmt.Sprintf("player-%d", i+1), Score: &score}
	}
	return out
}

func TestPadLength(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10, 19, 20, 21, 45} {
		t.Run(fmt.Sprintf("%d results", n), func(t *testing.T) {
			padded := Pad(makeResults(n), BoardSize)
			require.Len(t, padded, BoardSize)

			for i, slot := range padded {
				if i < n {
					require.NotNil(t, slot)
					assert.Equal(t, fmt.Sprint(i+1), slot.ID)
				} else {
					assert.Nil(t, slot)
				}
			}
		})
	}
}

func TestPadDoesNotAliasInput(t *testing.T) {
	in := makeResults(2)
	padded := Pad(in, BoardSize)
	padded[0].Name = "changed"
	assert.Equal(t, "player-1", in[0].Name)
}

func TestWindowsPartitionBoard(t *testing.T) {
	for _, n := range []int{0, 7, 20, 33} {
		board := NewBoard(makeResults(n), time.Time{})
		tables := board.Tables()
		require.Len(t, tables, 2)
		require.Len(t, tables[0], PageSize)
		require.Len(t, tables[1], PageSize)

		var joined []*models.Result
		for _, table := range tables {
			for _, row := range table {
				joined = append(joined, row.Result)
			}
		}
		assert.Equal(t, board.Slots, joined)
	}
}

func TestThreeResults(t *testing.T) {
	tables := NewBoard(makeResults(3), time.Time{}).Tables()

	first := tables[0]
	for i := 0; i < 3; i++ {
		assert.False(t, first[i].IsPlaceholder())
		assert.Equal(t, i+1, first[i].Position)
		assert.Equal(t, fmt.Sprintf("player-%d", i+1), first[i].Name())
		assert.Equal(t, fmt.Sprint(100+i), first[i].Points())
	}
	for i := 3; i < PageSize; i++ {
		assert.True(t, first[i].IsPlaceholder())
		assert.Empty(t, first[i].Name())
		assert.Empty(t, first[i].Points())
	}

	for i, row := range tables[1] {
		assert.True(t, row.IsPlaceholder())
		assert.Equal(t, PageSize+i+1, row.Position)
	}
}

func TestWindowClipsToLength(t *testing.T) {
	padded := Pad(makeResults(5), 12)

	assert.Len(t, Window(padded, 10, PageSize), 2)
	assert.Empty(t, Window(padded, 12, PageSize))
	assert.Empty(t, Window(padded, 40, PageSize))
}

func TestRowMissingScore(t *testing.T) {
	row := Row{Position: 1, Result: &models.Result{ID: "9", Name: "Nan"}}
	assert.False(t, row.IsPlaceholder())
	assert.Equal(t, "Nan", row.Name())
	assert.Empty(t, row.Points())
}

func TestBoardView(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	view := NewBoard(makeResults(1), at).View()

	assert.Equal(t, at, view.UpdatedAt)
	require.Len(t, view.Tables, 2)
	assert.Equal(t, "player-1", view.Tables[0][0].Name)
	require.NotNil(t, view.Tables[0][0].Score)
	assert.Equal(t, 100, *view.Tables[0][0].Score)
	assert.True(t, view.Tables[0][1].Placeholder)
	assert.Equal(t, 20, view.Tables[1][9].Position)
}
