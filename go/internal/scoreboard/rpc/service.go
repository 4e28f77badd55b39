package rpc

import (
	"context"
	"math"

	"connectrpc.com/connect"
	scoreboardv1 "github.com/mcdev12/devprix/go/internal/genproto/scoreboard/v1"
	"github.com/mcdev12/devprix/go/internal/genproto/scoreboard/v1/scoreboardv1connect"
	"github.com/mcdev12/devprix/go/internal/models"
	"github.com/mcdev12/devprix/go/internal/results"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// SnapshotReader defines what the service reads from the results app
type SnapshotReader interface {
	Snapshot() results.Snapshot
}

// Service implements the ScoreboardService RPC interface
type Service struct {
	reader SnapshotReader
}

// NewService creates a new scoreboard service
func NewService(reader SnapshotReader) *Service {
	return &Service{reader: reader}
}

// Verify that Service implements the ScoreboardServiceHandler interface
var _ scoreboardv1connect.ScoreboardServiceHandler = (*Service)(nil)

// GetBoard returns the padded board split into its two tables
func (s *Service) GetBoard(ctx context.Context, req *connect.Request[scoreboardv1.GetBoardRequest]) (*connect.Response[scoreboardv1.GetBoardResponse], error) {
	snapshot := s.reader.Snapshot()

	return connect.NewResponse(&scoreboardv1.GetBoardResponse{
		Board: s.boardToProto(snapshot.Board),
	}), nil
}

// ListResults returns the unpadded results in upstream order
func (s *Service) ListResults(ctx context.Context, req *connect.Request[scoreboardv1.ListResultsRequest]) (*connect.Response[scoreboardv1.ListResultsResponse], error) {
	snapshot := s.reader.Snapshot()

	protoResults := make([]*scoreboardv1.Result, len(snapshot.Results))
	for i := range snapshot.Results {
		protoResults[i] = s.resultToProto(&snapshot.Results[i])
	}

	return connect.NewResponse(&scoreboardv1.ListResultsResponse{
		Results:   protoResults,
		UpdatedAt: timestamppb.New(snapshot.Board.UpdatedAt),
	}), nil
}

func (s *Service) boardToProto(board results.Board) *scoreboardv1.Board {
	tables := board.Tables()
	protoBoard := &scoreboardv1.Board{
		UpdatedAt: timestamppb.New(board.UpdatedAt),
		Tables:    make([]*scoreboardv1.Table, len(tables)),
	}
	for i, table := range tables {
		rows := make([]*scoreboardv1.Row, len(table))
		for j, row := range table {
			rows[j] = s.rowToProto(row)
		}
		protoBoard.Tables[i] = &scoreboardv1.Table{Rows: rows}
	}
	return protoBoard
}

func (s *Service) rowToProto(row results.Row) *scoreboardv1.Row {
	if row.IsPlaceholder() {
		return &scoreboardv1.Row{
			Position:    int32(row.Position),
			Placeholder: true,
		}
	}

	score, hasScore := s.scoreToProto(row.Result)
	return &scoreboardv1.Row{
		Position: int32(row.Position),
		Id:       row.Result.ID,
		Name:     row.Result.Name,
		Score:    score,
		HasScore: hasScore,
	}
}

func (s *Service) resultToProto(result *models.Result) *scoreboardv1.Result {
	score, hasScore := s.scoreToProto(result)
	return &scoreboardv1.Result{
		Id:       result.ID,
		Name:     result.Name,
		Score:    score,
		HasScore: hasScore,
	}
}

// scoreToProto reports scores outside the int32 range as absent.
func (s *Service) scoreToProto(result *models.Result) (int32, bool) {
	if !result.HasScore() || *result.Score > math.MaxInt32 {
		return 0, false
	}
	return int32(*result.Score), true
}
