package gateway

import "github.com/mcdev12/devprix/go/internal/results"

// StateProvider supplies the board sent to viewers when they connect
type StateProvider interface {
	Board() results.Board
}
