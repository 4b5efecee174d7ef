package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 10
	HandSize   = 7
	DeckSize   = 108

	// Uncolored wilds only go on wild tops, so a match can stall with every
	// wild stuck in a hand. Tables never run without a limit.
	DefaultTurnLimit = 1000

	TableStateWaiting = 1
	TableStateRunning = 2

	PlayTimeout = 40 * time.Second
	AuthTimeout = 3 * time.Second
)

var TableStates = map[int]string{
	TableStateWaiting: "Waiting",
	TableStateRunning: "Running",
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist               = NewErr(1, true, "Exist. ")
	ErrorsChanClosed          = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout             = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid        = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail            = NewErr(1, true, "Auth fail. ")
	ErrorsTableInvalid        = NewErr(1, true, "Table invalid. ")
	ErrorsTablePlayersIsFull  = NewErr(1, false, "Table players is full. ")
	ErrorsGamePlayersInvalid  = NewErr(2, true, "Game players invalid. ")
	ErrorsInvalidPlay         = NewErr(3, false, "INVALID PLAY. ")
	ErrorsOutOfRangeSelection = NewErr(3, false, "Selection out of range. ")
	ErrorsColorRequired       = NewErr(3, false, "A color must be chosen. ")
	ErrorsUnknownColor        = NewErr(3, false, "Unknown color. ")
	ErrorsDeckExhausted       = NewErr(4, true, "Deck exhausted. ")
	ErrorsGameEnded           = NewErr(4, true, "Game already ended. ")
	ErrorsTurnLimit           = NewErr(4, true, "Turn limit reached. ")
)
