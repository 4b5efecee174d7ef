package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// Player decides for one seat. ChooseCard and ChooseColor may block for as
// long as the player needs; Notify must return quickly.
type Player interface {
	Name() string
	ChooseCard(hand []card.Card, state State) (Selection, error)
	ChooseColor(state State) (color.Color, error)
	Notify(e event.Event)
}

// Selection is either a draw or an index into the player's own hand.
type Selection struct {
	Draw  bool
	Index int
}

func DrawSelection() Selection {
	return Selection{Draw: true}
}

func IndexSelection(index int) Selection {
	return Selection{Index: index}
}

func (s Selection) String() string {
	if s.Draw {
		return "draw"
	}
	return strconv.Itoa(s.Index)
}

// ParseSelection reads "draw" (or "d") or a card index.
func ParseSelection(text string) (Selection, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "draw" || text == "d" {
		return DrawSelection(), nil
	}
	index, err := strconv.Atoi(text)
	if err != nil {
		return Selection{}, fmt.Errorf("selection '%s': %w", text, consts.ErrorsInputInvalid)
	}
	return IndexSelection(index), nil
}
