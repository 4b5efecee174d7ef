package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/color"
)

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

// Kinds lists every card kind.
var Kinds = []Kind{Number, Skip, Reverse, DrawTwo, Wild, WildDrawFour}

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case DrawTwo:
		return "draw two"
	case Wild:
		return "wild"
	case WildDrawFour:
		return "wild draw four"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Card is an immutable value. Colored kinds always carry a color; wild kinds
// carry color.None until they are played and a color is chosen.
type Card struct {
	kind   Kind
	number int
	color  color.Color
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{kind: Number, number: number, color: c}
}

func NewSkipCard(c color.Color) Card {
	return Card{kind: Skip, color: c}
}

func NewReverseCard(c color.Color) Card {
	return Card{kind: Reverse, color: c}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{kind: DrawTwo, color: c}
}

func NewWildCard() Card {
	return Card{kind: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{kind: WildDrawFour}
}

func (c Card) Kind() Kind {
	return c.kind
}

// Number is only meaningful for number cards.
func (c Card) Number() int {
	return c.number
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) HasColor() bool {
	return c.color != color.None
}

func (c Card) IsWild() bool {
	return c.kind == Wild || c.kind == WildDrawFour
}

// WithColor returns a copy painted with the given color.
func (c Card) WithColor(chosen color.Color) Card {
	c.color = chosen
	return c
}

// Uncolored returns a wild card to its unplayed form. Other kinds are returned
// unchanged.
func (c Card) Uncolored() Card {
	if c.IsWild() {
		c.color = color.None
	}
	return c
}

func (c Card) Equal(other Card) bool {
	return c == other
}

func (c Card) String() string {
	var face string
	switch c.kind {
	case Number:
		face = fmt.Sprintf("[%d]", c.number)
	case Skip:
		face = "(/)"
	case Reverse:
		face = "<=>"
	case DrawTwo:
		face = "+2"
	case Wild:
		face = "(*)"
	case WildDrawFour:
		face = "+4"
	default:
		face = c.kind.String()
	}
	if !c.HasColor() {
		return face
	}
	return c.color.Paint(face) + fmt.Sprintf("(%s)", c.color.Name())
}
