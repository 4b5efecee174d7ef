package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/uno/consts"
)

// Color of a card. None is the zero value and marks a wild card that has not
// been played yet.
type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
)

// All lists the playable colors in deck construction order.
var All = []Color{Red, Green, Blue, Yellow}

var Stdout io.Writer = color.Output

var names = map[Color]string{
	None:   "none",
	Red:    "red",
	Green:  "green",
	Blue:   "blue",
	Yellow: "yellow",
}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Valid() bool {
	return c >= Red && c <= Yellow
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName accepts a color name in any case, surrounded by any whitespace.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range All {
		if names[c] == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s': %w", name, consts.ErrorsUnknownColor)
}
