package ui_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func newTerminal(input string) (*ui.Terminal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return ui.NewTerminal(strings.NewReader(input), out), out
}

func TestPromptCardSelection(t *testing.T) {
	hand := []card.Card{card.NewNumberCard(color.Red, 1), card.NewWildCard()}

	t.Run("reads_an_index", func(t *testing.T) {
		terminal, out := newTerminal("1\n")
		selection, err := terminal.PromptCardSelection(hand)
		require.NoError(t, err)
		require.Equal(t, game.IndexSelection(1), selection)
		require.Contains(t, out.String(), "(enter 1)")
	})

	t.Run("reads_draw", func(t *testing.T) {
		terminal, _ := newTerminal("DRAW\n")
		selection, err := terminal.PromptCardSelection(hand)
		require.NoError(t, err)
		require.True(t, selection.Draw)
	})

	t.Run("asks_again_after_garbage", func(t *testing.T) {
		terminal, out := newTerminal("\nplease\n0\n")
		selection, err := terminal.PromptCardSelection(hand)
		require.NoError(t, err)
		require.Equal(t, game.IndexSelection(0), selection)
		require.Contains(t, out.String(), "Invalid text input")
		require.Contains(t, out.String(), "No card assigned to 'please'")
	})

	t.Run("fails_when_input_ends", func(t *testing.T) {
		terminal, _ := newTerminal("")
		_, err := terminal.PromptCardSelection(hand)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestPromptColor(t *testing.T) {
	terminal, out := newTerminal("purple\n Green \n")
	chosen, err := terminal.PromptColor()
	require.NoError(t, err)
	require.Equal(t, color.Green, chosen)
	require.Contains(t, out.String(), "Unknown color 'purple'")
}

func TestPromptIntegerInRange(t *testing.T) {
	terminal, out := newTerminal("eleven\n11\n1\n4\n")
	number, err := terminal.PromptIntegerInRange(2, 10, "How many players?")
	require.NoError(t, err)
	require.Equal(t, 4, number)
	require.Contains(t, out.String(), "Invalid number input")
	require.Contains(t, out.String(), "Input out of range (minimum: 2, maximum: 10)")
}
