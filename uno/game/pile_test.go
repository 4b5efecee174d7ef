package game_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}, pile.Cards())
	require.Equal(t, 3, pile.Size())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	require.Nil(t, pile.Top())
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, card.NewNumberCard(color.Green, 7), *pile.Top())
}

func TestPaintTop(t *testing.T) {
	t.Run("paints_an_unpainted_wild_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		pile.Add(card.NewWildCard())
		require.True(t, pile.NeedsColor())

		require.NoError(t, pile.PaintTop(color.Yellow))
		require.False(t, pile.NeedsColor())
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Blue, 5),
			card.NewWildCard().WithColor(color.Yellow),
		}, pile.Cards())
	})

	t.Run("never_repaints_a_painted_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewWildDrawFourCard().WithColor(color.Red))
		require.NoError(t, pile.PaintTop(color.Blue))
		require.Equal(t, card.NewWildDrawFourCard().WithColor(color.Red), *pile.Top())
	})

	t.Run("leaves_colored_kinds_alone", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewSkipCard(color.Green))
		require.NoError(t, pile.PaintTop(color.Blue))
		require.Equal(t, card.NewSkipCard(color.Green), *pile.Top())
	})

	t.Run("requires_a_color", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewWildCard())
		require.ErrorIs(t, pile.PaintTop(color.None), consts.ErrorsColorRequired)
		require.True(t, pile.NeedsColor())
	})
}

func TestRecycle(t *testing.T) {
	pile := game.NewPile()
	require.Nil(t, pile.Recycle())

	pile.Add(card.NewWildCard().WithColor(color.Red))
	pile.Add(card.NewNumberCard(color.Red, 4))
	pile.Add(card.NewWildDrawFourCard().WithColor(color.Blue))

	recycled := pile.Recycle()
	require.Equal(t, []card.Card{
		card.NewWildCard(),
		card.NewNumberCard(color.Red, 4),
	}, recycled)
	require.Equal(t, []card.Card{card.NewWildDrawFourCard().WithColor(color.Blue)}, pile.Cards())
}
