package game_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func newHand(cards ...card.Card) *game.Hand {
	hand := game.NewHand()
	hand.AddCards(cards)
	return hand
}

func TestAddCards(t *testing.T) {
	hand := newHand(
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	)
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.False(t, hand.Empty())
	require.Equal(t, 2, hand.Size())
}

func TestPlayableIndices(t *testing.T) {
	hand := newHand(
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	)
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	require.Equal(t, []int{0, 2, 5}, hand.PlayableIndices(&lastPlayedCard))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, hand.PlayableIndices(nil))
}

func TestRemoveAt(t *testing.T) {
	t.Run("removes_the_card_at_index", func(t *testing.T) {
		hand := newHand(
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		)
		removed, err := hand.RemoveAt(1)
		require.NoError(t, err)
		require.Equal(t, card.NewReverseCard(color.Yellow), removed)
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("rejects_out_of_range_indices", func(t *testing.T) {
		hand := newHand(card.NewWildCard())
		for _, index := range []int{-1, 1, 99} {
			_, err := hand.RemoveAt(index)
			require.ErrorIs(t, err, consts.ErrorsOutOfRangeSelection)
		}
		require.Equal(t, []card.Card{card.NewWildCard()}, hand.Cards())
	})
}

func TestInsertAt(t *testing.T) {
	cards := []card.Card{
		card.NewNumberCard(color.Red, 1),
		card.NewNumberCard(color.Red, 2),
		card.NewNumberCard(color.Red, 3),
	}
	for index := range cards {
		hand := newHand(cards...)
		removed, err := hand.RemoveAt(index)
		require.NoError(t, err)
		hand.InsertAt(index, removed)
		require.Equal(t, cards, hand.Cards(), "restoring index %d", index)
	}

	hand := newHand(cards[0])
	hand.InsertAt(10, cards[1])
	require.Equal(t, cards[:2], hand.Cards())
}
