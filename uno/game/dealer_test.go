package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestDeal(t *testing.T) {
	t.Run("deals_contiguous_blocks_in_id_order", func(t *testing.T) {
		deck := game.BuildDeck()
		deck.Shuffle(rand.New(rand.NewSource(11)))
		order := deck.Cards()

		seats, err := game.Deal(deck, 3)
		require.NoError(t, err)
		require.Len(t, seats, 3)
		for i, seat := range seats {
			require.Equal(t, i, seat.ID)
			require.Equal(t, order[i*7:(i+1)*7], seat.Hand.Cards())
		}
		require.Equal(t, 108-21, deck.Len())
		require.Equal(t, order[21:], deck.Cards())
	})

	t.Run("keeps_every_card_accounted_for", func(t *testing.T) {
		deck := game.BuildDeck()
		seats, err := game.Deal(deck, 10)
		require.NoError(t, err)
		all := deck.Cards()
		for _, seat := range seats {
			require.Equal(t, 7, seat.Hand.Size())
			all = append(all, seat.Hand.Cards()...)
		}
		require.ElementsMatch(t, standardDeckCards, all)
	})

	for _, players := range []int{0, 1, 11} {
		players := players
		t.Run("rejects_invalid_player_count", func(t *testing.T) {
			deck := game.BuildDeck()
			seats, err := game.Deal(deck, players)
			require.ErrorIs(t, err, consts.ErrorsGamePlayersInvalid)
			require.Nil(t, seats)
			require.Equal(t, 108, deck.Len())
		})
	}

	t.Run("rejects_a_short_deck", func(t *testing.T) {
		deck := game.NewDeck(make([]card.Card, 13))
		_, err := game.Deal(deck, 2)
		require.ErrorIs(t, err, consts.ErrorsDeckExhausted)
		require.Equal(t, 13, deck.Len())
	})
}
