package player_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func stateWithTop(top card.Card, hand []card.Card) game.State {
	return game.State{LastPlayedCard: &top, CurrentPlayerHand: hand}
}

func TestNaivePlayer(t *testing.T) {
	bot := player.NewNaivePlayer("Nunu", rand.New(rand.NewSource(1)))
	hand := []card.Card{
		card.NewNumberCard(color.Green, 1),
		card.NewNumberCard(color.Red, 2),
		card.NewNumberCard(color.Red, 3),
	}

	t.Run("plays_the_first_legal_card", func(t *testing.T) {
		selection, err := bot.ChooseCard(hand, stateWithTop(card.NewNumberCard(color.Red, 9), hand))
		require.NoError(t, err)
		require.Equal(t, game.IndexSelection(1), selection)
	})

	t.Run("draws_without_a_legal_card", func(t *testing.T) {
		selection, err := bot.ChooseCard(hand, stateWithTop(card.NewSkipCard(color.Blue), hand))
		require.NoError(t, err)
		require.True(t, selection.Draw)
	})

	t.Run("picks_a_real_color", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			chosen, err := bot.ChooseColor(game.State{})
			require.NoError(t, err)
			require.True(t, chosen.Valid())
		}
	})
}

func TestGoodPlayer(t *testing.T) {
	bot := player.NewGoodPlayer("Poppy")

	t.Run("keeps_the_most_follow_up_plays", func(t *testing.T) {
		hand := []card.Card{
			card.NewNumberCard(color.Red, 4),
			card.NewNumberCard(color.Blue, 7),
			card.NewNumberCard(color.Blue, 2),
			card.NewNumberCard(color.Blue, 5),
		}
		selection, err := bot.ChooseCard(hand, stateWithTop(card.NewNumberCard(color.Red, 7), hand))
		require.NoError(t, err)
		require.Equal(t, game.IndexSelection(1), selection)
	})

	t.Run("draws_without_a_legal_card", func(t *testing.T) {
		hand := []card.Card{card.NewWildCard()}
		selection, err := bot.ChooseCard(hand, stateWithTop(card.NewNumberCard(color.Red, 7), hand))
		require.NoError(t, err)
		require.True(t, selection.Draw)
	})

	t.Run("picks_the_most_frequent_color", func(t *testing.T) {
		hand := []card.Card{
			card.NewNumberCard(color.Yellow, 1),
			card.NewWildCard(),
			card.NewSkipCard(color.Yellow),
			card.NewNumberCard(color.Green, 1),
		}
		chosen, err := bot.ChooseColor(game.State{CurrentPlayerHand: hand})
		require.NoError(t, err)
		require.Equal(t, color.Yellow, chosen)
	})

	t.Run("falls_back_to_red_with_nothing_colored", func(t *testing.T) {
		chosen, err := bot.ChooseColor(game.State{CurrentPlayerHand: []card.Card{card.NewWildCard()}})
		require.NoError(t, err)
		require.Equal(t, color.Red, chosen)
	})
}

func TestHumanPlayer(t *testing.T) {
	out := &bytes.Buffer{}
	terminal := ui.NewTerminal(strings.NewReader("2\nblue\n"), out)
	human := player.NewHumanPlayer("Ferris", terminal)
	hand := []card.Card{card.NewNumberCard(color.Red, 1), card.NewNumberCard(color.Red, 2), card.NewWildCard()}

	selection, err := human.ChooseCard(hand, stateWithTop(card.NewNumberCard(color.Red, 7), hand))
	require.NoError(t, err)
	require.Equal(t, game.IndexSelection(2), selection)
	require.Contains(t, out.String(), "It's your turn, Ferris!")

	chosen, err := human.ChooseColor(game.State{})
	require.NoError(t, err)
	require.Equal(t, color.Blue, chosen)

	human.Notify(event.Event{Type: event.PlayerPassed, PlayerName: "Zoe"})
	require.Contains(t, out.String(), "Zoe passed!")

	human.Notify(event.Event{Type: event.TurnStarted, PlayerName: "Ferris", Own: true})
	require.NotContains(t, out.String(), "It's Ferris's turn!")
	human.Notify(event.Event{Type: event.TurnStarted, PlayerName: "Ferris"})
	require.Contains(t, out.String(), "It's Ferris's turn!")
}

func TestCreatePlayers(t *testing.T) {
	terminal := ui.NewTerminal(strings.NewReader(""), &bytes.Buffer{})
	players := player.CreatePlayers(4, "Ferris", terminal, rand.New(rand.NewSource(2)))
	require.Len(t, players, 4)
	require.Equal(t, "Ferris", players[0].Name())

	names := map[string]bool{}
	for _, p := range players {
		names[p.Name()] = true
	}
	require.Len(t, names, 4)
}

// Uncolored wilds can only be played on a wild top, so once the opening card
// is not a wild they stay in their hands and most bot games stall until the
// turn limit. Either way no card may be lost or duplicated.
func TestBotsPlayUntilTheEndOrTheLimit(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := game.New(4, rng)
		require.NoError(t, err)
		m, err := game.NewMatch(g, player.CreateBots(4, rng), game.WithTurnLimit(500))
		require.NoError(t, err)

		result, err := m.Run()
		if err != nil {
			require.ErrorIs(t, err, consts.ErrorsTurnLimit, "seed %d", seed)
			require.False(t, g.Ended())
			require.Equal(t, -1, result.Loser)
			require.Equal(t, 500, result.Turns)
		} else {
			require.True(t, g.Ended())
			require.Len(t, result.Finishers, 3)
			require.NotContains(t, result.Finishers, result.Loser)
		}

		total := g.Deck().Len() + g.Pile().Size()
		for _, id := range g.SeatOrder() {
			total += len(g.PlayerCards(id))
		}
		require.Equal(t, 108, total, "every card is somewhere")
	}
}
