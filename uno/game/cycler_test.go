package game_test

import (
	"fmt"
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler([]int{0, 1, 2, 3})
	assert.Equal(t, 0, cycler.Current())
	cycler.Next(nil)
	assert.Equal(t, 1, cycler.Current())
	cycler.Next(nil)
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, 1, cycler.Current())
	assert.Equal(t, 2, cycler.Position())
	cycler.Next(nil)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next(nil)
	assert.Equal(t, 3, cycler.Current())
}

func TestForEach(t *testing.T) {
	cycler := game.NewCycler([]int{0, 1, 2, 3})

	var results []string
	cycler.ForEach(func(element int) {
		results = append(results, fmt.Sprintf("called for %d", element))
	})

	require.Equal(t, []string{
		"called for 0",
		"called for 1",
		"called for 2",
		"called for 3",
	}, results)
}

func TestNext(t *testing.T) {
	t.Run("wraps_around", func(t *testing.T) {
		cycler := game.NewCycler([]int{0, 1, 2, 3})
		assert.Equal(t, 1, cycler.Next(nil))
		assert.Equal(t, 2, cycler.Next(nil))
		assert.Equal(t, 3, cycler.Next(nil))
		assert.Equal(t, 0, cycler.Next(nil))
	})

	t.Run("skips_elements", func(t *testing.T) {
		cycler := game.NewCycler([]int{0, 1, 2, 3})
		skipped := map[int]bool{1: true, 2: true}
		skip := func(id int) bool { return skipped[id] }
		assert.Equal(t, 3, cycler.Next(skip))
		assert.Equal(t, 0, cycler.Next(skip))
	})

	t.Run("stops_after_one_lap_when_everything_is_skipped", func(t *testing.T) {
		cycler := game.NewCycler([]int{0, 1, 2})
		cycler.Next(nil)
		assert.Equal(t, 1, cycler.Next(func(int) bool { return true }))
		assert.Equal(t, 1, cycler.Position())
	})
}

func TestReverse(t *testing.T) {
	t.Run("keeps_the_pointer", func(t *testing.T) {
		cycler := game.NewCycler([]int{0, 1, 2, 3})
		assert.Equal(t, 1, cycler.Next(nil))
		cycler.Reverse()
		assert.Equal(t, 2, cycler.Current())
		assert.Equal(t, 1, cycler.Next(nil))
		assert.Equal(t, 0, cycler.Next(nil))
		cycler.Reverse()
		assert.Equal(t, 3, cycler.Current())
		assert.Equal(t, 3, cycler.Position())
	})

	t.Run("two_elements_hand_the_turn_back", func(t *testing.T) {
		cycler := game.NewCycler([]int{0, 1})
		cycler.Reverse()
		assert.Equal(t, 1, cycler.Current())
		assert.Equal(t, 0, cycler.Next(nil))
	})
}
