package ui

import (
	"strconv"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

// PromptString returns the first non-empty line. It fails once input ends.
func (t *Terminal) PromptString(message string) (string, error) {
	for {
		t.Println(message)
		input, err := t.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			t.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func (t *Terminal) PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := t.PromptString(message)
		if err != nil {
			return 0, err
		}
		number, err := strconv.Atoi(input)
		if err != nil {
			t.Println("Invalid number input")
			continue
		}
		if number < minimum || number > maximum {
			t.Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return number, nil
	}
}

// PromptCardSelection lists the hand by index. The answer is not range
// checked here; the table rejects bad indices itself.
func (t *Terminal) PromptCardSelection(hand []card.Card) (game.Selection, error) {
	cardSelectionMessage := msg.Message.CardMenu(hand)
	for {
		input, err := t.PromptString(cardSelectionMessage)
		if err != nil {
			return game.Selection{}, err
		}
		selection, err := game.ParseSelection(input)
		if err != nil {
			t.Print(msg.Message.NoCardAssigned(input))
			continue
		}
		return selection, nil
	}
}

func (t *Terminal) PromptColor() (color.Color, error) {
	colorMessage := msg.Message.ColorMenu()
	for {
		colorName, err := t.PromptString(colorMessage)
		if err != nil {
			return color.None, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			t.Print(msg.Message.UnknownColor(colorName))
			continue
		}
		return chosenColor, nil
	}
}
