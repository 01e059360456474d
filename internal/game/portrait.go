// internal/game/portrait.go
//
// ASCII rendering of the gallows figure. The drawing grows monotonically
// with lives lost: head at 1, torso detail at 1/2/3, leg detail at 1/4/5.

package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Portrait renders the gallows for the current number of lives lost,
// followed by a lives-remaining line and, when there are any misses,
// an alphabetical wrong-guesses line.
func (s *Session) Portrait() string {
	lost := s.MaxLives - s.Lives

	head := "  |   "
	if lost >= 1 {
		head = "  |  O"
	}
	lines := []string{
		"  ____",
		"  |  |",
		head,
		torsoLine(lost),
		legsLine(lost),
		"__|__",
	}

	out := strings.Join(lines, "\n")
	out += fmt.Sprintf("\n\nLives remaining: %d", s.Lives)
	if wrong := s.wrongGuesses(); len(wrong) > 0 {
		out += fmt.Sprintf("\nWrong guesses: %s", strings.Join(wrong, ", "))
	}
	return out
}

func torsoLine(lost int) string {
	switch {
	case lost >= 3:
		return `  | /|\`
	case lost >= 2:
		return "  | /|"
	case lost >= 1:
		return "  |  |"
	default:
		return "  |   "
	}
}

func legsLine(lost int) string {
	switch {
	case lost >= 5:
		return `  | / \`
	case lost >= 4:
		return "  | /"
	case lost >= 1:
		return "  |"
	default:
		return "  |   "
	}
}

// wrongGuesses returns the guessed letters absent from the target, sorted.
func (s *Session) wrongGuesses() []string {
	wrong := lo.FilterMap(lo.Keys(s.guessed), func(r rune, _ int) (string, bool) {
		return string(r), !strings.ContainsRune(s.Target, r)
	})
	slices.Sort(wrong)
	return wrong
}
