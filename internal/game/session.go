// internal/game/session.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Create rounds by picking a uniform random target from a dictionary tier.
//   - Validate and apply single-letter guesses (hit reveals, miss costs a life).
//   - Track state transitions: playing → won/lost, plus a polled round timer.
//   - Render the revealed pattern and the player-facing status line.
//
// Notes:
//   - Candidate lists are provided by the caller (see the words package);
//     the engine never touches files or the network.
//   - Guess does not consult the timer. Time expiry is a derived condition
//     the presentation loop must check before forwarding input, so a guess
//     accepted after the deadline still mutates state.
package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/samber/lo"
)

// New constructs a round for the given tier, drawing the target uniformly
// at random from candidates. Candidates must be pre-normalized to lowercase
// (one word for the basic tier, a phrase for the intermediate tier).
// Returns ErrEmptyDictionary if there is nothing to draw from.
func New(level Level, candidates []string) (*Session, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyDictionary
	}
	s := &Session{
		Level:    level,
		MaxLives: MaxLives,
		dict:     candidates,
		now:      time.Now,
	}
	s.Reset()
	return s, nil
}

// Reset reinitializes the round exactly as construction does: a fresh random
// target from the same tier's candidates, full lives, cleared guesses, timer
// unset. In-progress state is discarded wholesale.
func (s *Session) Reset() {
	s.Lives = s.MaxLives
	s.guessed = make(map[rune]bool)
	s.Over = false
	s.Won = false
	s.startedAt = time.Time{}
	s.selectTarget()
}

// selectTarget picks the answer and builds the revealed pattern: letters are
// masked, everything else (spaces, punctuation) passes through pre-revealed.
func (s *Session) selectTarget() {
	idx := 0
	if n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.dict)))); err == nil {
		idx = int(n.Int64())
	}
	s.Target = s.dict[idx]
	target := []rune(s.Target)
	s.pattern = make([]rune, len(target))
	for i, r := range target {
		if unicode.IsLetter(r) {
			s.pattern[i] = maskRune
		} else {
			s.pattern[i] = r
		}
	}
}

// StartTimer records the current time as the start of the round's window.
// Each call resets the clock.
func (s *Session) StartTimer() {
	s.startedAt = s.now()
}

// Remaining reports how much of the round's window is left, clamped at 0.
// Before StartTimer is called it reports the full limit. Pure query.
func (s *Session) Remaining() time.Duration {
	if s.startedAt.IsZero() {
		return TimeLimit
	}
	rem := TimeLimit - s.now().Sub(s.startedAt)
	if rem < 0 {
		return 0
	}
	return rem
}

// TimeUp reports whether the round's window has elapsed.
func (s *Session) TimeUp() bool {
	return s.Remaining() <= 0
}

// Guess applies a single-letter guess and reports whether it was a hit.
//
// Validation rules (checked before any mutation):
//   - Input must be exactly one alphabetic character → ErrInvalidInput.
//   - The letter must not have been guessed this round → ErrDuplicateGuess.
//
// A hit reveals the letter at every matching position; revealing the last
// masked position wins (and ends) the round. A miss costs one life; losing
// the last life ends the round.
func (s *Session) Guess(input string) (bool, error) {
	runes := []rune(input)
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return false, ErrInvalidInput
	}
	letter := unicode.ToLower(runes[0])

	if s.guessed[letter] {
		return false, ErrDuplicateGuess
	}
	s.guessed[letter] = true

	if strings.ContainsRune(s.Target, letter) {
		for i, r := range []rune(s.Target) {
			if r == letter {
				s.pattern[i] = letter
			}
		}
		if s.IsWon() {
			s.Won = true
			s.Over = true
		}
		return true, nil
	}

	s.Lives--
	if s.Lives <= 0 {
		s.Over = true
	}
	return false, nil
}

// IsWon reports whether every letter has been revealed. Derived from the
// pattern itself, not the Won flag.
func (s *Session) IsWon() bool {
	return !slices.Contains(s.pattern, maskRune)
}

// GameOver reports whether the round has ended for any reason: a finishing
// guess, time expiry, or life exhaustion. Expiry alone is sufficient even
// though no guess ever set the Over flag.
func (s *Session) GameOver() bool {
	return s.Over || s.TimeUp() || s.Lives <= 0
}

// State reports a coarse string representation of the round's state.
func (s *Session) State() string {
	if s.GameOver() {
		if s.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// DisplayString renders the revealed pattern with single spaces between
// positions, e.g. "h _ _ _ _   _ _ _ _ _" for "hello world" after one hit.
func (s *Session) DisplayString() string {
	parts := lo.Map(s.pattern, func(r rune, _ int) string { return string(r) })
	return strings.Join(parts, " ")
}

// StatusMessage reports one line for the player, in precedence order:
// victory, time expired, out of lives, otherwise the seconds left.
func (s *Session) StatusMessage() string {
	switch {
	case s.Won:
		return fmt.Sprintf("Congratulations! You guessed the word: '%s'", s.Target)
	case s.TimeUp():
		return fmt.Sprintf("Time's up! The answer was: '%s'", s.Target)
	case s.Lives <= 0:
		return fmt.Sprintf("Game over! The answer was: '%s'", s.Target)
	default:
		return fmt.Sprintf("Time remaining: %d seconds", int(s.Remaining().Seconds()))
	}
}

// Guessed returns the letters guessed so far, sorted, for rendering.
func (s *Session) Guessed() []string {
	letters := lo.Map(lo.Keys(s.guessed), func(r rune, _ int) string { return string(r) })
	slices.Sort(letters)
	return letters
}
