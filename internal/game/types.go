// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Level: difficulty tier (basic single words vs intermediate phrases).
//   - Session: state for a single in-progress or finished round.
//   - Sentinel errors returned by New and Guess.

package game

import (
	"errors"
	"time"
)

// Level selects which dictionary tier a session draws its target from.
// Possible values:
//   - "basic":        single words.
//   - "intermediate": multi-word phrases.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
)

const (
	// MaxLives is the number of wrong guesses a round survives.
	MaxLives = 6
	// TimeLimit bounds a round. Expiry is polled via TimeUp, never pushed.
	TimeLimit = 15 * time.Second
)

// maskRune hides unguessed letters in the revealed pattern.
const maskRune = '_'

// Rejected operations. These are expected, recoverable conditions the
// presentation layer reports back to the player; none of them mutate state.
var (
	ErrInvalidInput    = errors.New("single letter required")
	ErrDuplicateGuess  = errors.New("letter already guessed")
	ErrEmptyDictionary = errors.New("dictionary has no candidates")
)

// Session holds the state of one hangman round.
// All rule logic lives here; presentation layers only call its methods.
type Session struct {
	ID       string // identifier assigned by the owning presentation layer
	Level    Level  // difficulty tier, fixed at construction
	MaxLives int    // wrong guesses allowed per round
	Lives    int    // wrong guesses left; never negative
	Target   string // the answer (always lowercase), immutable per round
	Over     bool   // set by a winning/losing guess; time expiry is derived
	Won      bool   // true implies Over

	pattern   []rune           // one rune per Target rune; letters start masked
	guessed   map[rune]bool    // letters guessed this round
	dict      []string         // candidate pool, kept for Reset
	startedAt time.Time        // zero until StartTimer
	now       func() time.Time // clock, swapped out in tests
}
