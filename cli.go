// cli.go
//
// Terminal presentation layer: difficulty menu, prompt loop, rendering, and
// the replay prompt. The loop owns the timer contract: it restarts the round
// clock before every prompt and checks TimeUp before forwarding input, since
// the engine's Guess never consults the clock itself.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"hangman/internal/game"
	"hangman/internal/words"
)

// runTerminal drives one interactive game until the player quits or input
// ends. Game text goes to out; diagnostics go through zerolog (stderr).
func runTerminal(in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)

	fmt.Fprintln(out, "Welcome to Hangman Game!")
	fmt.Fprintln(out, "Choose difficulty level:")
	fmt.Fprintln(out, "1. Basic (single words)")
	fmt.Fprintln(out, "2. Intermediate (phrases)")

	level, ok := chooseLevel(sc, out)
	if !ok {
		fmt.Fprintln(out, "\nGoodbye!")
		return
	}

	g, err := game.New(level, words.Candidates(level))
	if err != nil {
		log.Fatal().Err(err).Str("level", string(level)).Msg("failed to start game")
	}

	for {
		g.StartTimer()
		fmt.Fprintf(out, "\n%s\n", g.Portrait())
		fmt.Fprintf(out, "Word: %s\n", g.DisplayString())
		fmt.Fprintln(out, g.StatusMessage())

		if g.GameOver() {
			fmt.Fprint(out, "\nWould you like to play again? (y/n): ")
			if !sc.Scan() || strings.ToLower(strings.TrimSpace(sc.Text())) != "y" {
				fmt.Fprintln(out, "Thanks for playing!")
				return
			}
			g.Reset()
			continue
		}

		fmt.Fprint(out, "Enter a letter: ")
		if !sc.Scan() {
			fmt.Fprintln(out, "\nThanks for playing!")
			return
		}
		guess := strings.TrimSpace(sc.Text())

		// Input arriving after the deadline is not forwarded to the engine.
		if g.TimeUp() {
			fmt.Fprintln(out, g.StatusMessage())
			continue
		}

		hit, err := g.Guess(guess)
		if err != nil {
			fmt.Fprintf(out, "Invalid input: %s\n", guessErrText(err, guess))
			continue
		}
		if hit {
			fmt.Fprintf(out, "Good guess! '%s' is in the word.\n", guess)
		} else {
			fmt.Fprintf(out, "Sorry, '%s' is not in the word.\n", guess)
		}
	}
}

// chooseLevel re-prompts until the player picks a tier. Returns false when
// input ends before a choice is made.
func chooseLevel(sc *bufio.Scanner, out io.Writer) (game.Level, bool) {
	for {
		fmt.Fprint(out, "Enter your choice (1 or 2): ")
		if !sc.Scan() {
			return "", false
		}
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			return game.LevelBasic, true
		case "2":
			return game.LevelIntermediate, true
		}
		fmt.Fprintln(out, "Please enter 1 or 2")
	}
}

// guessErrText phrases a rejected guess for the player.
func guessErrText(err error, guess string) string {
	if errors.Is(err, game.ErrDuplicateGuess) {
		return fmt.Sprintf("letter '%s' has already been guessed", strings.ToLower(guess))
	}
	return err.Error()
}
