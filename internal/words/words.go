// internal/words/words.go
//
// Dictionary source for the game engine.
//
// Responsibilities:
//   - Load word and phrase lists from environment-provided files or fall
//     back to embedded defaults, so a tier is never empty.
//   - Normalize candidates to lowercase, one per line.
//   - Supply per-tier candidate lists via Candidates.
//
// Tiers:
//   - "basic":        single words (letters only).
//   - "intermediate": multi-word phrases (letters and spaces).
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set and readable, load basic candidates from it;
//      otherwise use the embedded defaults from `default_words.txt`.
//   2. If PHRASES_FILE is set and readable, load intermediate candidates
//      from it; otherwise use the embedded defaults from
//      `default_phrases.txt`.
//   A missing or unreadable file is not fatal: the embedded fallback is
//   substituted and a warning is logged.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//   PHRASES_FILE=/path/to/phrases.txt
//
// Constraints:
//   • Basic candidates are single lowercase a–z tokens.
//   • Intermediate candidates may additionally contain single spaces.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"hangman/internal/game"
)

// --- embedded defaults (keep both tiers non-empty with no files configured) ---

//go:embed default_words.txt
var embeddedWords string

//go:embed default_phrases.txt
var embeddedPhrases string

var (
	initOnce   sync.Once
	basic      []string // single-word candidates
	phrases    []string // multi-word candidates
	initialErr error
)

// Init loads both tiers exactly once.
// Returns an error only if a tier ends up empty, which the embedded
// defaults are there to prevent.
func Init() error {
	initOnce.Do(func() {
		basic = loadTier(os.Getenv("WORDS_FILE"), embeddedWords, false)
		phrases = loadTier(os.Getenv("PHRASES_FILE"), embeddedPhrases, true)

		if len(basic) == 0 || len(phrases) == 0 {
			initialErr = errors.New("words: a candidate list is empty")
		}
	})
	return initialErr
}

// loadTier reads one tier's list from path, falling back to the embedded
// defaults when path is unset or unreadable.
func loadTier(path, fallback string, allowSpaces bool) []string {
	if path != "" {
		list, err := readCandidateFile(path, allowSpaces)
		if err == nil {
			return list
		}
		log.Warn().Err(err).Str("path", path).Msg("word file unavailable, using embedded defaults")
	}
	return normalizeLines(fallback, allowSpaces)
}

// readCandidateFile loads one candidate per line from a file,
// lowercases, trims, and keeps only well-formed entries.
func readCandidateFile(path string, allowSpaces bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalize(sc.Text(), allowSpaces); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into a candidate list.
func normalizeLines(s string, allowSpaces bool) []string {
	return lo.FilterMap(strings.Split(s, "\n"), func(line string, _ int) (string, bool) {
		return normalize(line, allowSpaces)
	})
}

// normalize case-folds one raw line and reports whether it is a valid
// candidate for the tier. Comment and blank lines are dropped.
func normalize(line string, allowSpaces bool) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	for _, r := range w {
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r == ' ' && allowSpaces {
			continue
		}
		return "", false
	}
	return w, true
}

// Candidates returns the candidate list for a tier. The returned slice is
// shared; callers must not mutate it.
func Candidates(level game.Level) []string {
	if level == game.LevelIntermediate {
		return phrases
	}
	return basic
}

// Stats returns counts of loaded candidates: (basic, intermediate).
func Stats() (basicCount int, intermediateCount int) {
	return len(basic), len(phrases)
}
