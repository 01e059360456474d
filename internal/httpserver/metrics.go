// internal/httpserver/metrics.go
//
// Prometheus counters for the HTTP presentation layer, served on /metrics.

package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hangman_games_started_total",
		Help: "Rounds started, including resets, by difficulty level.",
	}, []string{"level"})

	guessesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hangman_guesses_total",
		Help: "Guesses processed, by result (hit, miss, rejected).",
	}, []string{"result"})

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hangman_games_finished_total",
		Help: "Rounds finished, by outcome (won, lost).",
	}, []string{"outcome"})
)
