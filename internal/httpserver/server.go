// internal/httpserver/server.go
//
// HTTP presentation layer for the hangman engine.
// Responsibilities:
//   - Router + middleware (JSON, request IDs, timeouts, panic recovery,
//     per-IP rate limiting).
//   - Diagnostics: "/", "/health", "/metrics", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/daily, POST /game/guess,
//     POST /game/reset, GET /game/state.
//
// Notes:
//   - All rules live in internal/game; handlers only drive Session methods.
//   - Sessions are held in the in-memory store and die with the process.
//   - The timer contract is honored here: a guess is only forwarded to the
//     engine while the round is still live.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"hangman/internal/daily"
	"hangman/internal/game"
	"hangman/internal/store"
	"hangman/internal/words"
)

// Server bundles the router, the in-memory session store, and the salt
// used for deterministic daily target selection.
type Server struct {
	r     *chi.Mux
	store store.Store
	salt  string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		store: st,
		salt:  getEnv("DAILY_SALT", "local_dev_salt"),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(rateLimitFromEnv())              // per-IP token bucket

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman","endpoints":["/health","POST /game/new","POST /game/daily","POST /game/guess","POST /game/reset","GET /game/state"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		b, p := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"words": b, "phrases": p})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/daily", s.handleDailyGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/game/reset", s.handleReset)
	s.r.Get("/game/state", s.handleState)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// sessionView is the render of a round shared by every game endpoint.
type sessionView struct {
	GameID           string   `json:"gameId"`
	Level            string   `json:"level"`
	Display          string   `json:"display"`
	Portrait         string   `json:"portrait"`
	Status           string   `json:"status"`
	Lives            int      `json:"lives"`
	RemainingSeconds int      `json:"remainingSeconds"`
	State            string   `json:"state"` // "playing" | "won" | "lost"
	Guessed          []string `json:"guessed"`
}

func viewOf(s *game.Session) sessionView {
	return sessionView{
		GameID:           s.ID,
		Level:            string(s.Level),
		Display:          s.DisplayString(),
		Portrait:         s.Portrait(),
		Status:           s.StatusMessage(),
		Lives:            s.Lives,
		RemainingSeconds: int(s.Remaining().Seconds()),
		State:            s.State(),
		Guessed:          s.Guessed(),
	}
}

// newGameReq is the payload for POST /game/new and POST /game/daily.
type newGameReq struct {
	Level  string `json:"level"`  // "basic" (default) | "intermediate"
	Target string `json:"target"` // optional fixed answer (testing)
}

// parseLevel maps the request field to a tier, defaulting to basic.
func parseLevel(v string) (game.Level, bool) {
	switch v {
	case "", string(game.LevelBasic):
		return game.LevelBasic, true
	case string(game.LevelIntermediate):
		return game.LevelIntermediate, true
	}
	return game.LevelBasic, false
}

// handleNewGame creates a session with a random target for the tier and
// starts its timer.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	level, ok := parseLevel(req.Level)
	if !ok {
		http.Error(w, `{"error":"invalid_level"}`, http.StatusBadRequest)
		return
	}
	candidates := words.Candidates(level)
	if req.Target != "" {
		// Fixed-answer game; the pool is the single requested target.
		candidates = []string{req.Target}
	}
	s.startSession(w, r, level, candidates)
}

// handleDailyGame creates a session whose target is the tier's word of the
// day: the same date and salt always pick the same candidate.
func (s *Server) handleDailyGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	level, ok := parseLevel(req.Level)
	if !ok {
		http.Error(w, `{"error":"invalid_level"}`, http.StatusBadRequest)
		return
	}
	candidates := words.Candidates(level)
	if len(candidates) > 0 {
		idx := daily.TargetIndex(time.Now(), s.salt, len(candidates))
		candidates = candidates[idx : idx+1]
	}
	s.startSession(w, r, level, candidates)
}

// startSession constructs, stores, and renders a fresh round.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, level game.Level, candidates []string) {
	g, err := game.New(level, candidates)
	if err != nil {
		log.Error().Err(err).Str("level", string(level)).Msg("create game")
		http.Error(w, `{"error":"empty_dictionary"}`, http.StatusInternalServerError)
		return
	}
	g.ID = uuid.NewString()
	g.StartTimer()
	if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	gamesStarted.WithLabelValues(string(level)).Inc()
	log.Info().Str("gameId", g.ID).Str("level", string(level)).Msg("game created")
	_ = json.NewEncoder(w).Encode(viewOf(g))
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}
type guessRes struct {
	Hit bool `json:"hit"`
	sessionView
}

// handleGuess forwards one letter to the engine. The round's timer and
// terminal state are checked first, per the engine's contract that Guess
// itself never consults the clock.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if g.GameOver() {
		http.Error(w, `{"error":"game_over","status":`+jsonString(g.StatusMessage())+`}`, http.StatusConflict)
		return
	}

	hit, err := g.Guess(req.Letter)
	switch {
	case errors.Is(err, game.ErrInvalidInput):
		guessesTotal.WithLabelValues("rejected").Inc()
		http.Error(w, `{"error":"invalid_input"}`, http.StatusBadRequest)
		return
	case errors.Is(err, game.ErrDuplicateGuess):
		guessesTotal.WithLabelValues("rejected").Inc()
		http.Error(w, `{"error":"duplicate_guess"}`, http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, `{"error":"guess_failed"}`, http.StatusInternalServerError)
		return
	}

	if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	if hit {
		guessesTotal.WithLabelValues("hit").Inc()
	} else {
		guessesTotal.WithLabelValues("miss").Inc()
	}
	if st := g.State(); st != "playing" {
		gamesFinished.WithLabelValues(st).Inc()
		log.Info().Str("gameId", g.ID).Str("outcome", st).Str("target", g.Target).Msg("game finished")
	}

	_ = json.NewEncoder(w).Encode(guessRes{Hit: hit, sessionView: viewOf(g)})
}

// resetReq payload for POST /game/reset.
type resetReq struct {
	GameID string `json:"gameId"`
}

// handleReset starts a fresh round for an existing session: new random
// target from the same tier, full lives, cleared guesses, timer restarted.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	g.Reset()
	g.StartTimer()
	if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	gamesStarted.WithLabelValues(string(g.Level)).Inc()
	_ = json.NewEncoder(w).Encode(viewOf(g))
}

// handleState renders the current round without mutating it.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(g))
}

// ------------------------------- small util --------------------------------

// jsonString marshals a string as a JSON value for hand-built error bodies.
func jsonString(v string) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
