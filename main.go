package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hangman/internal/httpserver"
	"hangman/internal/store"
	"hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	serve := flag.Bool("serve", false, "run the HTTP presentation layer instead of the terminal game")
	flag.Parse()

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	if *serve {
		mem := store.NewMemoryStore()
		srv := httpserver.New(mem)
		port := getEnv("PORT", "5175")
		log.Info().Str("port", port).Msg("starting hangman server")
		if err := srv.Start(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	runTerminal(os.Stdin, os.Stdout)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
