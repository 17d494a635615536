// Command tstbench times insert and search on a ternary search tree built from
// a word list, across tree sizes and insertion orders.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/sarthakjha889/go-ternary-search-tree/internal/bench"
	"github.com/sarthakjha889/go-ternary-search-tree/internal/config"
	"github.com/sarthakjha889/go-ternary-search-tree/internal/wordlist"
)

func main() {
	flags := pflag.NewFlagSet("tstbench", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "path to a YAML config file")
	flags.StringP("words", "w", "", "word list, one word per line")
	flags.Bool("keep-empty", false, "load blank lines as the empty string")
	flags.IntSlice("sizes", nil, "tree sizes to measure")
	flags.IntP("runs", "n", 0, "repetitions averaged per timing")
	flags.Int("probe", 0, "words inserted or searched per timing")
	flags.Int("hold-out", 0, "words kept out of the tree in the set comparison")
	flags.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flags.String("csv", "", "also write results as CSV to this file")
	flags.String("lang", "", "language used to format numbers")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tstbench: %v\n", err)
		os.Exit(2)
	}
	setupLog(cfg.Log)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
}

func setupLog(c config.LogConfig) {
	zerolog.TimeFieldFormat = "2006-01-02 15:04:05.000"
	console := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: c.NoColor, TimeFormat: zerolog.TimeFieldFormat}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		log.Warn().Str("level", c.Level).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func run(cfg *config.Config) error {
	words, err := wordlist.Load(cfg.Words.Path, cfg.Words.KeepEmpty)
	if err != nil {
		return err
	}
	log.Info().Str("path", cfg.Words.Path).Int("words", len(words)).Msg("word list loaded")

	seed := cfg.Bench.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Ints("sizes", cfg.Bench.Sizes).Int("runs", cfg.Bench.Runs).Msg("starting benchmark")

	opts := bench.Options{
		Sizes:     cfg.Bench.Sizes,
		Runs:      cfg.Bench.Runs,
		ProbeSize: cfg.Bench.ProbeSize,
		HoldOut:   cfg.Bench.HoldOut,
	}
	runner, err := bench.NewRunner(words, opts, rand.New(rand.NewSource(seed)), log.Logger)
	if err != nil {
		return err
	}
	start := time.Now()
	rep, err := runner.Run()
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("benchmark finished")

	lang, err := language.Parse(cfg.Output.Language)
	if err != nil {
		log.Warn().Err(err).Str("language", cfg.Output.Language).Msg("falling back to English")
		lang = language.English
	}
	if err := bench.WriteText(os.Stdout, rep, lang); err != nil {
		return err
	}

	if cfg.Output.CSV == "" {
		return nil
	}
	f, err := os.Create(cfg.Output.CSV)
	if err != nil {
		return errors.Wrap(err, "create csv output")
	}
	if err := bench.WriteCSV(f, rep); err != nil {
		f.Close()
		return err
	}
	log.Info().Str("path", cfg.Output.CSV).Msg("csv written")
	return errors.Wrap(f.Close(), "close csv output")
}
