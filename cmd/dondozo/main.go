package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/nathanieltooley/dondozo/battle"
	"github.com/nathanieltooley/dondozo/internal/errorutils"
	"github.com/nathanieltooley/dondozo/internal/global"
	"github.com/nathanieltooley/dondozo/internal/rendering"
	"github.com/nathanieltooley/dondozo/internal/scenario"
	"github.com/rs/zerolog/log"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <scenario.yaml>\n\nResolves one turn of a doubles battle and prints every branch.\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", global.DefaultConfigLocation(), "Path to the config file, created with defaults when missing")
	branchOnDamage := flag.Bool("branch-on-damage", false, "Split branches when a hit may or may not knock out")
	useLastUsedMove := flag.Bool("last-used-move", false, "Track each slot's last used move")
	debug := flag.Bool("debug", false, "Log every step of the resolution")
	initPath := flag.String("init", "", "Write an example scenario to this path and exit")
	flag.Usage = usage
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	config, err := global.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %s\n", err)
		os.Exit(1)
	}
	if explicit["debug"] {
		config.Debug = *debug
	}

	if err := global.Init(config, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %s\n", err)
		os.Exit(1)
	}

	if *initPath != "" {
		if err := scenario.Save(*initPath, scenario.Example()); err != nil {
			log.Fatal().Err(err).Msg("Failed to write example scenario")
		}
		log.Info().Str("path", *initPath).Msg("Wrote example scenario")
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	runID := errorutils.Must(uuid.NewRandom())
	runLogger := log.With().Str("run", runID.String()).Logger()

	s, err := scenario.Load(flag.Arg(0))
	if err != nil {
		runLogger.Fatal().Err(err).Msg("Failed to load scenario")
	}

	state, err := s.State()
	if err != nil {
		runLogger.Fatal().Err(err).Msg("Invalid scenario")
	}
	choices, err := s.MoveChoices()
	if err != nil {
		runLogger.Fatal().Err(err).Msg("Invalid choices")
	}

	branch := s.Options.BranchOnDamage || config.BranchOnDamage
	if explicit["branch-on-damage"] {
		branch = *branchOnDamage
	}
	state.UseLastUsedMove = state.UseLastUsedMove || config.UseLastUsedMove
	if explicit["last-used-move"] {
		state.UseLastUsedMove = *useLastUsedMove
	}

	runLogger.Info().
		Str("scenario", flag.Arg(0)).
		Bool("branchOnDamage", branch).
		Bool("useLastUsedMove", state.UseLastUsedMove).
		Msg("Resolving turn")

	before := state
	results := battle.GenerateInstructions(&state, choices[0], choices[1], choices[2], choices[3], branch)
	if state != before {
		runLogger.Fatal().Msg("State was not restored after generating instructions")
	}

	runLogger.Info().Int("branches", len(results)).Msg("Resolved turn")

	isTerm, width := rendering.Terminal(os.Stdout)
	renderer := rendering.Renderer{Color: isTerm && config.Color, Width: width}
	fmt.Println(renderer.Branches(state, results))
}
