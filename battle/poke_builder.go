package battle

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var builderLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "pokemon-builder").Logger()
	return &logger
}

// Stat values used for species missing from the data tables
const DEFAULT_STAT = 100

type PokemonBuilder struct {
	poke Pokemon
}

// NewPokeBuilder starts a level 100 pokemon of the given species.
// Stats are derived from the species' base stats with perfect ivs and no evs.
func NewPokeBuilder(species string) *PokemonBuilder {
	poke := Pokemon{
		ID:       species,
		Level:    100,
		Types:    [2]PokemonType{TYPE_NORMAL, TYPE_TYPELESS},
		TeraType: TYPE_NORMAL,
	}
	for i := range poke.Moves {
		poke.Moves[i] = Move{ID: MOVE_NONE}
	}

	pb := &PokemonBuilder{poke}
	data := GlobalData.GetSpecies(species)
	if data == nil {
		builderLogger().Debug().Str("species", species).Msg("Unknown species, using default stats")
		return pb.SetStats(DEFAULT_STAT, DEFAULT_STAT, DEFAULT_STAT, DEFAULT_STAT, DEFAULT_STAT, DEFAULT_STAT)
	}

	pb.poke.Types = data.Types
	pb.poke.TeraType = data.Types[0]
	pb.recalcStats(data.BaseStats)

	return pb
}

func hpStat(base int, level int) int {
	return int(math.Floor(float64((2*base+31)*level)/100)) + level + 10
}

func (pb *PokemonBuilder) recalcStats(base BaseStats) {
	level := pb.poke.Level
	pb.poke.MaxHP = hpStat(base.HP, level)
	pb.poke.HP = pb.poke.MaxHP
	pb.poke.Attack = formeStat(base.Attack, level)
	pb.poke.Defense = formeStat(base.Defense, level)
	pb.poke.SpecialAttack = formeStat(base.SpecialAttack, level)
	pb.poke.SpecialDefense = formeStat(base.SpecialDefense, level)
	pb.poke.Speed = formeStat(base.Speed, level)

	builderLogger().Debug().
		Int("HP", pb.poke.MaxHP).
		Int("ATTACK", pb.poke.Attack).
		Int("DEF", pb.poke.Defense).
		Int("SPATTACK", pb.poke.SpecialAttack).
		Int("SPDEF", pb.poke.SpecialDefense).
		Int("SPEED", pb.poke.Speed).Msg("Calculated stats")
}

// SetLevel recalculates species stats for the new level. Stats set by hand are overwritten.
func (pb *PokemonBuilder) SetLevel(level int) *PokemonBuilder {
	pb.poke.Level = level
	if data := GlobalData.GetSpecies(pb.poke.ID); data != nil {
		pb.recalcStats(data.BaseStats)
	}

	return pb
}

// SetStats sets raw stat values, leaving the pokemon at full hp
func (pb *PokemonBuilder) SetStats(hp, attack, defense, spAttack, spDefense, speed int) *PokemonBuilder {
	pb.poke.MaxHP = hp
	pb.poke.HP = hp
	pb.poke.Attack = attack
	pb.poke.Defense = defense
	pb.poke.SpecialAttack = spAttack
	pb.poke.SpecialDefense = spDefense
	pb.poke.Speed = speed

	return pb
}

func (pb *PokemonBuilder) SetHP(hp int) *PokemonBuilder {
	pb.poke.HP = min(max(hp, 0), pb.poke.MaxHP)
	return pb
}

func (pb *PokemonBuilder) SetSpeed(speed int) *PokemonBuilder {
	pb.poke.Speed = speed
	return pb
}

func (pb *PokemonBuilder) SetTypes(first PokemonType, second PokemonType) *PokemonBuilder {
	pb.poke.Types = [2]PokemonType{first, second}
	return pb
}

// SetAbility sets both the current ability and the one restored on switch out
func (pb *PokemonBuilder) SetAbility(ability string) *PokemonBuilder {
	pb.poke.Ability = ability
	pb.poke.BaseAbility = ability
	return pb
}

func (pb *PokemonBuilder) SetItem(item string) *PokemonBuilder {
	pb.poke.Item = item
	return pb
}

func (pb *PokemonBuilder) SetStatus(status Status) *PokemonBuilder {
	pb.poke.Status = status
	return pb
}

func (pb *PokemonBuilder) SetTeraType(teraType PokemonType) *PokemonBuilder {
	pb.poke.TeraType = teraType
	return pb
}

// SetMoves fills move slots in order. Extra ids are ignored, missing slots stay "none".
func (pb *PokemonBuilder) SetMoves(ids ...string) *PokemonBuilder {
	unknown := lo.Filter(ids, func(id string, _ int) bool {
		return GlobalData.GetMove(id) == nil
	})
	if len(unknown) > 0 {
		builderLogger().Warn().Strs("Moves", unknown).Msg("Moves missing from the data tables will do nothing")
	}

	for i := range pb.poke.Moves {
		id := MOVE_NONE
		if i < len(ids) {
			id = ids[i]
		}
		pb.poke.Moves[i] = Move{ID: id}
	}

	builderLogger().Debug().Strs("Moves", ids).Msg("Setting moves")

	return pb
}

func (pb *PokemonBuilder) Build() Pokemon {
	pb.poke.BaseTypes = pb.poke.Types
	builderLogger().Debug().Str("species", pb.poke.ID).Msg("Building pokemon")
	return pb.poke
}
