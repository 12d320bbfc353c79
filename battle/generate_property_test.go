package battle

import (
	"math"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

var propertyMoves = []string{
	"tackle", "quick-attack", "body-slam", "hyper-voice", "echoed-voice",
	"water-gun", "ember", "thunderbolt", "thunder-wave", "icy-wind",
	"rock-slide", "earthquake", "close-combat", "shadow-ball", "dazzling-gleam",
	"bullet-seed", "knock-off", "sucker-punch", "fake-out", "u-turn",
	"protect", "helping-hand", "follow-me", "swords-dance", "recover",
	"tailwind", "trick-room", "will-o-wisp", "scald", "draco-meteor",
}

var propertyStatuses = []Status{STATUS_NONE, STATUS_NONE, STATUS_BURN, STATUS_PARA, STATUS_POISON, STATUS_TOXIC}

var propertyTypes = []PokemonType{TYPE_NORMAL, TYPE_FIRE, TYPE_WATER, TYPE_GRASS, TYPE_ELECTRIC, TYPE_GHOST, TYPE_STEEL, TYPE_FLYING}

func drawState(rt *rapid.T) State {
	state := getDefaultState()

	for _, pos := range declarationOrder {
		pkm := state.Active(pos)
		pkm.HP = rapid.IntRange(1, pkm.MaxHP).Draw(rt, "hp")
		pkm.Speed = rapid.IntRange(50, 150).Draw(rt, "speed")
		pkm.Status = rapid.SampledFrom(propertyStatuses).Draw(rt, "status")
		pkm.Types = [2]PokemonType{rapid.SampledFrom(propertyTypes).Draw(rt, "type"), TYPE_TYPELESS}
		pkm.BaseTypes = pkm.Types

		moves := rapid.SliceOfN(rapid.SampledFrom(propertyMoves), 4, 4).Draw(rt, "moves")
		setMoves(&state, pos, moves...)
	}

	return state
}

func drawChoice(rt *rapid.T, pos Position) MoveChoice {
	switch rapid.IntRange(0, 9).Draw(rt, "kind") {
	case 0:
		return noMove
	case 1:
		return NewSwitchChoice(rapid.IntRange(2, 5).Draw(rt, "switch"))
	}

	target := rapid.SampledFrom([]Position{pos.Ally(), {Side: pos.Side.Opposite(), Slot: SLOT_A}, {Side: pos.Side.Opposite(), Slot: SLOT_B}}).Draw(rt, "target")
	return useMove(rapid.IntRange(0, 3).Draw(rt, "move"), target)
}

func drawChoices(rt *rapid.T) [4]MoveChoice {
	var choices [4]MoveChoice
	for i, pos := range declarationOrder {
		choices[i] = drawChoice(rt, pos)
	}

	return choices
}

func TestGenerateInstructionsProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		state := drawState(rt)
		choices := drawChoices(rt)
		branchOnDamage := rapid.Bool().Draw(rt, "branchOnDamage")
		before := state

		results := GenerateInstructions(&state, choices[0], choices[1], choices[2], choices[3], branchOnDamage)
		if state != before {
			rt.Fatalf("state was not restored")
		}
		if len(results) == 0 {
			rt.Fatalf("expected at least one branch")
		}

		var total float64
		for _, r := range results {
			if r.Percentage <= 0 {
				rt.Fatalf("branch with %.4f%% should have been dropped", r.Percentage)
			}
			total += float64(r.Percentage)
		}
		if math.Abs(total-100) > PERCENTAGE_TOLERANCE {
			rt.Fatalf("branches sum to %.4f%%", total)
		}

		again := GenerateInstructions(&state, choices[0], choices[1], choices[2], choices[3], branchOnDamage)
		if len(again) != len(results) {
			rt.Fatalf("expected the same %d branches on a second run, got %d", len(results), len(again))
		}
		for i := range results {
			if results[i].Percentage != again[i].Percentage || !slices.Equal(results[i].Instructions, again[i].Instructions) {
				rt.Fatalf("branch %d differs between runs", i)
			}
		}
	})
}

func TestBranchesApplyCleanly(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		state := drawState(rt)
		choices := drawChoices(rt)
		before := state

		for _, r := range GenerateInstructions(&state, choices[0], choices[1], choices[2], choices[3], false) {
			state.ApplyInstructions(r.Instructions)

			for _, side := range state.Sides {
				for _, pkm := range side.Pokemon {
					if pkm.HP < 0 || pkm.HP > pkm.MaxHP {
						rt.Fatalf("%s left at %d/%d hp", pkm.ID, pkm.HP, pkm.MaxHP)
					}
				}
				for _, slot := range side.Slots {
					for stat, boost := range slot.Boosts {
						if boost < MIN_BOOST || boost > MAX_BOOST {
							rt.Fatalf("%s boost left at %d", Stat(stat), boost)
						}
					}
				}
			}

			state.ReverseInstructions(r.Instructions)
			if state != before {
				rt.Fatalf("reversing a branch did not restore the state")
			}
		}
	})
}
