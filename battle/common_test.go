package battle

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"
)

var (
	s1a = Position{SIDE_ONE, SLOT_A}
	s1b = Position{SIDE_ONE, SLOT_B}
	s2a = Position{SIDE_TWO, SLOT_A}
	s2b = Position{SIDE_TWO, SLOT_B}
)

// No action this turn
var noMove = MoveChoice{}

// getDummyPokemon is a level 100 normal type with 100 in every stat and no moves
func getDummyPokemon() Pokemon {
	return NewPokeBuilder("dummy").Build()
}

func getDummyPokemonWithAbility(ability string) Pokemon {
	return NewPokeBuilder("dummy").SetAbility(ability).Build()
}

func getDummyTeam() []Pokemon {
	team := make([]Pokemon, 6)
	for i := range team {
		team[i] = getDummyPokemon()
	}

	return team
}

// getDefaultState has six dummy pokemon per side and a permanent clear sky
func getDefaultState() State {
	state := NewState(getDummyTeam(), getDummyTeam())
	state.Weather = Weather{Kind: WEATHER_NONE, TurnsRemaining: -1}

	return state
}

func setMoves(state *State, pos Position, ids ...string) {
	pkm := state.Active(pos)
	for i := range pkm.Moves {
		id := MOVE_NONE
		if i < len(ids) {
			id = ids[i]
		}
		pkm.Moves[i] = Move{ID: id}
	}
}

func useMove(index int, target Position) MoveChoice {
	return NewMoveChoice(index, target.Side, target.Slot)
}

// generate runs one turn and fails the test if the state was not restored
func generate(t *testing.T, state *State, choices [4]MoveChoice, branchOnDamage bool) []StateInstructions {
	t.Helper()

	before := *state
	results := GenerateInstructions(state, choices[0], choices[1], choices[2], choices[3], branchOnDamage)
	if *state != before {
		t.Fatalf("state was not restored after generating instructions")
	}

	return results
}

func formatResults(results []StateInstructions) string {
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "\n  %.2f%% eot=%t", r.Percentage, r.EndOfTurnTriggered)
		for _, i := range r.Instructions {
			fmt.Fprintf(&sb, "\n    %T%+v", i, i)
		}
	}

	return sb.String()
}

func expectResults(t *testing.T, got []StateInstructions, want []StateInstructions) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d branches, got %d:%s", len(want), len(got), formatResults(got))
	}

	for i := range want {
		if math.Abs(float64(got[i].Percentage-want[i].Percentage)) > 0.01 {
			t.Fatalf("branch %d: expected %.2f%%, got:%s", i, want[i].Percentage, formatResults(got))
		}
		if got[i].EndOfTurnTriggered != want[i].EndOfTurnTriggered {
			t.Fatalf("branch %d: expected end of turn %t, got:%s", i, want[i].EndOfTurnTriggered, formatResults(got))
		}
		if !slices.Equal(got[i].Instructions, want[i].Instructions) {
			t.Fatalf("branch %d: expected:%s\ngot:%s", i, formatResults(want[i:i+1]), formatResults(got))
		}
	}
}

// expectSingle checks for exactly one certain branch that ran end of turn
func expectSingle(t *testing.T, got []StateInstructions, want ...Instruction) {
	t.Helper()
	expectResults(t, got, []StateInstructions{{Percentage: 100, Instructions: want, EndOfTurnTriggered: true}})
}
