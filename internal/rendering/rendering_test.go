package rendering

import (
	"strings"
	"testing"

	"github.com/nathanieltooley/dondozo/battle"
)

func dummyState() battle.State {
	team := func() []battle.Pokemon {
		team := make([]battle.Pokemon, 6)
		for i := range team {
			team[i] = battle.NewPokeBuilder("dummy").Build()
		}
		team[2] = battle.NewPokeBuilder("eiscue").Build()
		return team
	}

	return battle.NewState(team(), team())
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"eiscue-noice": "Eiscue Noice",
		"dondozo":      "Dondozo",
		"":             "Empty",
	}

	for id, want := range tests {
		if got := DisplayName(id); got != want {
			t.Fatalf("expected %q for %q, got %q", want, id, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	state := dummyState()

	tests := []struct {
		instruction battle.Instruction
		want        string
	}{
		{battle.Damage{Side: battle.SIDE_TWO, Index: 0, Amount: 48}, "p2a Dummy loses 48 hp"},
		{battle.Heal{Side: battle.SIDE_ONE, Index: 1, Amount: -10}, "p1b Dummy loses 10 hp"},
		{battle.Heal{Side: battle.SIDE_ONE, Index: 4, Amount: 6}, "p1[4] Dummy heals 6 hp"},
		{battle.Boost{Side: battle.SIDE_ONE, Slot: battle.SLOT_A, Stat: battle.STAT_ATTACK, Amount: -1}, "p1a Dummy " + battle.STAT_ATTACK.String() + " -1"},
		{battle.ChangeStatus{Side: battle.SIDE_TWO, Index: 1, Old: battle.STATUS_NONE, New: battle.STATUS_BURN}, "p2b Dummy status none -> burn"},
		{battle.ChangeItem{Side: battle.SIDE_ONE, Index: 0, Old: "air-balloon", New: ""}, "p1a Dummy item air-balloon -> none"},
		{battle.Switch{Side: battle.SIDE_ONE, Slot: battle.SLOT_B, Previous: 1, Next: 2}, "p1b: Dummy -> Eiscue"},
		{battle.ChangeWeather{Old: battle.Weather{Kind: battle.WEATHER_NONE, TurnsRemaining: -1}, New: battle.Weather{Kind: battle.WEATHER_RAIN, TurnsRemaining: 5}}, "weather none -> rain (5 turns)"},
		{battle.ChangeTerrain{Old: battle.Terrain{Kind: battle.TERRAIN_GRASSY, TurnsRemaining: 0}, New: battle.Terrain{Kind: battle.TERRAIN_NONE}}, "terrain grassy -> none (0 turns)"},
		{battle.ChangeType{Side: battle.SIDE_ONE, Index: 0, Old: [2]battle.PokemonType{battle.TYPE_NORMAL, battle.TYPE_TYPELESS}, New: [2]battle.PokemonType{battle.TYPE_FIRE, battle.TYPE_FLYING}}, "p1a Dummy type Normal -> Fire/Flying"},
		{battle.ToggleTerastallized{Side: battle.SIDE_TWO, Index: 0}, "p2a Dummy terastallizes"},
		{battle.ToggleForceSwitch{Side: battle.SIDE_TWO, Slot: battle.SLOT_B}, "p2b has to switch"},
	}

	for _, test := range tests {
		if got := Describe(&state, test.instruction); got != test.want {
			t.Fatalf("%T: expected %q, got %q", test.instruction, test.want, got)
		}
	}
}

func TestBranchFollowsSwitches(t *testing.T) {
	state := dummyState()
	result := battle.StateInstructions{
		Percentage: 100,
		Instructions: []battle.Instruction{
			battle.Switch{Side: battle.SIDE_ONE, Slot: battle.SLOT_A, Previous: 0, Next: 2},
			battle.Damage{Side: battle.SIDE_ONE, Index: 2, Amount: 12},
			battle.Damage{Side: battle.SIDE_ONE, Index: 0, Amount: 5},
		},
		EndOfTurnTriggered: true,
	}
	before := state

	got := Renderer{}.Branch(state, 0, result, true)

	want := strings.Join([]string{
		"Branch 1  100.000%  (end of turn)",
		"  p1a: Dummy -> Eiscue",
		"  p1a Eiscue loses 12 hp",
		"  p1[0] Dummy loses 5 hp",
	}, "\n")
	if got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
	if state != before {
		t.Fatalf("rendering should not touch the caller's state")
	}
}

func TestBranchesFromGeneratedTurn(t *testing.T) {
	state := dummyState()
	state.Weather = battle.Weather{Kind: battle.WEATHER_NONE, TurnsRemaining: -1}
	state.Active(battle.Position{Side: battle.SIDE_ONE, Slot: battle.SLOT_A}).Moves[0] = battle.Move{ID: "tackle"}

	choice := battle.NewMoveChoice(0, battle.SIDE_TWO, battle.SLOT_A)
	results := battle.GenerateInstructions(&state, choice, battle.MoveChoice{}, battle.MoveChoice{}, battle.MoveChoice{}, false)

	out := Renderer{}.Branches(state, results)
	if !strings.HasPrefix(out, "1 branches") || !strings.Contains(out, "p2a Dummy loses 48 hp") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	colored := Renderer{Color: true, Width: 60}.Branches(state, results)
	if !strings.Contains(colored, "p2a Dummy loses 48 hp") {
		t.Fatalf("expected the colored output to keep the text:\n%s", colored)
	}
}

func TestEmptyBranch(t *testing.T) {
	out := Renderer{}.Branch(dummyState(), 2, battle.StateInstructions{Percentage: 12.5}, false)

	if out != "Branch 3  12.500%\n  nothing happens" {
		t.Fatalf("unexpected output %q", out)
	}
}
