package battle

import (
	"math"
	"testing"
)

func tackleContext() *MoveContext {
	return &MoveContext{User: s1a, Move: GlobalData.move("tackle")}
}

func averageDamage(t *testing.T, state *State, mc *MoveContext, target Position) int {
	t.Helper()

	roll, ok := calculateDamage(state, mc, target)
	if !ok {
		t.Fatalf("expected %s to deal damage", mc.Move.Name)
	}

	return roll.average()
}

func TestCalculateDamage(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(state *State)
		damage int
	}{
		{"plain", func(state *State) {}, 48},
		{"reflect", func(state *State) { state.Side(SIDE_TWO).Conditions[SIDECOND_REFLECT] = 5 }, 32},
		{"burned attacker", func(state *State) { state.Active(s1a).Status = STATUS_BURN }, 24},
		// Guts skips the burn halving and adds its own 1.5x
		{"guts ignores burn", func(state *State) {
			state.Active(s1a).Status = STATUS_BURN
			state.Active(s1a).Ability = "guts"
		}, 72},
		{"attack boost", func(state *State) { state.Slot(s1a).Boosts[STAT_ATTACK] = 2 }, 95},
		{"choice band", func(state *State) { state.Active(s1a).Item = "choice-band" }, 72},
		{"helping hand", func(state *State) { state.Slot(s1a).Volatiles.add(VOLATILE_HELPINGHAND) }, 72},
		{"friend guard", func(state *State) { state.Active(s2b).Ability = "friend-guard" }, 37},
		{"mold breaker ignores friend guard", func(state *State) {
			state.Active(s2b).Ability = "friend-guard"
			state.Active(s1a).Ability = "mold-breaker"
		}, 48},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state := getDefaultState()
			test.setup(&state)

			if got := averageDamage(t, &state, tackleContext(), s2a); got != test.damage {
				t.Fatalf("expected %d damage, got %d", test.damage, got)
			}
		})
	}
}

func TestImmuneTargetTakesNoDamage(t *testing.T) {
	state := getDefaultState()
	state.Active(s2a).Types = [2]PokemonType{TYPE_GHOST, TYPE_TYPELESS}

	if _, ok := calculateDamage(&state, tackleContext(), s2a); ok {
		t.Fatalf("expected a normal move to have no effect on a ghost")
	}
}

func TestDamageRollNeverBelowOne(t *testing.T) {
	roll := damageRoll{preRoll: 0.4, effectiveness: 0.25}
	if got := roll.roll(85); got != 1 {
		t.Fatalf("expected a minimum of 1, got %d", got)
	}
	if got := roll.average(); got != 1 {
		t.Fatalf("expected a minimum of 1, got %d", got)
	}
}

func TestKOChance(t *testing.T) {
	roll := damageRoll{preRoll: 52, effectiveness: 1}

	chance, survive := roll.koChance(45)
	if chance != 87.5 || survive != 44 {
		t.Fatalf("expected 87.5%% to ko and 44 otherwise, got %.2f%% and %d", chance, survive)
	}

	chance, survive = roll.koChance(100)
	if chance != 0 || survive != 52 {
		t.Fatalf("expected no ko with a max roll of 52, got %.2f%% and %d", chance, survive)
	}

	chance, _ = roll.koChance(10)
	if chance != 100 {
		t.Fatalf("expected a guaranteed ko, got %.2f%%", chance)
	}
}

func TestStageMultiplier(t *testing.T) {
	tests := map[int]float64{
		-6: 0.25,
		-1: 2.0 / 3.0,
		0:  1,
		2:  2,
		6:  4,
		9:  4,
	}

	for stage, want := range tests {
		if got := stageMultiplier(stage); math.Abs(got-want) > 1e-9 {
			t.Fatalf("stage %d: expected %f, got %f", stage, want, got)
		}
	}
}

func TestTypeEffectiveness(t *testing.T) {
	tests := []struct {
		attack PokemonType
		def    [2]PokemonType
		want   float64
	}{
		{TYPE_FIRE, [2]PokemonType{TYPE_GRASS, TYPE_STEEL}, 4},
		{TYPE_ELECTRIC, [2]PokemonType{TYPE_GROUND, TYPE_FLYING}, 0},
		{TYPE_WATER, [2]PokemonType{TYPE_WATER, TYPE_WATER}, 0.5},
		{TYPE_ROCK, [2]PokemonType{TYPE_FIGHTING, TYPE_FLYING}, 1},
		{TYPE_NORMAL, [2]PokemonType{TYPE_NORMAL, TYPE_TYPELESS}, 1},
	}

	for _, test := range tests {
		if got := TypeEffectiveness(test.attack, test.def); got != test.want {
			t.Fatalf("%s against %v: expected %f, got %f", test.attack, test.def, test.want, got)
		}
	}
}

func TestStellarMoveEffectiveness(t *testing.T) {
	state := getDefaultState()
	move := GlobalData.move("tera-starstorm")
	move.Type = TYPE_STELLAR

	if got := moveEffectiveness(&state, &move, s2a); got != 1 {
		t.Fatalf("expected neutral damage, got %f", got)
	}

	state.Active(s2a).Terastallized = true
	if got := moveEffectiveness(&state, &move, s2a); got != 2 {
		t.Fatalf("expected double damage on a terastallized target, got %f", got)
	}
}
