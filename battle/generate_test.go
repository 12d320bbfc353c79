package battle

import "testing"

func TestTackle(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results, Damage{Side: SIDE_TWO, Index: 0, Amount: 48})
}

func TestNoActionsOnlyRunsEndOfTurn(t *testing.T) {
	state := getDefaultState()

	results := generate(t, &state, [4]MoveChoice{noMove, noMove, noMove, noMove}, false)

	expectSingle(t, results)
}

func TestTiedSpeedGoesToLaterDeclaration(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	setMoves(&state, s2a, "tackle")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, useMove(0, s1a), noMove}, false)

	expectSingle(t, results,
		Damage{Side: SIDE_ONE, Index: 0, Amount: 48},
		Damage{Side: SIDE_TWO, Index: 0, Amount: 48},
	)
}

func TestTrickRoomReversesSpeedOrder(t *testing.T) {
	state := getDefaultState()
	state.TrickRoom = TrickRoom{Active: true, TurnsRemaining: 3}
	setMoves(&state, s1a, "tackle")
	setMoves(&state, s2a, "tackle")
	state.Active(s1a).Speed = 50
	state.Active(s2a).Speed = 150

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, useMove(0, s1a), noMove}, false)

	expectSingle(t, results,
		Damage{Side: SIDE_TWO, Index: 0, Amount: 48},
		Damage{Side: SIDE_ONE, Index: 0, Amount: 48},
		DecrementTrickRoomTurns{},
	)
}

func TestTrickRoomExpires(t *testing.T) {
	state := getDefaultState()
	state.TrickRoom = TrickRoom{Active: true, TurnsRemaining: 1}

	results := generate(t, &state, [4]MoveChoice{noMove, noMove, noMove, noMove}, false)

	expectSingle(t, results,
		DecrementTrickRoomTurns{},
		ChangeTrickRoom{Old: TrickRoom{Active: true, TurnsRemaining: 0}, New: TrickRoom{}},
	)
}

func TestFaintedTargetRetargetsToAlly(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	state.Active(s2a).HP = 0

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results, Damage{Side: SIDE_TWO, Index: 1, Amount: 48})
}

func TestSpreadMoveHitsBothFoes(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "hyper-voice")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	// 90 power at three quarters is 67.5
	expectSingle(t, results,
		Damage{Side: SIDE_TWO, Index: 0, Amount: 80},
		Damage{Side: SIDE_TWO, Index: 1, Amount: 80},
	)
}

func TestParalysisCanStopTheMove(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	state.Active(s1a).Status = STATUS_PARA

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectResults(t, results, []StateInstructions{
		{Percentage: 75, EndOfTurnTriggered: true, Instructions: []Instruction{
			Damage{Side: SIDE_TWO, Index: 0, Amount: 48},
		}},
		{Percentage: 25, EndOfTurnTriggered: true},
	})
}

func TestSleepWithNoTurnsSleptCannotWake(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	state.Active(s1a).Status = STATUS_SLEEP

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results, SetSleepTurns{Side: SIDE_ONE, Index: 0, Old: 0, New: 1})
}

func TestConfusionBranches(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	state.Slot(s1a).Volatiles.add(VOLATILE_CONFUSION)
	state.Slot(s1a).Durations[VOLATILE_CONFUSION] = 2

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	countdown := ChangeVolatileDuration{Side: SIDE_ONE, Slot: SLOT_A, Volatile: VOLATILE_CONFUSION, Amount: -1}
	expectResults(t, results, []StateInstructions{
		{Percentage: 200.0 / 3, EndOfTurnTriggered: true, Instructions: []Instruction{
			Damage{Side: SIDE_TWO, Index: 0, Amount: 48},
			countdown,
		}},
		{Percentage: 100.0 / 3, EndOfTurnTriggered: true, Instructions: []Instruction{
			Damage{Side: SIDE_ONE, Index: 0, Amount: 32},
			countdown,
		}},
	})
}

func TestSecondaryChanceBranches(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "ember")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectResults(t, results, []StateInstructions{
		{Percentage: 90, EndOfTurnTriggered: true, Instructions: []Instruction{
			Damage{Side: SIDE_TWO, Index: 0, Amount: 32},
		}},
		{Percentage: 10, EndOfTurnTriggered: true, Instructions: []Instruction{
			Damage{Side: SIDE_TWO, Index: 0, Amount: 32},
			ChangeStatus{Side: SIDE_TWO, Index: 0, Old: STATUS_NONE, New: STATUS_BURN},
			Damage{Side: SIDE_TWO, Index: 0, Amount: 6},
		}},
	})
}

func TestMultiHitBranches(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "bullet-seed")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	hit := Damage{Side: SIDE_TWO, Index: 0, Amount: 21}
	expectResults(t, results, []StateInstructions{
		{Percentage: 35, EndOfTurnTriggered: true, Instructions: []Instruction{hit, hit}},
		{Percentage: 35, EndOfTurnTriggered: true, Instructions: []Instruction{hit, hit, hit}},
		{Percentage: 15, EndOfTurnTriggered: true, Instructions: []Instruction{hit, hit, hit, hit}},
		{Percentage: 15, EndOfTurnTriggered: true, Instructions: []Instruction{
			hit, hit, hit, hit, Damage{Side: SIDE_TWO, Index: 0, Amount: 16},
		}},
	})
}

func TestBranchOnDamageSplitsKnockouts(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	state.Active(s2a).HP = 45

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, true)

	expectResults(t, results, []StateInstructions{
		{Percentage: 12.5, EndOfTurnTriggered: true, Instructions: []Instruction{
			Damage{Side: SIDE_TWO, Index: 0, Amount: 44},
		}},
		{Percentage: 87.5, EndOfTurnTriggered: true, Instructions: []Instruction{
			Damage{Side: SIDE_TWO, Index: 0, Amount: 45},
		}},
	})
}

func TestProtectChainCanFail(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	setMoves(&state, s2a, "protect")
	state.Slot(s2a).Durations[VOLATILE_PROTECT] = 1

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, useMove(0, s2a), noMove}, false)

	expectResults(t, results, []StateInstructions{
		{Percentage: 200.0 / 3, EndOfTurnTriggered: true, Instructions: []Instruction{
			Damage{Side: SIDE_TWO, Index: 0, Amount: 48},
			ChangeVolatileDuration{Side: SIDE_TWO, Slot: SLOT_A, Volatile: VOLATILE_PROTECT, Amount: -1},
		}},
		{Percentage: 100.0 / 3, EndOfTurnTriggered: true, Instructions: []Instruction{
			ApplyVolatile{Side: SIDE_TWO, Slot: SLOT_A, Volatile: VOLATILE_PROTECT},
			RemoveVolatile{Side: SIDE_TWO, Slot: SLOT_A, Volatile: VOLATILE_PROTECT},
			ChangeVolatileDuration{Side: SIDE_TWO, Slot: SLOT_A, Volatile: VOLATILE_PROTECT, Amount: 1},
		}},
	})
}

func TestSpikyShieldPunishesContact(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	setMoves(&state, s2a, "spiky-shield")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, useMove(0, s2a), noMove}, false)

	expectSingle(t, results,
		ApplyVolatile{Side: SIDE_TWO, Slot: SLOT_A, Volatile: VOLATILE_SPIKYSHIELD},
		Damage{Side: SIDE_ONE, Index: 0, Amount: 12},
		RemoveVolatile{Side: SIDE_TWO, Slot: SLOT_A, Volatile: VOLATILE_SPIKYSHIELD},
		ChangeVolatileDuration{Side: SIDE_TWO, Slot: SLOT_A, Volatile: VOLATILE_PROTECT, Amount: 1},
	)
}

func TestWideGuardBlocksSpreadMoves(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "hyper-voice")
	setMoves(&state, s2a, "wide-guard")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, useMove(0, s2a), noMove}, false)

	expectSingle(t, results,
		ChangeSideCondition{Side: SIDE_TWO, Condition: SIDECOND_WIDE_GUARD, Amount: 1},
		ChangeSideCondition{Side: SIDE_TWO, Condition: SIDECOND_WIDE_GUARD, Amount: -1},
	)
}

func TestHelpingHand(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	setMoves(&state, s1b, "helping-hand")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), useMove(0, s1a), noMove, noMove}, false)

	expectSingle(t, results,
		ApplyVolatile{Side: SIDE_ONE, Slot: SLOT_A, Volatile: VOLATILE_HELPINGHAND},
		Damage{Side: SIDE_TWO, Index: 0, Amount: 72},
		RemoveVolatile{Side: SIDE_ONE, Slot: SLOT_A, Volatile: VOLATILE_HELPINGHAND},
	)
}

func TestRagePowderRedirects(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	setMoves(&state, s2b, "rage-powder")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, useMove(0, s2b)}, false)

	expectSingle(t, results,
		ApplyVolatile{Side: SIDE_TWO, Slot: SLOT_B, Volatile: VOLATILE_RAGEPOWDER},
		Damage{Side: SIDE_TWO, Index: 1, Amount: 48},
		RemoveVolatile{Side: SIDE_TWO, Slot: SLOT_B, Volatile: VOLATILE_RAGEPOWDER},
	)
}

func TestSuckerPunch(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "sucker-punch")
	setMoves(&state, s2a, "tackle")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, useMove(0, s1b), noMove}, false)

	expectSingle(t, results,
		Damage{Side: SIDE_TWO, Index: 0, Amount: 55},
		Damage{Side: SIDE_ONE, Index: 1, Amount: 48},
	)
}

func TestSuckerPunchFailsAgainstNoAttack(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "sucker-punch")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results)
}

func TestKnockOffRemovesItem(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "knock-off")
	state.Active(s2a).Item = "leftovers"

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results,
		Damage{Side: SIDE_TWO, Index: 0, Amount: 76},
		ChangeItem{Side: SIDE_TWO, Index: 0, Old: "leftovers", New: ""},
	)
}

func TestTailwind(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tailwind")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s1a), noMove, noMove, noMove}, false)

	expectSingle(t, results,
		ChangeSideCondition{Side: SIDE_ONE, Condition: SIDECOND_TAILWIND, Amount: TAILWIND_TURNS},
		ChangeSideCondition{Side: SIDE_ONE, Condition: SIDECOND_TAILWIND, Amount: -1},
	)
}

func TestUTurnHaltsTurnForSwitch(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "u-turn")
	setMoves(&state, s1b, "tackle")
	setMoves(&state, s2a, "tackle")
	setMoves(&state, s2b, "tackle")
	state.Active(s1a).Speed = 150

	choices := [4]MoveChoice{useMove(0, s2a), useMove(0, s2a), useMove(0, s1a), useMove(0, s1b)}
	results := generate(t, &state, choices, false)

	expectResults(t, results, []StateInstructions{
		{Percentage: 100, EndOfTurnTriggered: false, Instructions: []Instruction{
			Damage{Side: SIDE_TWO, Index: 0, Amount: 55},
			ToggleForceSwitch{Side: SIDE_ONE, Slot: SLOT_A},
			SetSwitchOutMove{Side: SIDE_ONE, Slot: SLOT_B, New: choices[1]},
			SetSwitchOutMove{Side: SIDE_TWO, Slot: SLOT_A, New: choices[2]},
			SetSwitchOutMove{Side: SIDE_TWO, Slot: SLOT_B, New: choices[3]},
		}},
	})
}

func TestResumeAfterPivot(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1b, "tackle")
	saved := useMove(0, s2a)
	state.Slot(s1a).ForceSwitch = true
	state.Slot(s1b).SwitchOutMove = saved

	results := generate(t, &state, [4]MoveChoice{NewSwitchChoice(2), noMove, noMove, noMove}, false)

	expectSingle(t, results,
		ToggleForceSwitch{Side: SIDE_ONE, Slot: SLOT_A},
		Switch{Side: SIDE_ONE, Slot: SLOT_A, Previous: 0, Next: 2},
		SetSwitchOutMove{Side: SIDE_ONE, Slot: SLOT_B, Old: saved, New: MoveChoice{}},
		Damage{Side: SIDE_TWO, Index: 0, Amount: 48},
	)
}

func TestReplacingFaintedPokemonSkipsEndOfTurn(t *testing.T) {
	state := getDefaultState()
	state.Active(s1a).HP = 0
	state.Active(s1a).Status = STATUS_BURN

	results := generate(t, &state, [4]MoveChoice{NewSwitchChoice(2), noMove, noMove, noMove}, false)

	expectResults(t, results, []StateInstructions{
		{Percentage: 100, EndOfTurnTriggered: false, Instructions: []Instruction{
			Switch{Side: SIDE_ONE, Slot: SLOT_A, Previous: 0, Next: 2},
		}},
	})
}

func TestLastUsedMoveTracking(t *testing.T) {
	state := getDefaultState()
	state.UseLastUsedMove = true
	setMoves(&state, s1a, "splash", "tackle")

	results := generate(t, &state, [4]MoveChoice{useMove(1, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results,
		SetLastUsedMove{Side: SIDE_ONE, Slot: SLOT_A, New: LastUsedMove{Kind: LASTMOVE_MOVE, MoveIndex: 1}},
		Damage{Side: SIDE_TWO, Index: 0, Amount: 48},
	)
}

func TestFakeOutOnlyWorksAfterSwitchingIn(t *testing.T) {
	state := getDefaultState()
	state.UseLastUsedMove = true
	setMoves(&state, s1a, "fake-out")
	state.Slot(s1a).LastUsedMove = LastUsedMove{Kind: LASTMOVE_MOVE, MoveIndex: 0}

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results)
}

func TestIdenticalBranchesMerge(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "tackle")
	state.Active(s1a).Status = STATUS_PARA
	// Moving or not, the tackle does nothing to a ghost
	state.Active(s2a).Types = [2]PokemonType{TYPE_GHOST, TYPE_TYPELESS}

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results)
}

func TestDireClawStatusSplit(t *testing.T) {
	state := getDefaultState()
	setMoves(&state, s1a, "dire-claw")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, noMove, noMove}, false)

	hit := Damage{Side: SIDE_TWO, Index: 0, Amount: 63}
	expectResults(t, results, []StateInstructions{
		{Percentage: 50, EndOfTurnTriggered: true, Instructions: []Instruction{hit}},
		{Percentage: 16.667, EndOfTurnTriggered: true, Instructions: []Instruction{
			hit,
			ChangeStatus{Side: SIDE_TWO, Index: 0, Old: STATUS_NONE, New: STATUS_SLEEP},
		}},
		{Percentage: 16.667, EndOfTurnTriggered: true, Instructions: []Instruction{
			hit,
			ChangeStatus{Side: SIDE_TWO, Index: 0, Old: STATUS_NONE, New: STATUS_PARA},
		}},
		{Percentage: 16.667, EndOfTurnTriggered: true, Instructions: []Instruction{
			hit,
			ChangeStatus{Side: SIDE_TWO, Index: 0, Old: STATUS_NONE, New: STATUS_POISON},
			Damage{Side: SIDE_TWO, Index: 0, Amount: 12},
		}},
	})
}

func TestPriorityRecomputedAfterTerrainChange(t *testing.T) {
	state := getDefaultState()
	state.Terrain = Terrain{Kind: TERRAIN_GRASSY, TurnsRemaining: 3}
	state.Sides[SIDE_TWO].Pokemon[2].Ability = "psychic-surge"
	state.Active(s1a).Speed = 100
	state.Active(s2a).Speed = 105
	setMoves(&state, s1a, "grassy-glide")
	setMoves(&state, s2a, "tackle")

	// Psychic Surge replaces the terrain before grassy glide gets its priority
	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, useMove(0, s1a), NewSwitchChoice(2)}, false)

	expectSingle(t, results,
		Switch{Side: SIDE_TWO, Slot: SLOT_B, Previous: 1, Next: 2},
		ChangeTerrain{
			Old: Terrain{Kind: TERRAIN_GRASSY, TurnsRemaining: 3},
			New: Terrain{Kind: TERRAIN_PSYCHIC, TurnsRemaining: TERRAIN_ABILITY_TURNS},
		},
		Damage{Side: SIDE_ONE, Index: 0, Amount: 48},
		Damage{Side: SIDE_TWO, Index: 0, Amount: 44},
		DecrementTerrainTurns{},
	)
}

func TestRagePowderIgnoredByPowderImmuneAttacker(t *testing.T) {
	tests := map[string]func(state *State){
		"grass type":     func(state *State) { state.Active(s2a).Types = [2]PokemonType{TYPE_GRASS, TYPE_NORMAL} },
		"safety goggles": func(state *State) { state.Active(s2a).Item = "safety-goggles" },
		"overcoat":       func(state *State) { state.Active(s2a).Ability = "overcoat" },
	}

	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			state := getDefaultState()
			setMoves(&state, s1a, "rage-powder")
			setMoves(&state, s2a, "tackle")
			setup(&state)

			results := generate(t, &state, [4]MoveChoice{useMove(0, s1a), noMove, useMove(0, s1b), noMove}, false)

			expectSingle(t, results,
				ApplyVolatile{Side: SIDE_ONE, Slot: SLOT_A, Volatile: VOLATILE_RAGEPOWDER},
				Damage{Side: SIDE_ONE, Index: 1, Amount: 48},
				RemoveVolatile{Side: SIDE_ONE, Slot: SLOT_A, Volatile: VOLATILE_RAGEPOWDER},
			)
		})
	}
}

func TestFaintedFollowMeStopsRedirecting(t *testing.T) {
	state := getDefaultState()
	state.Active(s1a).Speed = 150
	state.Active(s1b).Speed = 150
	state.Active(s2a).HP = 5
	setMoves(&state, s1a, "tackle")
	setMoves(&state, s1b, "tackle")
	setMoves(&state, s2a, "follow-me")
	setMoves(&state, s2b, "splash")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2b), useMove(0, s2b), useMove(0, s2a), useMove(0, s2a)}, false)

	// The fainted slot keeps follow me through end of turn
	expectSingle(t, results,
		ApplyVolatile{Side: SIDE_TWO, Slot: SLOT_A, Volatile: VOLATILE_FOLLOWME},
		Damage{Side: SIDE_TWO, Index: 0, Amount: 5},
		Damage{Side: SIDE_TWO, Index: 1, Amount: 48},
	)
}

func TestDisableStopsRepeatedMove(t *testing.T) {
	state := getDefaultState()
	state.Slot(s1a).LastUsedMove = LastUsedMove{Kind: LASTMOVE_MOVE, MoveIndex: 0}
	setMoves(&state, s1a, "tackle")
	setMoves(&state, s2a, "disable")

	results := generate(t, &state, [4]MoveChoice{useMove(0, s2a), noMove, useMove(0, s1a), noMove}, false)

	expectSingle(t, results, ApplyVolatile{Side: SIDE_ONE, Slot: SLOT_A, Volatile: VOLATILE_DISABLE})
}

func TestDisableOnlyBlocksLastUsedMove(t *testing.T) {
	state := getDefaultState()
	state.Slot(s1a).LastUsedMove = LastUsedMove{Kind: LASTMOVE_MOVE, MoveIndex: 0}
	state.Slot(s1a).Volatiles.add(VOLATILE_DISABLE)
	setMoves(&state, s1a, "splash", "tackle")

	results := generate(t, &state, [4]MoveChoice{useMove(1, s2a), noMove, noMove, noMove}, false)

	expectSingle(t, results, Damage{Side: SIDE_TWO, Index: 0, Amount: 48})
}

func TestPercentageDriftLimit(t *testing.T) {
	checkPercentages([]StateInstructions{{Percentage: 66.665}, {Percentage: 33.33}})

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a 0.02%% drift to panic")
		}
	}()
	checkPercentages([]StateInstructions{{Percentage: 66.66}, {Percentage: 33.32}})
}
