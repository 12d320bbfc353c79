package battle

import "math"

// SpeedOf is the effective speed of the pokemon active in a slot
func SpeedOf(state *State, side SideRef, slot SlotRef) int {
	pos := Position{Side: side, Slot: slot}
	pkm := state.Active(pos)

	speed := float64(pkm.Speed) * stageMultiplier(state.Slot(pos).Boosts[STAT_SPEED])
	if pkm.Status == STATUS_PARA && !hasAbility(state, pos, "quick-feet") {
		speed *= 0.5
	}
	if state.Side(side).Conditions[SIDECOND_TAILWIND] > 0 {
		speed *= 2
	}

	for _, h := range hooksAt(state, pos) {
		if h.ModifySpeed != nil {
			speed = h.ModifySpeed(state, pos, speed)
		}
	}

	return int(math.Floor(speed))
}

// PriorityOf is the priority a move would be used with right now
func PriorityOf(state *State, side SideRef, slot SlotRef, move *MoveData) int {
	pos := Position{Side: side, Slot: slot}
	priority := move.Priority

	effect := moveEffects[move.Name]
	if effect.Priority != nil {
		priority = effect.Priority(state, pos, priority)
	}

	for _, h := range hooksAt(state, pos) {
		if h.ModifyPriority != nil {
			priority = h.ModifyPriority(state, pos, move, priority)
		}
	}

	return priority
}

// chosenMove is the move data behind a move choice
func chosenMove(state *State, pos Position, choice MoveChoice) MoveData {
	pkm := state.Active(pos)
	if choice.MoveIndex < 0 || choice.MoveIndex >= len(pkm.Moves) {
		return GlobalData.move(MOVE_NONE)
	}

	return GlobalData.move(pkm.Moves[choice.MoveIndex].ID)
}

// canAct reports whether a declared action still happens in the current state
func canAct(state *State, pos Position, choice MoveChoice) bool {
	switch choice.Kind {
	case CHOICE_NONE:
		return false
	case CHOICE_SWITCH:
		side := state.Side(pos.Side)
		if choice.SwitchIndex < 0 || choice.SwitchIndex >= len(side.Pokemon) {
			return false
		}
		next := side.Pokemon[choice.SwitchIndex]
		return next.ID != "" && next.Alive() && choice.SwitchIndex != side.Slots[SLOT_A].ActiveIndex && choice.SwitchIndex != side.Slots[SLOT_B].ActiveIndex
	}

	if state.activeFainted(pos) {
		return false
	}

	return !state.Slot(pos).Volatiles.Has(VOLATILE_COMMANDING)
}

// actorSet is a bitset over declaration indexes
type actorSet uint8

func (a actorSet) has(pos Position) bool {
	return a&(1<<pos.declarationIndex()) != 0
}

func (a actorSet) without(pos Position) actorSet {
	return a &^ (1 << pos.declarationIndex())
}

func allActors() actorSet {
	return 0b1111
}

// movesBefore reports whether a acts before b. Both must be able to act.
func movesBefore(state *State, choices *[4]MoveChoice, a Position, b Position) bool {
	ca, cb := choices[a.declarationIndex()], choices[b.declarationIndex()]

	aSwitch, bSwitch := ca.Kind == CHOICE_SWITCH, cb.Kind == CHOICE_SWITCH
	if aSwitch != bSwitch {
		return aSwitch
	}
	if aSwitch {
		return a.declarationIndex() < b.declarationIndex()
	}

	moveA, moveB := chosenMove(state, a, ca), chosenMove(state, b, cb)
	priorityA := PriorityOf(state, a.Side, a.Slot, &moveA)
	priorityB := PriorityOf(state, b.Side, b.Slot, &moveB)
	if priorityA != priorityB {
		return priorityA > priorityB
	}

	speedA, speedB := SpeedOf(state, a.Side, a.Slot), SpeedOf(state, b.Side, b.Slot)
	if speedA != speedB {
		if state.TrickRoomActive() {
			return speedA < speedB
		}
		return speedA > speedB
	}

	// Exact ties go to the later declaration
	return a.declarationIndex() > b.declarationIndex()
}

// nextActor picks who acts next among remaining from the current state.
// Actors that can no longer act are dropped from the returned set.
func nextActor(state *State, choices *[4]MoveChoice, remaining actorSet) (Position, actorSet, bool) {
	var best Position
	found := false

	for _, pos := range declarationOrder {
		if !remaining.has(pos) {
			continue
		}
		if !canAct(state, pos, choices[pos.declarationIndex()]) {
			turnLogger().V(2).Info("actor skipped", "side", pos.Side, "slot", pos.Slot)
			remaining = remaining.without(pos)
			continue
		}

		if !found || movesBefore(state, choices, pos, best) {
			best = pos
			found = true
		}
	}

	return best, remaining, found
}
