package battle

// moveEffect holds the rules of a move that its data entry cannot express. Any field may be nil.
type moveEffect struct {
	Priority func(state *State, user Position, priority int) int
	// Modify adjusts the move before its targets are resolved
	Modify func(state *State, mc *MoveContext)
	Power  func(state *State, mc *MoveContext, target Position) int
	// Try runs once before any target is hit. Returning false fails the move.
	Try    func(g *generator, mc *MoveContext) bool
	TryHit func(g *generator, mc *MoveContext, target Position) bool
	// OnHit replaces the standard effect against a target when it returns true
	OnHit    func(g *generator, mc *MoveContext, target Position) bool
	AfterHit func(g *generator, mc *MoveContext, target Position)
}

var moveEffects = map[string]moveEffect{
	"protect":      {Try: tryProtect(VOLATILE_PROTECT)},
	"spiky-shield": {Try: tryProtect(VOLATILE_SPIKYSHIELD)},
	"fake-out": {
		Try: func(g *generator, mc *MoveContext) bool {
			if !g.state.UseLastUsedMove {
				return true
			}
			return mc.lastUsedBefore.Kind == LASTMOVE_SWITCH
		},
	},
	"helping-hand": {
		Try: func(g *generator, mc *MoveContext) bool {
			return g.state.Active(mc.User.Ally()).Alive()
		},
	},
	"electro-shot": {
		Try: func(g *generator, mc *MoveContext) bool {
			w := g.w
			if w.state.Slot(mc.User).Volatiles.Has(VOLATILE_ELECTROSHOT) {
				w.removeVolatile(mc.User, VOLATILE_ELECTROSHOT)
				return true
			}

			w.boost(mc.User, STAT_SPATTACK, 1)
			if w.state.WeatherIs(WEATHER_RAIN) {
				return true
			}
			if hasItem(w.state, mc.User, "power-herb") {
				w.changeItem(mc.User, "")
				return true
			}

			w.applyVolatile(mc.User, VOLATILE_ELECTROSHOT)
			return false
		},
	},
	"sucker-punch": {
		TryHit: func(g *generator, mc *MoveContext, target Position) bool {
			if !g.remaining.has(target) {
				return false
			}
			choice := g.choices[target.declarationIndex()]
			if !choice.IsMove() {
				return false
			}
			move := chosenMove(g.state, target, choice)
			return move.IsDamaging()
		},
	},
	"thunder-wave": {
		TryHit: func(g *generator, mc *MoveContext, target Position) bool {
			return moveEffectiveness(g.state, &mc.Move, target) != 0
		},
	},
	"grassy-glide": {
		Priority: func(state *State, user Position, priority int) int {
			if state.TerrainIs(TERRAIN_GRASSY) && grounded(state, user) {
				return priority + 1
			}
			return priority
		},
	},
	"eruption": {
		Power: func(state *State, mc *MoveContext, target Position) int {
			pkm := state.Active(mc.User)
			return max(1, mc.Move.Power*pkm.HP/pkm.MaxHP)
		},
	},
	"rage-fist": {
		Power: func(state *State, mc *MoveContext, target Position) int {
			return min(350, mc.Move.Power+50*state.Active(mc.User).TimesAttacked)
		},
	},
	"knock-off": {
		Power: func(state *State, mc *MoveContext, target Position) int {
			if removableItem(state, target) {
				return mc.Move.Power * 3 / 2
			}
			return mc.Move.Power
		},
		AfterHit: func(g *generator, mc *MoveContext, target Position) {
			if g.state.Active(mc.User).Alive() && removableItem(g.state, target) {
				g.w.changeItem(target, "")
			}
		},
	},
	"order-up": {
		AfterHit: func(g *generator, mc *MoveContext, target Position) {
			if !g.state.Slot(mc.User).Volatiles.Has(VOLATILE_COMMANDED) {
				return
			}

			commander := g.state.Active(mc.User.Ally())
			switch commander.ID {
			case "tatsugiri-droopy":
				g.w.boost(mc.User, STAT_DEFENSE, 1)
			case "tatsugiri-stretchy":
				g.w.boost(mc.User, STAT_SPEED, 1)
			default:
				g.w.boost(mc.User, STAT_ATTACK, 1)
			}
		},
	},
	"tera-starstorm": {
		Modify: func(state *State, mc *MoveContext) {
			pkm := state.Active(mc.User)
			if !pkm.Terastallized || pkm.TeraType != TYPE_STELLAR {
				return
			}

			mc.Move.Type = TYPE_STELLAR
			mc.Move.Target = TARGET_ALL_ADJACENT_FOES
			if pkm.Attack > pkm.SpecialAttack {
				mc.Move.DamageClass = DAMAGETYPE_PHYSICAL
			}
		},
	},
	"pollen-puff": {
		OnHit: func(g *generator, mc *MoveContext, target Position) bool {
			if target.Side != mc.User.Side {
				return false
			}

			pkm := g.state.Active(target)
			g.w.heal(target, pkm.MaxHP/2)
			return true
		},
	},
	"trick": {
		OnHit: func(g *generator, mc *MoveContext, target Position) bool {
			userItem := g.state.Active(mc.User).Item
			targetItem := g.state.Active(target).Item
			if userItem == targetItem || !removableItem(g.state, target) && targetItem != "" {
				return true
			}

			g.w.changeItem(target, userItem)
			g.w.changeItem(mc.User, targetItem)
			return true
		},
	},
	"disable": {
		OnHit: func(g *generator, mc *MoveContext, target Position) bool {
			last := g.state.Slot(target).LastUsedMove
			if last.Kind != LASTMOVE_MOVE {
				return true
			}

			g.w.applyVolatile(target, VOLATILE_DISABLE)
			return true
		},
	},
	"encore": {
		OnHit: func(g *generator, mc *MoveContext, target Position) bool {
			if g.state.Slot(target).LastUsedMove.Kind != LASTMOVE_MOVE {
				return true
			}

			if g.w.applyVolatile(target, VOLATILE_ENCORE) {
				g.w.push(ChangeVolatileDuration{Side: target.Side, Slot: target.Slot, Volatile: VOLATILE_ENCORE, Amount: 3})
			}
			return true
		},
	},
	"taunt": {
		OnHit: func(g *generator, mc *MoveContext, target Position) bool {
			if hasAbility(g.state, target, "oblivious") && !ignoresAbility(g.state, mc.User, target) {
				return true
			}

			if g.w.applyVolatile(target, VOLATILE_TAUNT) {
				g.w.push(ChangeVolatileDuration{Side: target.Side, Slot: target.Slot, Volatile: VOLATILE_TAUNT, Amount: 3})
			}
			return true
		},
	},
	"confuse-ray": {
		OnHit: func(g *generator, mc *MoveContext, target Position) bool {
			if hasAbility(g.state, target, "own-tempo") && !ignoresAbility(g.state, mc.User, target) {
				return true
			}
			if g.state.TerrainIs(TERRAIN_MISTY) && grounded(g.state, target) {
				return true
			}

			if g.w.applyVolatile(target, VOLATILE_CONFUSION) {
				g.w.push(ChangeVolatileDuration{Side: target.Side, Slot: target.Slot, Volatile: VOLATILE_CONFUSION, Amount: 3})
			}
			return true
		},
	},
	"jungle-healing": {
		OnHit: func(g *generator, mc *MoveContext, target Position) bool {
			pkm := g.state.Active(target)
			g.w.heal(target, pkm.MaxHP/4)
			if pkm.Status != STATUS_NONE {
				g.w.setStatus(target, STATUS_NONE)
			}
			return true
		},
	},
	"trick-room": {
		Try: func(g *generator, mc *MoveContext) bool {
			old := g.state.TrickRoom
			next := TrickRoom{Active: true, TurnsRemaining: TRICK_ROOM_TURNS}
			if old.Active {
				next = TrickRoom{}
			}

			g.w.push(ChangeTrickRoom{Old: old, New: next})
			return true
		},
	},
}

func tryProtect(volatile Volatile) func(g *generator, mc *MoveContext) bool {
	return func(g *generator, mc *MoveContext) bool {
		// Every protect-like move shares one chain counter
		chain := g.state.Slot(mc.User).Durations[VOLATILE_PROTECT]
		if chain == 0 {
			return true
		}

		success := float32(100)
		for range chain {
			success /= 3
		}
		g.w.oneOf([]outcome{
			{chance: 100 - success, halt: true},
			{chance: success},
		})

		return true
	}
}

func removableItem(state *State, pos Position) bool {
	item := state.Active(pos).Item
	if item == "" {
		return false
	}
	if state.Active(pos).ID == "ogerpon" || hasAbility(state, pos, "sticky-hold") {
		return false
	}

	return true
}
