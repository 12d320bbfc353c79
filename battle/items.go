package battle

import "github.com/go-logr/logr"

var itemLogger = func() logr.Logger {
	return internalLogger.WithName("item")
}

// consumeItem removes the held item after it activated
func consumeItem(w *branchWriter, pos Position) {
	itemLogger().V(1).Info("consumed", "item", w.state.Active(pos).Item, "side", pos.Side, "slot", pos.Slot)
	w.changeItem(pos, "")
}

func choiceItem(stat Stat, mult float64) Hooks {
	h := Hooks{BeforeMove: lockMove}
	switch stat {
	case STAT_SPEED:
		h.ModifySpeed = func(state *State, pos Position, speed float64) float64 {
			return speed * mult
		}
	default:
		h.ModifyAttack = func(dc *damageContext) {
			if dc.physical() == (stat == STAT_ATTACK) {
				dc.mods.attack *= mult
			}
		}
	}

	return h
}

// pinchBerry raises a stat once the holder drops to a quarter of its hp
func pinchBerry(stat Stat) Hooks {
	return Hooks{
		AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
			pkm := w.state.Active(target)
			if !pkm.Alive() || pkm.HP*4 > pkm.MaxHP {
				return
			}

			w.boost(target, stat, 1)
			consumeItem(w, target)
		},
	}
}

// typeTrigger is a single use stat boost when hit by a move of the given type
func typeTrigger(moveType PokemonType, stat Stat) Hooks {
	return Hooks{
		AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
			if mc.Move.Type != moveType || !w.state.Active(target).Alive() {
				return
			}

			w.boost(target, stat, 1)
			consumeItem(w, target)
		},
	}
}

// typeBoost is a held item that strengthens moves of one type
func typeBoost(moveType PokemonType) Hooks {
	return Hooks{
		ModifyAttack: func(dc *damageContext) {
			if dc.moveType() == moveType {
				dc.mods.power *= 1.2
			}
		},
	}
}

// terrainSeed raises a stat once the matching terrain is up
func terrainSeed(terrain TerrainKind, stat Stat) Hooks {
	activate := func(w *branchWriter, pos Position) {
		if !w.state.TerrainIs(terrain) || !w.state.Active(pos).Alive() {
			return
		}

		w.boost(pos, stat, 1)
		consumeItem(w, pos)
	}

	return Hooks{OnSwitchIn: activate, OnTerrainChange: activate}
}

func statusOrb(status Status) Hooks {
	return Hooks{
		OnEndOfTurn: func(w *branchWriter, pos Position) {
			w.inflictStatus(pos, pos, status)
		},
	}
}

var itemHooks map[string]Hooks

func init() {
	itemHooks = map[string]Hooks{
		"choice-band":  choiceItem(STAT_ATTACK, 1.5),
		"choice-specs": choiceItem(STAT_SPATTACK, 1.5),
		"choice-scarf": choiceItem(STAT_SPEED, 1.5),
		"life-orb": {
			ModifyAttack: func(dc *damageContext) {
				dc.mods.final *= 1.3
			},
			AfterMove: func(w *branchWriter, mc *MoveContext, dealt bool) {
				if !dealt || hasAbility(w.state, mc.User, "magic-guard") {
					return
				}

				w.heal(mc.User, -fraction(w.state.Active(mc.User).MaxHP, 1, 10))
			},
		},
		"expert-belt": {
			ModifyAttack: func(dc *damageContext) {
				if dc.effectiveness > 1 {
					dc.mods.final *= 1.2
				}
			},
		},
		"muscle-band": {
			ModifyAttack: func(dc *damageContext) {
				if dc.physical() {
					dc.mods.power *= 1.1
				}
			},
		},
		"wise-glasses": {
			ModifyAttack: func(dc *damageContext) {
				if !dc.physical() {
					dc.mods.power *= 1.1
				}
			},
		},
		"assault-vest": {
			ModifyDefense: func(dc *damageContext) {
				if !dc.physical() {
					dc.mods.defense *= 1.5
				}
			},
		},
		"charcoal":       typeBoost(TYPE_FIRE),
		"mystic-water":   typeBoost(TYPE_WATER),
		"miracle-seed":   typeBoost(TYPE_GRASS),
		"magnet":         typeBoost(TYPE_ELECTRIC),
		"never-melt-ice": typeBoost(TYPE_ICE),
		"black-belt":     typeBoost(TYPE_FIGHTING),
		"poison-barb":    typeBoost(TYPE_POISON),
		"soft-sand":      typeBoost(TYPE_GROUND),
		"sharp-beak":     typeBoost(TYPE_FLYING),
		"twisted-spoon":  typeBoost(TYPE_PSYCHIC),
		"silver-powder":  typeBoost(TYPE_BUG),
		"hard-stone":     typeBoost(TYPE_ROCK),
		"spell-tag":      typeBoost(TYPE_GHOST),
		"dragon-fang":    typeBoost(TYPE_DRAGON),
		"black-glasses":  typeBoost(TYPE_DARK),
		"metal-coat":     typeBoost(TYPE_STEEL),
		"silk-scarf":     typeBoost(TYPE_NORMAL),
		"fairy-feather":  typeBoost(TYPE_FAIRY),

		"sitrus-berry": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				pkm := w.state.Active(target)
				if !pkm.Alive() || pkm.HP*2 > pkm.MaxHP {
					return
				}

				w.heal(target, fraction(pkm.MaxHP, 1, 4))
				consumeItem(w, target)
			},
		},
		"liechi-berry": pinchBerry(STAT_ATTACK),
		"ganlon-berry": pinchBerry(STAT_DEFENSE),
		"petaya-berry": pinchBerry(STAT_SPATTACK),
		"apicot-berry": pinchBerry(STAT_SPDEF),
		"salac-berry":  pinchBerry(STAT_SPEED),
		"weakness-policy": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				if !w.state.Active(target).Alive() || moveEffectiveness(w.state, &mc.Move, target) <= 1 {
					return
				}

				w.boost(target, STAT_ATTACK, 2)
				w.boost(target, STAT_SPATTACK, 2)
				consumeItem(w, target)
			},
		},
		"absorb-bulb":   typeTrigger(TYPE_WATER, STAT_SPATTACK),
		"cell-battery":  typeTrigger(TYPE_ELECTRIC, STAT_ATTACK),
		"luminous-moss": typeTrigger(TYPE_WATER, STAT_SPDEF),
		"snowball":      typeTrigger(TYPE_ICE, STAT_ATTACK),
		"air-balloon": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				consumeItem(w, target)
			},
		},
		"rocky-helmet": {
			OnContact: func(w *branchWriter, mc *MoveContext, target Position) {
				if hasAbility(w.state, mc.User, "magic-guard") {
					return
				}

				w.damage(mc.User, fraction(w.state.Active(mc.User).MaxHP, 1, 6))
			},
		},

		"electric-seed": terrainSeed(TERRAIN_ELECTRIC, STAT_DEFENSE),
		"grassy-seed":   terrainSeed(TERRAIN_GRASSY, STAT_DEFENSE),
		"misty-seed":    terrainSeed(TERRAIN_MISTY, STAT_SPDEF),
		"psychic-seed":  terrainSeed(TERRAIN_PSYCHIC, STAT_SPDEF),

		"leftovers": {
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				w.heal(pos, fraction(w.state.Active(pos).MaxHP, 1, 16))
			},
		},
		"black-sludge": {
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				pkm := w.state.Active(pos)
				if pkm.HasDefensiveType(TYPE_POISON) {
					w.heal(pos, fraction(pkm.MaxHP, 1, 16))
					return
				}
				if !hasAbility(w.state, pos, "magic-guard") {
					w.damage(pos, fraction(pkm.MaxHP, 1, 8))
				}
			},
		},
		"flame-orb": statusOrb(STATUS_BURN),
		"toxic-orb": statusOrb(STATUS_TOXIC),
	}
}
