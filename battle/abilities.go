package battle

import (
	"slices"

	"github.com/go-logr/logr"
)

var abilityLogger = func() logr.Logger {
	return internalLogger.WithName("ability")
}

func abilityActivated(ability string, pos Position) {
	abilityLogger().V(1).Info("", "ability", ability, "side", pos.Side, "slot", pos.Slot)
}

// retyped reports whether a hook changed the move away from its listed type
func retyped(mc *MoveContext, from PokemonType) bool {
	return GlobalData.move(mc.Move.Name).Type == from && mc.Move.Type != from
}

// Abilities that turn normal moves into another type with a power boost
func normalRetype(to PokemonType) Hooks {
	return Hooks{
		ModifyMove: func(state *State, mc *MoveContext) {
			if mc.Move.Type == TYPE_NORMAL && mc.Move.IsDamaging() {
				mc.Move.Type = to
			}
		},
		ModifyAttack: func(dc *damageContext) {
			if retyped(dc.move, TYPE_NORMAL) {
				dc.mods.power *= 1.2
			}
		},
	}
}

// Abilities that absorb a move type and heal a quarter instead
func absorbHeal(moveType PokemonType) Hooks {
	return Hooks{
		TryHit: func(w *branchWriter, mc *MoveContext, target Position) bool {
			if mc.Move.Type != moveType {
				return true
			}

			abilityActivated("absorb", target)
			w.heal(target, fraction(w.state.Active(target).MaxHP, 1, 4))
			return false
		},
	}
}

// Abilities that absorb a move type and raise a stat instead
func absorbBoost(moveType PokemonType, stat Stat, amount int) Hooks {
	return Hooks{
		TryHit: func(w *branchWriter, mc *MoveContext, target Position) bool {
			if mc.Move.Type != moveType {
				return true
			}

			w.boost(target, stat, amount)
			return false
		},
	}
}

// Lightning Rod and Storm Drain draw single target moves of their type, then absorb them
func typeRedirect(moveType PokemonType) Hooks {
	h := absorbBoost(moveType, STAT_SPATTACK, 1)
	h.Redirects = func(state *State, redirector Position, mc *MoveContext) bool {
		return mc.Move.Type == moveType && mc.Move.Target == TARGET_NORMAL
	}

	return h
}

func weatherSetter(kind WeatherKind) Hooks {
	return Hooks{
		OnSwitchIn: func(w *branchWriter, pos Position) {
			if w.setWeather(kind, WEATHER_ABILITY_TURNS) {
				abilityActivated("weather", pos)
			}
		},
	}
}

func terrainSetter(kind TerrainKind) Hooks {
	return Hooks{
		OnSwitchIn: func(w *branchWriter, pos Position) {
			if w.setTerrain(kind, TERRAIN_ABILITY_TURNS) {
				abilityActivated("terrain", pos)
			}
		},
	}
}

// weatherSpeed doubles speed in the given weather
func weatherSpeed(kind WeatherKind) Hooks {
	return Hooks{
		ModifySpeed: func(state *State, pos Position, speed float64) float64 {
			if state.WeatherIs(kind) {
				return speed * 2
			}
			return speed
		},
	}
}

// pinchBoost is Blaze and friends: a type gets 1.5x attack at a third of hp or less
func pinchBoost(moveType PokemonType) Hooks {
	return Hooks{
		ModifyAttack: func(dc *damageContext) {
			pkm := dc.attackerPokemon()
			if dc.moveType() == moveType && pkm.HP*3 <= pkm.MaxHP {
				dc.mods.attack *= 1.5
			}
		},
	}
}

// flagPower multiplies the power of moves carrying a flag
func flagPower(flag string, mult float64) Hooks {
	return Hooks{
		ModifyAttack: func(dc *damageContext) {
			if dc.move.Move.HasFlag(flag) {
				dc.mods.power *= mult
			}
		},
	}
}

// typeResist halves damage taken from one move type
func typeResist(types ...PokemonType) Hooks {
	return Hooks{
		ModifyDefense: func(dc *damageContext) {
			for _, t := range types {
				if dc.moveType() == t {
					dc.mods.final *= 0.5
					return
				}
			}
		},
	}
}

// onHitBoost raises a stat of the holder after it takes damage from a move of the given types, any type when none are given
func onHitBoost(stat Stat, amount int, types ...PokemonType) Hooks {
	return Hooks{
		AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
			if !w.state.Active(target).Alive() {
				return
			}
			if len(types) > 0 && !slices.Contains(types, mc.Move.Type) {
				return
			}

			w.boost(target, stat, amount)
		},
	}
}

// contactStatus inflicts a status on the attacker 30% of the time
func contactStatus(status Status) Hooks {
	return Hooks{
		OnContact: func(w *branchWriter, mc *MoveContext, target Position) {
			if !canStatus(w.state, target, mc.User, status) {
				return
			}

			w.chance(30, func() { w.inflictStatus(target, mc.User, status) })
		},
	}
}

func contactChip(w *branchWriter, mc *MoveContext, target Position) {
	if hasAbility(w.state, mc.User, "magic-guard") {
		return
	}

	w.damage(mc.User, fraction(w.state.Active(mc.User).MaxHP, 1, 8))
}

func spreadMummy(w *branchWriter, mc *MoveContext, target Position) {
	attacker := w.state.Active(mc.User)
	if attacker.Ability == "mummy" || hasItem(w.state, mc.User, "ability-shield") {
		return
	}

	abilityActivated("mummy", target)
	w.changeAbility(mc.User, "mummy")
}

// protean changes the user to the type of the move it is about to use
func protean(w *branchWriter, mc *MoveContext) {
	pkm := w.state.Active(mc.User)
	moveType := mc.Move.Type
	if pkm.Terastallized || w.state.Slot(mc.User).Volatiles.Has(VOLATILE_TYPECHANGE) {
		return
	}
	if moveType == TYPE_TYPELESS || moveType == TYPE_STELLAR {
		return
	}

	types := [2]PokemonType{moveType, TYPE_TYPELESS}
	if pkm.Types == types {
		return
	}

	abilityActivated("protean", mc.User)
	w.changeTypes(mc.User, types)
	w.applyVolatile(mc.User, VOLATILE_TYPECHANGE)
}

// lockMove disables every move other than the one being used
func lockMove(w *branchWriter, mc *MoveContext) {
	pkm := w.state.Active(mc.User)
	index := w.state.ActiveIndex(mc.User)

	for i, m := range pkm.Moves {
		if i != mc.Choice.MoveIndex && !m.Disabled {
			w.push(DisableMove{Side: mc.User.Side, Index: index, Move: i})
		}
	}
}

// gulpMissileRetaliate fires the catch a gulping or gorging cramorant carries back at its attacker
func gulpMissileRetaliate(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
	forme := w.state.Active(target).ID
	if forme != "cramorant-gulping" && forme != "cramorant-gorging" {
		return
	}

	abilityActivated("gulp-missile", target)
	w.changeForme(target, "cramorant")
	if !w.state.Active(mc.User).Alive() {
		return
	}

	chip := fraction(w.state.Active(mc.User).MaxHP, 1, 4)
	if forme == "cramorant-gorging" {
		w.damage(mc.User, chip)
		w.inflictStatus(target, mc.User, STATUS_PARA)
		return
	}

	w.boostFrom(target, mc.User, STAT_DEFENSE, -1)
	w.damage(mc.User, chip)
}

var abilityHooks map[string]Hooks

// The table is filled in init because terrain setters reach it again through setTerrain
func init() {
	abilityHooks = map[string]Hooks{
		// Turn order
		"prankster": {
			ModifyPriority: func(state *State, user Position, move *MoveData, priority int) int {
				if !move.IsDamaging() && !move.IsNil() {
					return priority + 1
				}
				return priority
			},
		},
		"gale-wings": {
			ModifyPriority: func(state *State, user Position, move *MoveData, priority int) int {
				pkm := state.Active(user)
				if move.Type == TYPE_FLYING && pkm.HP == pkm.MaxHP {
					return priority + 1
				}
				return priority
			},
		},
		"triage": {
			ModifyPriority: func(state *State, user Position, move *MoveData, priority int) int {
				if move.HasFlag(FLAG_HEAL) || move.Drain > 0 {
					return priority + 3
				}
				return priority
			},
		},
		"swift-swim":  weatherSpeed(WEATHER_RAIN),
		"chlorophyll": weatherSpeed(WEATHER_SUN),
		"sand-rush":   weatherSpeed(WEATHER_SANDSTORM),
		"slush-rush":  weatherSpeed(WEATHER_SNOW),
		"quick-feet": {
			ModifySpeed: func(state *State, pos Position, speed float64) float64 {
				if state.Active(pos).Status != STATUS_NONE {
					return speed * 1.5
				}
				return speed
			},
		},

		// Attacker
		"protean": {BeforeMove: protean},
		"libero":  {BeforeMove: protean},
		"gorilla-tactics": {
			BeforeMove: lockMove,
			ModifyAttack: func(dc *damageContext) {
				if dc.physical() {
					dc.mods.attack *= 1.5
				}
			},
		},
		"gulp-missile": {
			BeforeMove: func(w *branchWriter, mc *MoveContext) {
				pkm := w.state.Active(mc.User)
				if pkm.ID != "cramorant" || (mc.Move.Name != "surf" && mc.Move.Name != "dive") {
					return
				}

				if pkm.HP*2 > pkm.MaxHP {
					w.changeForme(mc.User, "cramorant-gulping")
				} else {
					w.changeForme(mc.User, "cramorant-gorging")
				}
			},
			AfterDamageTaken: gulpMissileRetaliate,
		},
		"galvanize":   normalRetype(TYPE_ELECTRIC),
		"pixilate":    normalRetype(TYPE_FAIRY),
		"aerilate":    normalRetype(TYPE_FLYING),
		"refrigerate": normalRetype(TYPE_ICE),
		"normalize": {
			ModifyMove: func(state *State, mc *MoveContext) {
				if mc.Move.IsDamaging() {
					mc.Move.Type = TYPE_NORMAL
				}
			},
		},
		"liquid-voice": {
			ModifyMove: func(state *State, mc *MoveContext) {
				if mc.Move.HasFlag(FLAG_SOUND) {
					mc.Move.Type = TYPE_WATER
				}
			},
		},
		"huge-power": {
			ModifyAttack: func(dc *damageContext) {
				if dc.physical() {
					dc.mods.attack *= 2
				}
			},
		},
		"pure-power": {
			ModifyAttack: func(dc *damageContext) {
				if dc.physical() {
					dc.mods.attack *= 2
				}
			},
		},
		"hustle": {
			ModifyAttack: func(dc *damageContext) {
				if dc.physical() {
					dc.mods.attack *= 1.5
				}
			},
		},
		"guts": {
			ModifyAttack: func(dc *damageContext) {
				if dc.physical() && dc.attackerPokemon().Status != STATUS_NONE {
					dc.mods.attack *= 1.5
				}
			},
		},
		"solar-power": {
			ModifyAttack: func(dc *damageContext) {
				if !dc.physical() && dc.state.WeatherIs(WEATHER_SUN) {
					dc.mods.attack *= 1.5
				}
			},
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				if w.state.WeatherIs(WEATHER_SUN) {
					w.damage(pos, fraction(w.state.Active(pos).MaxHP, 1, 8))
				}
			},
		},
		"technician": {
			ModifyAttack: func(dc *damageContext) {
				if movePower(dc.state, dc.move, dc.target) <= 60 {
					dc.mods.power *= 1.5
				}
			},
		},
		"transistor": {
			ModifyAttack: func(dc *damageContext) {
				if dc.moveType() == TYPE_ELECTRIC {
					dc.mods.attack *= 1.3
				}
			},
		},
		"dragons-maw": {
			ModifyAttack: func(dc *damageContext) {
				if dc.moveType() == TYPE_DRAGON {
					dc.mods.attack *= 1.5
				}
			},
		},
		"flash-fire": {
			TryHit: func(w *branchWriter, mc *MoveContext, target Position) bool {
				if mc.Move.Type != TYPE_FIRE {
					return true
				}

				w.applyVolatile(target, VOLATILE_FLASHFIRE)
				return false
			},
			ModifyAttack: func(dc *damageContext) {
				if dc.moveType() == TYPE_FIRE && dc.state.Slot(dc.attacker).Volatiles.Has(VOLATILE_FLASHFIRE) {
					dc.mods.attack *= 1.5
				}
			},
		},
		"blaze":         pinchBoost(TYPE_FIRE),
		"torrent":       pinchBoost(TYPE_WATER),
		"overgrow":      pinchBoost(TYPE_GRASS),
		"swarm":         pinchBoost(TYPE_BUG),
		"tough-claws":   flagPower(FLAG_CONTACT, 1.3),
		"strong-jaw":    flagPower(FLAG_BITE, 1.5),
		"iron-fist":     flagPower(FLAG_PUNCH, 1.2),
		"mega-launcher": flagPower(FLAG_PULSE, 1.5),
		"sharpness":     flagPower(FLAG_SLICING, 1.5),
		"punk-rock": {
			ModifyAttack: func(dc *damageContext) {
				if dc.move.Move.HasFlag(FLAG_SOUND) {
					dc.mods.power *= 1.3
				}
			},
			ModifyDefense: func(dc *damageContext) {
				if dc.move.Move.HasFlag(FLAG_SOUND) {
					dc.mods.final *= 0.5
				}
			},
		},

		// Defender immunities
		"volt-absorb":     absorbHeal(TYPE_ELECTRIC),
		"water-absorb":    absorbHeal(TYPE_WATER),
		"earth-eater":     absorbHeal(TYPE_GROUND),
		"lightning-rod":   typeRedirect(TYPE_ELECTRIC),
		"storm-drain":     typeRedirect(TYPE_WATER),
		"sap-sipper":      absorbBoost(TYPE_GRASS, STAT_ATTACK, 1),
		"motor-drive":     absorbBoost(TYPE_ELECTRIC, STAT_SPEED, 1),
		"well-baked-body": absorbBoost(TYPE_FIRE, STAT_DEFENSE, 2),
		"levitate": {
			TryHit: func(w *branchWriter, mc *MoveContext, target Position) bool {
				return mc.Move.Type != TYPE_GROUND || !mc.Move.IsDamaging()
			},
		},
		"dry-skin": {
			TryHit: absorbHeal(TYPE_WATER).TryHit,
			ModifyDefense: func(dc *damageContext) {
				if dc.moveType() == TYPE_FIRE {
					dc.mods.power *= 1.25
				}
			},
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				maxHP := w.state.Active(pos).MaxHP
				switch {
				case w.state.WeatherIs(WEATHER_RAIN):
					w.heal(pos, fraction(maxHP, 1, 8))
				case w.state.WeatherIs(WEATHER_SUN):
					w.damage(pos, fraction(maxHP, 1, 8))
				}
			},
		},
		"good-as-gold": {
			TryHit: func(w *branchWriter, mc *MoveContext, target Position) bool {
				return mc.Move.IsDamaging() || mc.User.Side == target.Side
			},
		},
		"soundproof": {
			TryHit: func(w *branchWriter, mc *MoveContext, target Position) bool {
				return !mc.Move.HasFlag(FLAG_SOUND)
			},
		},
		"telepathy": {
			TryHit: func(w *branchWriter, mc *MoveContext, target Position) bool {
				return mc.User.Side != target.Side || !mc.Move.IsDamaging()
			},
		},
		"wonder-guard": {
			TryHit: func(w *branchWriter, mc *MoveContext, target Position) bool {
				return !mc.Move.IsDamaging() || moveEffectiveness(w.state, &mc.Move, target) > 1
			},
		},

		// Defender damage reduction
		"disguise": {
			BeforeDamage: func(w *branchWriter, mc *MoveContext, target Position) bool {
				pkm := w.state.Active(target)
				if pkm.ID != "mimikyu" && pkm.ID != "mimikyu-totem" {
					return true
				}

				abilityActivated("disguise", target)
				w.changeForme(target, "mimikyu-busted")
				w.damage(target, fraction(pkm.MaxHP, 1, 8))
				return false
			},
		},
		"ice-face": {
			BeforeDamage: func(w *branchWriter, mc *MoveContext, target Position) bool {
				if w.state.Active(target).ID != "eiscue" || mc.Move.DamageClass != DAMAGETYPE_PHYSICAL {
					return true
				}

				abilityActivated("ice-face", target)
				w.changeForme(target, "eiscue-noice")
				return false
			},
		},
		"tera-shell": {
			ModifyDefense: func(dc *damageContext) {
				pkm := dc.targetPokemon()
				if pkm.HP == pkm.MaxHP && dc.effectiveness > 0 {
					dc.mods.effectivenessOverride = 0.5
					dc.mods.overrideEffectiveness = true
				}
			},
		},
		"multiscale": {
			ModifyDefense: func(dc *damageContext) {
				pkm := dc.targetPokemon()
				if pkm.HP == pkm.MaxHP {
					dc.mods.final *= 0.5
				}
			},
		},
		"shadow-shield": {
			ModifyDefense: func(dc *damageContext) {
				pkm := dc.targetPokemon()
				if pkm.HP == pkm.MaxHP {
					dc.mods.final *= 0.5
				}
			},
		},
		"thick-fat":      typeResist(TYPE_FIRE, TYPE_ICE),
		"heatproof":      typeResist(TYPE_FIRE),
		"water-bubble":   typeResist(TYPE_FIRE),
		"purifying-salt": typeResist(TYPE_GHOST),
		"fur-coat": {
			ModifyDefense: func(dc *damageContext) {
				if dc.physical() {
					dc.mods.defense *= 2
				}
			},
		},
		"marvel-scale": {
			ModifyDefense: func(dc *damageContext) {
				if dc.physical() && dc.targetPokemon().Status != STATUS_NONE {
					dc.mods.defense *= 1.5
				}
			},
		},
		"ice-scales": {
			ModifyDefense: func(dc *damageContext) {
				if !dc.physical() {
					dc.mods.final *= 0.5
				}
			},
		},
		"fluffy": {
			ModifyDefense: func(dc *damageContext) {
				if dc.move.Move.HasFlag(FLAG_CONTACT) {
					dc.mods.final *= 0.5
				}
				if dc.moveType() == TYPE_FIRE {
					dc.mods.final *= 2
				}
			},
		},
		"filter":      superEffectiveResist(),
		"solid-rock":  superEffectiveResist(),
		"prism-armor": superEffectiveResist(),
		"friend-guard": {
			ModifyAlly: func(dc *damageContext) {
				dc.mods.power *= 0.75
			},
		},

		// Reactions to being hit
		"stamina":          onHitBoost(STAT_DEFENSE, 1),
		"justified":        onHitBoost(STAT_ATTACK, 1, TYPE_DARK),
		"rattled":          onHitBoost(STAT_SPEED, 1, TYPE_BUG, TYPE_DARK, TYPE_GHOST),
		"steam-engine":     onHitBoost(STAT_SPEED, 6, TYPE_FIRE, TYPE_WATER),
		"water-compaction": onHitBoost(STAT_DEFENSE, 2, TYPE_WATER),
		"thermal-exchange": onHitBoost(STAT_ATTACK, 1, TYPE_FIRE),
		"weak-armor": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				if !w.state.Active(target).Alive() || mc.Move.DamageClass != DAMAGETYPE_PHYSICAL {
					return
				}

				w.boost(target, STAT_DEFENSE, -1)
				w.boost(target, STAT_SPEED, 2)
			},
		},
		"berserk": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				pkm := w.state.Active(target)
				if pkm.Alive() && hpBefore*2 > pkm.MaxHP && pkm.HP*2 <= pkm.MaxHP {
					w.boost(target, STAT_SPATTACK, 1)
				}
			},
		},
		"color-change": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				pkm := w.state.Active(target)
				moveType := mc.Move.Type
				if !pkm.Alive() || pkm.HasType(moveType) || moveType == TYPE_TYPELESS || moveType == TYPE_STELLAR {
					return
				}

				w.changeTypes(target, [2]PokemonType{moveType, TYPE_TYPELESS})
			},
		},
		"cotton-down": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				if mc.User != target && w.state.Active(mc.User).Alive() {
					w.boostFrom(target, mc.User, STAT_SPEED, -1)
				}
			},
		},
		"sand-spit": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				w.setWeather(WEATHER_SANDSTORM, WEATHER_ABILITY_TURNS)
			},
		},
		"seed-sower": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				w.setTerrain(TERRAIN_GRASSY, TERRAIN_ABILITY_TURNS)
			},
		},
		"toxic-debris": {
			AfterDamageTaken: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				side := target.Side.Opposite()
				if mc.Move.DamageClass == DAMAGETYPE_PHYSICAL && w.state.Side(side).Conditions[SIDECOND_TOXIC_SPIKES] < 2 {
					w.addSideCondition(side, SIDECOND_TOXIC_SPIKES, 1)
				}
			},
		},

		// Contact
		"rough-skin":       {OnContact: contactChip},
		"iron-barbs":       {OnContact: contactChip},
		"mummy":            {OnContact: spreadMummy},
		"lingering-aroma":  {OnContact: spreadMummy},
		"wandering-spirit": {OnContact: spreadMummy},
		"static":           contactStatus(STATUS_PARA),
		"flame-body":       contactStatus(STATUS_BURN),
		"poison-point":     contactStatus(STATUS_POISON),
		"gooey": {
			OnContact: func(w *branchWriter, mc *MoveContext, target Position) {
				w.boostFrom(target, mc.User, STAT_SPEED, -1)
			},
		},
		"tangling-hair": {
			OnContact: func(w *branchWriter, mc *MoveContext, target Position) {
				w.boostFrom(target, mc.User, STAT_SPEED, -1)
			},
		},

		// Fainting
		"aftermath": {
			OnFaint: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				if !mc.Move.HasFlag(FLAG_CONTACT) || !w.state.Active(mc.User).Alive() || hasAbility(w.state, mc.User, "magic-guard") {
					return
				}

				w.damage(mc.User, fraction(w.state.Active(mc.User).MaxHP, 1, 4))
			},
		},
		"innards-out": {
			OnFaint: func(w *branchWriter, mc *MoveContext, target Position, hpBefore int) {
				if mc.User.Side == target.Side || !w.state.Active(mc.User).Alive() {
					return
				}

				w.damage(mc.User, hpBefore)
			},
		},

		// Switching
		"intimidate": {
			OnSwitchIn: func(w *branchWriter, pos Position) {
				for _, slot := range []SlotRef{SLOT_A, SLOT_B} {
					foe := Position{Side: pos.Side.Opposite(), Slot: slot}
					if !w.state.Active(foe).Alive() || w.state.Slot(foe).Volatiles.Has(VOLATILE_COMMANDING) {
						continue
					}

					switch effectiveAbility(w.state, foe) {
					case "oblivious", "own-tempo", "inner-focus", "scrappy":
						continue
					case "guard-dog":
						w.boost(foe, STAT_ATTACK, 1)
						continue
					}

					w.boostFrom(pos, foe, STAT_ATTACK, -1)
				}
			},
		},
		"drizzle":        weatherSetter(WEATHER_RAIN),
		"drought":        weatherSetter(WEATHER_SUN),
		"sand-stream":    weatherSetter(WEATHER_SANDSTORM),
		"snow-warning":   weatherSetter(WEATHER_SNOW),
		"electric-surge": terrainSetter(TERRAIN_ELECTRIC),
		"grassy-surge":   terrainSetter(TERRAIN_GRASSY),
		"misty-surge":    terrainSetter(TERRAIN_MISTY),
		"psychic-surge":  terrainSetter(TERRAIN_PSYCHIC),
		"regenerator": {
			OnSwitchOut: func(w *branchWriter, pos Position) {
				w.heal(pos, fraction(w.state.Active(pos).MaxHP, 1, 3))
			},
		},
		"natural-cure": {
			OnSwitchOut: func(w *branchWriter, pos Position) {
				w.setStatus(pos, STATUS_NONE)
			},
		},

		// End of turn
		"speed-boost": {
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				w.boost(pos, STAT_SPEED, 1)
			},
		},
		"rain-dish": {
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				if w.state.WeatherIs(WEATHER_RAIN) {
					w.heal(pos, fraction(w.state.Active(pos).MaxHP, 1, 16))
				}
			},
		},
		"ice-body": {
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				if w.state.WeatherIs(WEATHER_SNOW) {
					w.heal(pos, fraction(w.state.Active(pos).MaxHP, 1, 16))
				}
			},
		},
		"hydration": {
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				if w.state.WeatherIs(WEATHER_RAIN) {
					w.setStatus(pos, STATUS_NONE)
				}
			},
		},
		"shed-skin": {
			OnEndOfTurn: func(w *branchWriter, pos Position) {
				if w.state.Active(pos).Status != STATUS_NONE {
					w.chance(100.0/3, func() { w.setStatus(pos, STATUS_NONE) })
				}
			},
		},
	}
}

func superEffectiveResist() Hooks {
	return Hooks{
		ModifyDefense: func(dc *damageContext) {
			if dc.effectiveness > 1 {
				dc.mods.final *= 0.75
			}
		},
	}
}
