package battle

import (
	"math"

	"github.com/go-logr/logr"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// damageMods collects the multipliers hooks contribute to one hit
type damageMods struct {
	power   float64
	attack  float64
	defense float64
	final   float64

	// Replaces the type chart result when set
	effectivenessOverride float64
	overrideEffectiveness bool
}

type damageContext struct {
	state    *State
	move     *MoveContext
	attacker Position
	target   Position
	// Type chart result before any override
	effectiveness float64
	mods          *damageMods
}

func (dc *damageContext) attackerPokemon() *Pokemon {
	return dc.state.Active(dc.attacker)
}

func (dc *damageContext) targetPokemon() *Pokemon {
	return dc.state.Active(dc.target)
}

func (dc *damageContext) physical() bool {
	return dc.move.Move.DamageClass == DAMAGETYPE_PHYSICAL
}

func (dc *damageContext) moveType() PokemonType {
	return dc.move.Move.Type
}

// damageRoll is the damage of one hit before the random roll
type damageRoll struct {
	preRoll       float64
	effectiveness float64
}

func (r damageRoll) roll(percent int) int {
	dmg := int(math.Floor(r.preRoll * float64(percent) / 100))
	if dmg < 1 && r.effectiveness > 0 {
		return 1
	}

	return dmg
}

func (r damageRoll) average() int {
	dmg := int(math.Floor(r.preRoll * AVERAGE_DAMAGE_ROLL))
	if dmg < 1 && r.effectiveness > 0 {
		return 1
	}

	return dmg
}

// koChance is the percentage of rolls that deal at least hp damage, and the highest roll that does not
func (r damageRoll) koChance(hp int) (float32, int) {
	kos := 0
	survive := 0
	for percent := 85; percent <= 100; percent++ {
		dmg := r.roll(percent)
		if dmg >= hp {
			kos++
		} else {
			survive = max(survive, dmg)
		}
	}

	return float32(kos) * 100 / 16, survive
}

func stageMultiplier(stage int) float64 {
	return StageMultipliers[min(max(stage, MIN_BOOST), MAX_BOOST)]
}

func stabMultiplier(state *State, pos Position, moveType PokemonType) float64 {
	pkm := state.Active(pos)
	stab := 1.0

	switch {
	case moveType == TYPE_STELLAR:
		if pkm.Terastallized && pkm.TeraType == TYPE_STELLAR {
			stab = 1.5
		}
	case pkm.Terastallized && pkm.TeraType == moveType:
		stab = 1.5
		if pkm.HasType(moveType) {
			stab = 2
		}
	case pkm.HasType(moveType):
		stab = 1.5
	}

	if stab > 1 && hasAbility(state, pos, "adaptability") {
		if stab == 2 {
			return 2.25
		}
		return 2
	}

	return stab
}

func weatherMultiplier(state *State, moveType PokemonType) float64 {
	switch {
	case state.WeatherIs(WEATHER_RAIN) && moveType == TYPE_WATER:
		return 1.5
	case state.WeatherIs(WEATHER_RAIN) && moveType == TYPE_FIRE:
		return 0.5
	case state.WeatherIs(WEATHER_SUN) && moveType == TYPE_FIRE:
		return 1.5
	case state.WeatherIs(WEATHER_SUN) && moveType == TYPE_WATER:
		return 0.5
	}

	return 1
}

func terrainMultiplier(state *State, attacker Position, target Position, moveType PokemonType) float64 {
	if grounded(state, attacker) {
		switch {
		case state.TerrainIs(TERRAIN_ELECTRIC) && moveType == TYPE_ELECTRIC,
			state.TerrainIs(TERRAIN_GRASSY) && moveType == TYPE_GRASS,
			state.TerrainIs(TERRAIN_PSYCHIC) && moveType == TYPE_PSYCHIC:
			return 1.3
		}
	}
	if grounded(state, target) && state.TerrainIs(TERRAIN_MISTY) && moveType == TYPE_DRAGON {
		return 0.5
	}

	return 1
}

// moveEffectiveness is the type chart multiplier of a move against an active pokemon
func moveEffectiveness(state *State, move *MoveData, target Position) float64 {
	pkm := state.Active(target)
	if move.Type == TYPE_STELLAR {
		if pkm.Terastallized {
			return 2
		}
		return 1
	}
	if move.Type == TYPE_TYPELESS {
		return 1
	}

	return TypeEffectiveness(move.Type, pkm.DefensiveTypes())
}

// calculateDamage computes one hit of mc against target. It reports false when the hit has no effect.
func calculateDamage(state *State, mc *MoveContext, target Position) (damageRoll, bool) {
	attacker := state.Active(mc.User)
	defender := state.Active(target)
	move := &mc.Move

	basePower := float64(movePower(state, mc, target))
	if basePower <= 0 {
		return damageRoll{}, false
	}

	mods := &damageMods{power: 1, attack: 1, defense: 1, final: 1}
	dc := &damageContext{
		state:         state,
		move:          mc,
		attacker:      mc.User,
		target:        target,
		effectiveness: moveEffectiveness(state, move, target),
		mods:          mods,
	}

	if state.Slot(mc.User).Volatiles.Has(VOLATILE_HELPINGHAND) {
		mods.power *= 1.5
	}
	if mc.Spread {
		mods.power *= SPREAD_MODIFIER
	}
	mods.power *= terrainMultiplier(state, mc.User, target, move.Type)

	for _, h := range hooksAt(state, mc.User) {
		if h.ModifyAttack != nil {
			h.ModifyAttack(dc)
		}
	}
	for _, h := range defenderHooksAt(state, mc.User, target) {
		if h.ModifyDefense != nil {
			h.ModifyDefense(dc)
		}
	}
	ally := target.Ally()
	if state.Active(ally).Alive() {
		allyAbility := abilityHooks[effectiveAbility(state, ally)]
		if allyAbility.ModifyAlly != nil && !ignoresAbility(state, mc.User, ally) {
			allyAbility.ModifyAlly(dc)
		}
	}

	effectiveness := dc.effectiveness
	if mods.overrideEffectiveness && effectiveness > 0 {
		effectiveness = mods.effectivenessOverride
	}
	if effectiveness == 0 {
		return damageRoll{}, false
	}

	attackStat, defenseStat := STAT_SPATTACK, STAT_SPDEF
	if dc.physical() {
		attackStat, defenseStat = STAT_ATTACK, STAT_DEFENSE
	}

	a := float64(attacker.StatValue(attackStat)) * stageMultiplier(state.Slot(mc.User).Boosts[attackStat]) * mods.attack
	d := float64(defender.StatValue(defenseStat)) * stageMultiplier(state.Slot(target).Boosts[defenseStat]) * mods.defense
	if state.WeatherIs(WEATHER_SANDSTORM) && !dc.physical() && defender.HasDefensiveType(TYPE_ROCK) {
		d *= 1.5
	}
	if state.WeatherIs(WEATHER_SNOW) && dc.physical() && defender.HasDefensiveType(TYPE_ICE) {
		d *= 1.5
	}

	power := basePower * mods.power
	levelFactor := math.Floor(float64(2*attacker.Level)/5 + 2)
	base := math.Floor(math.Floor(levelFactor*power*a/d)/50) + 2

	final := stabMultiplier(state, mc.User, move.Type)
	final *= effectiveness
	final *= weatherMultiplier(state, move.Type)
	if attacker.Status == STATUS_BURN && dc.physical() && !hasAbility(state, mc.User, "guts") {
		final *= 0.5
	}
	if screenUp(state, target.Side, dc.physical()) {
		final *= 2732.0 / 4096.0
	}
	final *= mods.final

	result := damageRoll{
		preRoll:       math.Floor(base * final),
		effectiveness: effectiveness,
	}

	damageLogger().V(2).Info("damage",
		"move", move.Name,
		"attacker", attacker.ID,
		"defender", defender.ID,
		"power", power,
		"attack", a,
		"defense", d,
		"base", base,
		"modifier", final,
		"effectiveness", effectiveness,
		"average", result.average())

	return result, true
}

func screenUp(state *State, side SideRef, physical bool) bool {
	conditions := state.Side(side).Conditions
	if physical {
		return conditions[SIDECOND_REFLECT] > 0
	}

	return conditions[SIDECOND_LIGHT_SCREEN] > 0
}

// movePower is the base power of mc against target after move specific rules
func movePower(state *State, mc *MoveContext, target Position) int {
	effect := moveEffects[mc.Move.Name]
	if effect.Power != nil {
		return effect.Power(state, mc, target)
	}

	return mc.Move.Power
}
