package battle

// Volatiles that only last for the turn they were applied
var perTurnVolatiles = []Volatile{
	VOLATILE_FOLLOWME,
	VOLATILE_RAGEPOWDER,
	VOLATILE_HELPINGHAND,
	VOLATILE_FLINCH,
}

// Volatiles that count down at the end of each turn and wear off at zero
var timedVolatiles = []Volatile{
	VOLATILE_TAUNT,
	VOLATILE_ENCORE,
	VOLATILE_CONFUSION,
	VOLATILE_LOCKEDMOVE,
}

// Side conditions that lose a turn at the end of each turn
var timedSideConditions = []SideCondition{
	SIDECOND_TAILWIND,
	SIDECOND_REFLECT,
	SIDECOND_LIGHT_SCREEN,
}

// endOfTurn runs the residual effects of a turn in their fixed order
func (g *generator) endOfTurn() step {
	return sequence(
		do(g.eotStatusDamage),
		do(g.eotItems),
		do(g.eotWeatherDamage),
		do(g.eotAbilities),
		do(g.eotTerrainHeal),
		do(g.eotSideConditions),
		do(g.eotVolatileDurations),
		do(g.eotFieldCountdown),
	)
}

func (g *generator) eotStatusDamage() bool {
	state, w := g.state, g.w

	for _, pos := range activePositions(state) {
		pkm := state.Active(pos)
		if hasAbility(state, pos, "magic-guard") {
			continue
		}

		switch pkm.Status {
		case STATUS_BURN:
			amount := fraction(pkm.MaxHP, 1, 16)
			if hasAbility(state, pos, "heatproof") {
				amount = fraction(pkm.MaxHP, 1, 32)
			}
			w.damage(pos, amount)
		case STATUS_POISON, STATUS_TOXIC:
			if hasAbility(state, pos, "poison-heal") {
				w.heal(pos, fraction(pkm.MaxHP, 1, 8))
				continue
			}

			if pkm.Status == STATUS_POISON {
				w.damage(pos, fraction(pkm.MaxHP, 1, 8))
				continue
			}

			count := state.Slot(pos).Durations[VOLATILE_TOXIC_COUNT] + 1
			w.push(ChangeVolatileDuration{Side: pos.Side, Slot: pos.Slot, Volatile: VOLATILE_TOXIC_COUNT, Amount: 1})
			w.damage(pos, fraction(pkm.MaxHP, count, 16))
		default:
			continue
		}

		eotLogger().V(2).Info("status damage", "pokemon", pkm.ID, "hp", pkm.HP)
	}

	return true
}

func (g *generator) eotItems() bool {
	state := g.state

	for _, pos := range activePositions(state) {
		h := itemHooks[state.Active(pos).Item]
		if h.OnEndOfTurn != nil && state.Active(pos).Alive() {
			h.OnEndOfTurn(g.w, pos)
		}
	}

	return true
}

func sandImmune(state *State, pos Position) bool {
	pkm := state.Active(pos)
	for _, t := range []PokemonType{TYPE_ROCK, TYPE_GROUND, TYPE_STEEL} {
		if pkm.HasDefensiveType(t) {
			return true
		}
	}
	if hasItem(state, pos, "safety-goggles") {
		return true
	}

	switch effectiveAbility(state, pos) {
	case "sand-veil", "sand-rush", "sand-force", "overcoat", "magic-guard":
		return true
	}

	return false
}

func (g *generator) eotWeatherDamage() bool {
	state := g.state
	if !state.WeatherIs(WEATHER_SANDSTORM) {
		return true
	}

	for _, pos := range activePositions(state) {
		if state.Active(pos).Alive() && !sandImmune(state, pos) {
			g.w.damage(pos, fraction(state.Active(pos).MaxHP, 1, 16))
		}
	}

	return true
}

func (g *generator) eotAbilities() bool {
	state := g.state

	for _, pos := range activePositions(state) {
		h := abilityHooks[effectiveAbility(state, pos)]
		if h.OnEndOfTurn != nil && state.Active(pos).Alive() {
			h.OnEndOfTurn(g.w, pos)
		}
	}

	return true
}

func (g *generator) eotTerrainHeal() bool {
	state := g.state
	if !state.TerrainIs(TERRAIN_GRASSY) {
		return true
	}

	for _, pos := range activePositions(state) {
		if grounded(state, pos) {
			g.w.heal(pos, fraction(state.Active(pos).MaxHP, 1, 16))
		}
	}

	return true
}

func (g *generator) eotSideConditions() bool {
	state, w := g.state, g.w

	for _, ref := range []SideRef{SIDE_ONE, SIDE_TWO} {
		conditions := state.Side(ref).Conditions
		for _, condition := range timedSideConditions {
			if conditions[condition] > 0 {
				w.addSideCondition(ref, condition, -1)
			}
		}
		w.addSideCondition(ref, SIDECOND_WIDE_GUARD, -conditions[SIDECOND_WIDE_GUARD])
	}

	for _, pos := range declarationOrder {
		// A fainted slot keeps its per-turn volatiles until it is replaced
		if !state.activeFainted(pos) {
			for _, vol := range perTurnVolatiles {
				w.removeVolatile(pos, vol)
			}
		}

		// The protect chain grows on a turn the slot protected and resets otherwise
		protected := w.removeVolatile(pos, VOLATILE_PROTECT)
		protected = w.removeVolatile(pos, VOLATILE_SPIKYSHIELD) || protected
		chain := state.Slot(pos).Durations[VOLATILE_PROTECT]
		switch {
		case protected:
			w.push(ChangeVolatileDuration{Side: pos.Side, Slot: pos.Slot, Volatile: VOLATILE_PROTECT, Amount: 1})
		case chain != 0:
			w.push(ChangeVolatileDuration{Side: pos.Side, Slot: pos.Slot, Volatile: VOLATILE_PROTECT, Amount: -chain})
		}
	}

	return true
}

func (g *generator) eotVolatileDurations() bool {
	state, w := g.state, g.w

	for _, pos := range declarationOrder {
		slot := state.Slot(pos)
		for _, vol := range timedVolatiles {
			if !slot.Volatiles.Has(vol) || slot.Durations[vol] <= 0 {
				continue
			}

			w.push(ChangeVolatileDuration{Side: pos.Side, Slot: pos.Slot, Volatile: vol, Amount: -1})
			if slot.Durations[vol] == 0 {
				w.removeVolatile(pos, vol)
				eotLogger().V(1).Info("volatile wore off", "volatile", vol.String(), "side", pos.Side, "slot", pos.Slot)
			}
		}
	}

	return true
}

func (g *generator) eotFieldCountdown() bool {
	state, w := g.state, g.w

	if state.Weather.Kind != WEATHER_NONE && state.Weather.TurnsRemaining > 0 {
		w.push(DecrementWeatherTurns{})
		if state.Weather.TurnsRemaining == 0 {
			w.push(ChangeWeather{Old: state.Weather, New: Weather{Kind: WEATHER_NONE, TurnsRemaining: -1}})
		}
	}

	if state.Terrain.Kind != TERRAIN_NONE && state.Terrain.TurnsRemaining > 0 {
		w.push(DecrementTerrainTurns{})
		if state.Terrain.TurnsRemaining == 0 {
			w.setTerrain(TERRAIN_NONE, 0)
		}
	}

	if state.TrickRoom.Active && state.TrickRoom.TurnsRemaining > 0 {
		w.push(DecrementTrickRoomTurns{})
		if state.TrickRoom.TurnsRemaining == 0 {
			w.push(ChangeTrickRoom{Old: state.TrickRoom, New: TrickRoom{}})
		}
	}

	return true
}
