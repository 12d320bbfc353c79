package battle

// switchAction swaps the pokemon in pos for the bench entry the choice names
func (g *generator) switchAction(pos Position, choice MoveChoice) step {
	return do(func() bool {
		state := g.state
		side := state.Side(pos.Side)
		if choice.SwitchIndex < 0 || choice.SwitchIndex >= len(side.Pokemon) || !side.Pokemon[choice.SwitchIndex].Alive() {
			return false
		}

		switchLogger().Info("", "side", pos.Side, "slot", pos.Slot, "out", state.Active(pos).ID, "in", side.Pokemon[choice.SwitchIndex].ID)

		g.switchOut(pos)
		g.w.push(Switch{Side: pos.Side, Slot: pos.Slot, Previous: state.ActiveIndex(pos), Next: choice.SwitchIndex})
		if state.UseLastUsedMove {
			g.setLastUsedMove(pos, LastUsedMove{Kind: LASTMOVE_SWITCH, SwitchIndex: choice.SwitchIndex})
		}
		g.switchIn(pos)

		return true
	})
}

// switchOut clears everything bound to the slot rather than the pokemon
func (g *generator) switchOut(pos Position) {
	state, w := g.state, g.w
	slot := state.Slot(pos)
	pkm := state.Active(pos)

	for vol := Volatile(0); vol < volatileCount; vol++ {
		if d := slot.Durations[vol]; d != 0 {
			w.push(ChangeVolatileDuration{Side: pos.Side, Slot: pos.Slot, Volatile: vol, Amount: -d})
		}
	}

	if slot.Volatiles.Has(VOLATILE_TYPECHANGE) && pkm.Types != pkm.BaseTypes {
		w.changeTypes(pos, pkm.BaseTypes)
	}
	for _, vol := range slot.Volatiles.Each() {
		w.removeVolatile(pos, vol)
	}

	for stat, boost := range slot.Boosts {
		if boost != 0 {
			w.push(Boost{Side: pos.Side, Slot: pos.Slot, Stat: Stat(stat), Amount: -boost})
		}
	}

	index := state.ActiveIndex(pos)
	for i, m := range pkm.Moves {
		if m.Disabled {
			w.push(EnableMove{Side: pos.Side, Index: index, Move: i})
		}
	}

	if !pkm.Alive() {
		return
	}

	for _, h := range hooksAt(state, pos) {
		if h.OnSwitchOut != nil {
			h.OnSwitchOut(w, pos)
		}
	}

	if pkm.BaseAbility != "" && pkm.Ability != pkm.BaseAbility {
		w.changeAbility(pos, pkm.BaseAbility)
	}
}

// switchIn applies entry hazards, then the new pokemon's own switch in effects
func (g *generator) switchIn(pos Position) {
	state, w := g.state, g.w

	g.entryHazards(pos)
	if !state.Active(pos).Alive() {
		return
	}

	for _, h := range hooksAt(state, pos) {
		if h.OnSwitchIn != nil {
			h.OnSwitchIn(w, pos)
		}
	}

	g.commanderLink(pos)
}

func (g *generator) entryHazards(pos Position) {
	state, w := g.state, g.w
	pkm := state.Active(pos)
	conditions := state.Side(pos.Side).Conditions

	if hasItem(state, pos, "heavy-duty-boots") {
		return
	}
	takesDamage := !hasAbility(state, pos, "magic-guard")

	if conditions[SIDECOND_STEALTH_ROCK] > 0 && takesDamage {
		effectiveness := TypeEffectiveness(TYPE_ROCK, pkm.DefensiveTypes())
		w.damage(pos, int(float64(pkm.MaxHP)*effectiveness/8))
	}

	if !grounded(state, pos) {
		return
	}

	if layers := conditions[SIDECOND_SPIKES]; layers > 0 && takesDamage {
		// One to three layers deal 1/8, 1/6 and 1/4
		w.damage(pos, fraction(pkm.MaxHP, 1, 10-2*layers))
	}

	if layers := conditions[SIDECOND_TOXIC_SPIKES]; layers > 0 && pkm.Alive() {
		if pkm.HasDefensiveType(TYPE_POISON) {
			w.addSideCondition(pos.Side, SIDECOND_TOXIC_SPIKES, -layers)
			return
		}

		status := STATUS_POISON
		if layers >= 2 {
			status = STATUS_TOXIC
		}
		w.inflictStatus(pos, pos, status)
	}
}

// commanderLink starts Commander when a commander and a dondozo share a side
func (g *generator) commanderLink(pos Position) {
	state, w := g.state, g.w

	for _, commander := range []Position{pos, pos.Ally()} {
		dondozo := commander.Ally()
		if !state.Active(commander).Alive() || !state.Active(dondozo).Alive() {
			continue
		}
		if !hasAbility(state, commander, "commander") || state.Active(dondozo).ID != "dondozo" {
			continue
		}
		if state.Slot(commander).Volatiles.Has(VOLATILE_COMMANDING) || state.Slot(dondozo).Volatiles.Has(VOLATILE_COMMANDED) {
			continue
		}

		switchLogger().V(1).Info("commander linked", "side", pos.Side)
		w.applyVolatile(dondozo, VOLATILE_COMMANDED)
		w.applyVolatile(commander, VOLATILE_COMMANDING)
		for _, stat := range CORE_STATS {
			w.boost(dondozo, stat, 2)
		}
		return
	}
}
