package battle

import "math"

// moveAction builds the full resolution of one move for the actor at user
func (g *generator) moveAction(user Position, choice MoveChoice) step {
	mc := &MoveContext{User: user, Choice: choice}
	start := 0

	return sequence(
		do(func() bool {
			start = g.w.mark()
			return g.beforeMove(mc)
		}),
		do(func() bool { return g.prepareMove(mc) }),
		g.targetingStep(mc),
		do(func() bool { return g.fieldEffect(mc) }),
		forEach(func() []Position { return mc.Targets }, func(target Position) step {
			return g.hitTarget(mc, target)
		}),
		do(func() bool {
			g.afterMove(mc, start)
			return true
		}),
	)
}

// beforeMove runs the checks that can stop a pokemon from moving at all
func (g *generator) beforeMove(mc *MoveContext) bool {
	state, w := g.state, g.w
	pos := mc.User
	pkm := state.Active(pos)
	slot := state.Slot(pos)

	if slot.Volatiles.Has(VOLATILE_FLINCH) {
		if state.UseLastUsedMove {
			g.setLastUsedMove(pos, LastUsedMove{Kind: LASTMOVE_NONE})
		}
		turnLogger().V(1).Info("flinched", "pokemon", pkm.ID)
		return false
	}

	index := mc.Choice.MoveIndex
	if index < 0 || index >= len(pkm.Moves) || pkm.Moves[index].Disabled {
		return false
	}
	if slot.Volatiles.Has(VOLATILE_DISABLE) && slot.LastUsedMove.Kind == LASTMOVE_MOVE && slot.LastUsedMove.MoveIndex == index {
		return false
	}

	move := chosenMove(state, pos, mc.Choice)
	if slot.Volatiles.Has(VOLATILE_TAUNT) && !move.IsDamaging() {
		return false
	}

	switch pkm.Status {
	case STATUS_SLEEP:
		turns := pkm.SleepTurns
		wake := sleepWakeChance(turns)
		benchIndex := state.ActiveIndex(pos)
		w.oneOf([]outcome{
			{
				chance: 100 - wake,
				halt:   true,
				apply: func() {
					w.push(SetSleepTurns{Side: pos.Side, Index: benchIndex, Old: turns, New: turns + 1})
				},
			},
			{
				chance: wake,
				apply: func() {
					w.setStatus(pos, STATUS_NONE)
					if turns != 0 {
						w.push(SetSleepTurns{Side: pos.Side, Index: benchIndex, Old: turns, New: 0})
					}
				},
			},
		})
	case STATUS_FROZEN:
		if move.Type == TYPE_FIRE && move.IsDamaging() {
			w.setStatus(pos, STATUS_NONE)
			break
		}
		w.oneOf([]outcome{
			{chance: 80, halt: true},
			{chance: 20, apply: func() { w.setStatus(pos, STATUS_NONE) }},
		})
	case STATUS_PARA:
		w.oneOf([]outcome{
			{chance: 75},
			{chance: 25, halt: true},
		})
	}

	if slot.Volatiles.Has(VOLATILE_CONFUSION) {
		w.oneOf([]outcome{
			{chance: 200.0 / 3},
			{
				chance: 100.0 / 3,
				halt:   true,
				apply: func() {
					w.damage(pos, confusionDamage(state, pos))
				},
			},
		})
	}

	return true
}

// sleepWakeChance is the percent chance to wake up after turns turns asleep
func sleepWakeChance(turns int) float32 {
	if turns <= 0 {
		return 0
	}
	if turns >= MAX_SLEEP_TURNS {
		return 100
	}

	return 100 / float32(1+MAX_SLEEP_TURNS-turns)
}

// confusionDamage is a typeless 40 power physical hit against itself
func confusionDamage(state *State, pos Position) int {
	pkm := state.Active(pos)
	boosts := state.Slot(pos).Boosts
	a := float64(pkm.Attack) * stageMultiplier(boosts[STAT_ATTACK])
	d := float64(pkm.Defense) * stageMultiplier(boosts[STAT_DEFENSE])
	levelFactor := math.Floor(float64(2*pkm.Level)/5 + 2)
	base := math.Floor(math.Floor(levelFactor*40*a/d)/50) + 2

	return max(1, int(math.Floor(base*AVERAGE_DAMAGE_ROLL)))
}

func (g *generator) setLastUsedMove(pos Position, last LastUsedMove) {
	slot := g.state.Slot(pos)
	if slot.LastUsedMove == last {
		return
	}

	g.w.push(SetLastUsedMove{Side: pos.Side, Slot: pos.Slot, Old: slot.LastUsedMove, New: last})
}

// prepareMove terastallizes, records the move and lets the user's hooks reshape it
func (g *generator) prepareMove(mc *MoveContext) bool {
	state, w := g.state, g.w
	pos := mc.User
	pkm := state.Active(pos)
	slot := state.Slot(pos)

	if slot.Volatiles.Has(VOLATILE_ENCORE) && slot.LastUsedMove.Kind == LASTMOVE_MOVE {
		mc.Choice.MoveIndex = slot.LastUsedMove.MoveIndex
	}

	mc.Move = chosenMove(state, pos, mc.Choice)
	mc.Targets = nil
	mc.Spread = false
	mc.Tera = false
	mc.lastUsedBefore = slot.LastUsedMove

	if mc.Choice.Kind == CHOICE_MOVE_TERA && !pkm.Terastallized {
		g.terastallize(pos)
		mc.Tera = true
	}

	if state.UseLastUsedMove {
		g.setLastUsedMove(pos, LastUsedMove{Kind: LASTMOVE_MOVE, MoveIndex: mc.Choice.MoveIndex})
	}

	effect := moveEffects[mc.Move.Name]
	if effect.Modify != nil {
		effect.Modify(state, mc)
	}
	for _, h := range hooksAt(state, pos) {
		if h.ModifyMove != nil {
			h.ModifyMove(state, mc)
		}
	}

	base := mc.Move.Priority
	mc.Priority = PriorityOf(state, pos.Side, pos.Slot, &mc.Move)
	mc.pranksterBoosted = !mc.Move.IsDamaging() && mc.Priority > base && hasAbility(state, pos, "prankster")

	for _, h := range hooksAt(state, pos) {
		if h.BeforeMove != nil {
			h.BeforeMove(w, mc)
		}
	}

	if effect.Try != nil && !effect.Try(g, mc) {
		turnLogger().V(1).Info("move failed", "move", mc.Move.Name, "pokemon", pkm.ID)
		return false
	}

	return true
}

// terastallize changes the pokemon's tera state plus any forme it is tied to
func (g *generator) terastallize(pos Position) {
	w := g.w
	pkm := w.state.Active(pos)
	w.push(ToggleTerastallized{Side: pos.Side, Index: w.state.ActiveIndex(pos)})

	if pkm.TeraType != TYPE_STELLAR || (pkm.ID != "terapagos-terastal" && pkm.ID != "terapagos") {
		return
	}

	w.changeForme(pos, "terapagos-stellar")
	w.changeAbility(pos, "teraform-zero")
	if effectiveAbility(w.state, pos) == "teraform-zero" {
		w.setWeather(WEATHER_NONE, 0)
		w.setTerrain(TERRAIN_NONE, 0)
	}
}

// targetingStep resolves who the move hits, forking when the target is random
func (g *generator) targetingStep(mc *MoveContext) step {
	return func(w *branchWriter, next func(), stop func()) {
		if mc.Move.Target == TARGET_RANDOM_NORMAL {
			foes := g.targetableFoes(mc.User)
			if len(foes) == 0 {
				stop()
				return
			}

			outcomes := make([]outcome, 0, len(foes))
			for _, foe := range foes {
				outcomes = append(outcomes, outcome{
					chance: 100 / float32(len(foes)),
					apply:  func() { mc.Targets = []Position{foe} },
				})
			}
			w.settle([][]outcome{outcomes}, next, stop)
			return
		}

		targets, ok := g.resolveTargets(mc)
		if !ok {
			stop()
			return
		}

		mc.Targets = targets
		mc.Spread = mc.Move.IsSpread() && len(targets) > 1
		next()
	}
}

func isFieldTarget(target string) bool {
	return target == TARGET_ALLY_SIDE || target == TARGET_FOE_SIDE || target == TARGET_ALL
}

func (g *generator) targetableFoes(user Position) []Position {
	foes := make([]Position, 0, 2)
	for _, slot := range []SlotRef{SLOT_A, SLOT_B} {
		pos := Position{Side: user.Side.Opposite(), Slot: slot}
		if g.state.Active(pos).Alive() && !g.state.Slot(pos).Volatiles.Has(VOLATILE_COMMANDING) {
			foes = append(foes, pos)
		}
	}

	return foes
}

func (g *generator) resolveTargets(mc *MoveContext) ([]Position, bool) {
	state := g.state
	user := mc.User
	ally := user.Ally()
	allyAlive := state.Active(ally).Alive()

	switch mc.Move.Target {
	case TARGET_SELF:
		return []Position{user}, true
	case TARGET_ADJACENT_ALLY:
		if !allyAlive {
			return nil, false
		}
		return []Position{ally}, true
	case TARGET_ALLY_OR_SELF:
		if mc.Choice.Target() == ally && allyAlive {
			return []Position{ally}, true
		}
		return []Position{user}, true
	case TARGET_ALLIES:
		if allyAlive {
			return []Position{user, ally}, true
		}
		return []Position{user}, true
	case TARGET_ALL_ADJACENT_FOES:
		foes := g.targetableFoes(user)
		return foes, len(foes) > 0
	case TARGET_ALL_ADJACENT:
		targets := g.targetableFoes(user)
		if allyAlive && !state.Slot(ally).Volatiles.Has(VOLATILE_COMMANDING) {
			targets = append(targets, ally)
		}
		return targets, len(targets) > 0
	case TARGET_NORMAL:
		return g.singleTarget(mc)
	}

	// Field moves have no pokemon target
	return nil, isFieldTarget(mc.Move.Target)
}

func (g *generator) singleTarget(mc *MoveContext) ([]Position, bool) {
	state := g.state
	target := mc.Choice.Target()

	if target.Side != mc.User.Side {
		if redirected, ok := g.redirectTarget(mc); ok {
			return []Position{redirected}, true
		}
	}

	if !state.Active(target).Alive() {
		if target.Side == mc.User.Side {
			return nil, false
		}
		target = target.Ally()
		if !state.Active(target).Alive() {
			return nil, false
		}
	}

	return []Position{target}, true
}

func powderImmune(state *State, pos Position) bool {
	return state.Active(pos).HasDefensiveType(TYPE_GRASS) || hasAbility(state, pos, "overcoat") || hasItem(state, pos, "safety-goggles")
}

// redirectTarget finds a pokemon that pulls a foe-targeted single target move towards itself
func (g *generator) redirectTarget(mc *MoveContext) (Position, bool) {
	state := g.state
	foeSide := mc.User.Side.Opposite()

	for _, slot := range []SlotRef{SLOT_A, SLOT_B} {
		pos := Position{Side: foeSide, Slot: slot}
		if !state.Active(pos).Alive() {
			continue
		}

		volatiles := state.Slot(pos).Volatiles
		if volatiles.Has(VOLATILE_FOLLOWME) {
			return pos, true
		}
		if volatiles.Has(VOLATILE_RAGEPOWDER) && !powderImmune(state, mc.User) {
			return pos, true
		}
	}

	for _, pos := range declarationOrder {
		if pos == mc.User || !state.Active(pos).Alive() {
			continue
		}

		h := abilityHooks[effectiveAbility(state, pos)]
		if h.Redirects != nil && h.Redirects(state, pos, mc) {
			return pos, true
		}
	}

	return Position{}, false
}

// fieldEffect applies moves that change a side or the whole field
func (g *generator) fieldEffect(mc *MoveContext) bool {
	if !isFieldTarget(mc.Move.Target) {
		return true
	}

	w := g.w
	move := &mc.Move

	if move.SideCondition != "" {
		side := mc.User.Side
		if move.Target == TARGET_FOE_SIDE {
			side = side.Opposite()
		}
		g.addSideCondition(side, move.SideCondition)
	}
	if kind, ok := WEATHER_NAME_MAP[move.Weather]; ok && move.Weather != "" {
		turns := WEATHER_ABILITY_TURNS
		w.setWeather(kind, turns)
	}
	if kind, ok := TERRAIN_NAME_MAP[move.Terrain]; ok && move.Terrain != "" {
		w.setTerrain(kind, TERRAIN_ABILITY_TURNS)
	}

	return true
}

func (g *generator) addSideCondition(side SideRef, name string) {
	w := g.w
	conditions := g.state.Side(side).Conditions

	for condition, n := range SIDECOND_NAMES {
		if n != name {
			continue
		}

		current := conditions[condition]
		switch condition {
		case SIDECOND_TAILWIND:
			if current == 0 {
				w.addSideCondition(side, condition, TAILWIND_TURNS)
			}
		case SIDECOND_REFLECT, SIDECOND_LIGHT_SCREEN:
			if current == 0 {
				w.addSideCondition(side, condition, SCREEN_TURNS)
			}
		case SIDECOND_SPIKES:
			if current < 3 {
				w.addSideCondition(side, condition, 1)
			}
		case SIDECOND_TOXIC_SPIKES:
			if current < 2 {
				w.addSideCondition(side, condition, 1)
			}
		default:
			if current == 0 {
				w.addSideCondition(side, condition, 1)
			}
		}
	}
}

// hitTarget is the per target part of a move
func (g *generator) hitTarget(mc *MoveContext, target Position) step {
	checks := []step{
		do(func() bool { return g.canHit(mc, target) }),
		g.accuracyStep(mc, target),
	}

	if !mc.Move.IsDamaging() {
		return sequence(append(checks, do(func() bool { return g.statusMoveHandler(mc, target) }))...)
	}

	hits := 1
	hpBefore := 0
	dealt := 0
	effect := moveEffects[mc.Move.Name]

	return sequence(append(checks,
		do(func() bool {
			return effect.OnHit == nil || !effect.OnHit(g, mc, target)
		}),
		g.hitCountStep(mc, &hits),
		do(func() bool {
			for _, h := range defenderHooksAt(g.state, mc.User, target) {
				if h.BeforeDamage != nil && !h.BeforeDamage(g.w, mc, target) {
					return false
				}
			}
			return true
		}),
		do(func() bool {
			hpBefore = g.state.Active(target).HP
			return g.damageMoveHandler(mc, target, hits)
		}),
		do(func() bool {
			dealt = hpBefore - g.state.Active(target).HP
			if dealt > 0 {
				g.afterDamage(mc, target, hpBefore, dealt)
			}
			return true
		}),
		do(func() bool {
			if dealt > 0 {
				g.secondaries(mc, target)
			}
			return true
		}),
		do(func() bool {
			if dealt > 0 && mc.Move.HasFlag(FLAG_CONTACT) && g.state.Active(mc.User).Alive() {
				for _, h := range hooksAt(g.state, target) {
					if h.OnContact != nil {
						h.OnContact(g.w, mc, target)
					}
				}
			}
			return true
		}),
		do(func() bool {
			if hpBefore > 0 && !g.state.Active(target).Alive() {
				g.onFaint(mc, target, hpBefore)
			}
			return true
		}),
	)...)
}

// canHit runs the checks that stop a move against one target without a chance roll
func (g *generator) canHit(mc *MoveContext, target Position) bool {
	state, w := g.state, g.w
	pkm := state.Active(target)
	if !pkm.Alive() {
		return false
	}
	if target == mc.User {
		return true
	}
	if state.Slot(target).Volatiles.Has(VOLATILE_COMMANDING) {
		return false
	}

	if !mc.Move.HasFlag(FLAG_BYPASS_PROTECT) {
		volatiles := state.Slot(target).Volatiles
		if volatiles.Has(VOLATILE_PROTECT) {
			return false
		}
		if volatiles.Has(VOLATILE_SPIKYSHIELD) {
			if mc.Move.HasFlag(FLAG_CONTACT) && state.Active(mc.User).Alive() {
				w.damage(mc.User, fraction(state.Active(mc.User).MaxHP, 1, 8))
			}
			return false
		}
		if mc.Spread && state.Side(target.Side).Conditions[SIDECOND_WIDE_GUARD] > 0 {
			return false
		}
	}

	if target.Side != mc.User.Side {
		if mc.Priority > 0 {
			if state.TerrainIs(TERRAIN_PSYCHIC) && grounded(state, target) {
				return false
			}
			for _, guard := range []Position{target, target.Ally()} {
				if !state.Active(guard).Alive() || ignoresAbility(state, mc.User, guard) {
					continue
				}
				switch effectiveAbility(state, guard) {
				case "armor-tail", "dazzling", "queenly-majesty":
					return false
				}
			}
		}
		if mc.pranksterBoosted && pkm.HasDefensiveType(TYPE_DARK) {
			return false
		}
	}

	if mc.Move.HasFlag(FLAG_POWDER) && powderImmune(state, target) {
		return false
	}

	for _, h := range defenderHooksAt(state, mc.User, target) {
		if h.TryHit != nil && !h.TryHit(w, mc, target) {
			return false
		}
	}

	if mc.Move.IsDamaging() && moveEffectiveness(state, &mc.Move, target) == 0 {
		return false
	}

	effect := moveEffects[mc.Move.Name]
	if effect.TryHit != nil && !effect.TryHit(g, mc, target) {
		return false
	}

	return true
}

// hitChance is the percent chance mc lands on target
func hitChance(state *State, mc *MoveContext, target Position) float32 {
	if mc.Move.Accuracy <= 0 || target == mc.User {
		return 100
	}
	if hasAbility(state, mc.User, "no-guard") || hasAbility(state, target, "no-guard") {
		return 100
	}

	stage := state.Slot(mc.User).Boosts[STAT_ACCURACY] - state.Slot(target).Boosts[STAT_EVASION]
	stage = min(max(stage, MIN_BOOST), MAX_BOOST)

	accuracy := float64(mc.Move.Accuracy) * accuracyStageMult[stage]
	if hasAbility(state, mc.User, "compound-eyes") {
		accuracy *= 1.3
	}
	if hasAbility(state, mc.User, "hustle") && mc.Move.DamageClass == DAMAGETYPE_PHYSICAL {
		accuracy *= 0.8
	}
	if hasItem(state, mc.User, "wide-lens") {
		accuracy *= 1.1
	}

	return float32(min(accuracy, 100))
}

func (g *generator) accuracyStep(mc *MoveContext, target Position) step {
	return func(w *branchWriter, next func(), stop func()) {
		chance := hitChance(g.state, mc, target)
		if chance >= 100 {
			next()
			return
		}

		w.settle([][]outcome{{
			{chance: chance},
			{chance: 100 - chance, halt: true},
		}}, next, stop)
	}
}

// Chances of hitting 2, 3, 4 and 5 times
var multiHitChances = [4]float32{35, 35, 15, 15}

func (g *generator) hitCountStep(mc *MoveContext, hits *int) step {
	return func(w *branchWriter, next func(), stop func()) {
		*hits = 1
		if !mc.Move.MultiHit() {
			next()
			return
		}

		minHits, maxHits := *mc.Move.MinHits, *mc.Move.MaxHits
		if hasAbility(g.state, mc.User, "skill-link") || hasItem(g.state, mc.User, "loaded-dice") && maxHits == 5 {
			*hits = maxHits
			next()
			return
		}
		if minHits != 2 || maxHits != 5 {
			*hits = maxHits
			next()
			return
		}

		outcomes := make([]outcome, 0, len(multiHitChances))
		for i, chance := range multiHitChances {
			count := i + 2
			outcomes = append(outcomes, outcome{chance: chance, apply: func() { *hits = count }})
		}
		w.settle([][]outcome{outcomes}, next, stop)
	}
}

// damageMoveHandler deals every hit of a damaging move to one target
func (g *generator) damageMoveHandler(mc *MoveContext, target Position, hits int) bool {
	state, w := g.state, g.w

	for i := 0; i < hits; i++ {
		if !state.Active(target).Alive() || !state.Active(mc.User).Alive() {
			break
		}

		roll, ok := calculateDamage(state, mc, target)
		if !ok {
			return i > 0
		}

		if g.branchOnDamage && hits == 1 {
			hp := state.Active(target).HP
			koChance, survive := roll.koChance(hp)
			if koChance > 0 && koChance < 100 {
				w.oneOf([]outcome{
					{chance: 100 - koChance, apply: func() { w.damage(target, survive) }},
					{chance: koChance, apply: func() { w.damage(target, hp) }},
				})
				return true
			}
		}

		w.damage(target, roll.average())
	}

	return true
}

func (g *generator) afterDamage(mc *MoveContext, target Position, hpBefore int, dealt int) {
	state, w := g.state, g.w
	pkm := state.Active(target)

	if pkm.MoveIndex("rage-fist") >= 0 {
		w.push(IncrementTimesAttacked{Side: target.Side, Index: state.ActiveIndex(target)})
	}

	for _, h := range hooksAt(state, target) {
		if h.AfterDamageTaken != nil {
			h.AfterDamageTaken(w, mc, target, hpBefore)
		}
	}

	if mc.Move.Drain > 0 && state.Active(mc.User).Alive() {
		w.heal(mc.User, max(1, int(float64(dealt)*mc.Move.Drain)))
	}

	effect := moveEffects[mc.Move.Name]
	if effect.AfterHit != nil {
		effect.AfterHit(g, mc, target)
	}
}

// secondaries queues the chance effects of a damaging move that landed
func (g *generator) secondaries(mc *MoveContext, target Position) {
	state, w := g.state, g.w

	for _, sec := range mc.Move.Secondaries {
		recipient := target
		if sec.Target == "self" {
			recipient = mc.User
		} else if hasItem(state, target, "covert-cloak") || hasAbility(state, target, "shield-dust") && !ignoresAbility(state, mc.User, target) {
			continue
		}
		if !state.Active(recipient).Alive() {
			continue
		}

		chance := float32(sec.Chance)
		if hasAbility(state, mc.User, "serene-grace") {
			chance *= 2
		}
		chance = min(chance, 100)

		if len(sec.OneOf) > 0 {
			outcomes := []outcome{{chance: 100 - chance}}
			for _, name := range sec.OneOf {
				status := STATUS_NAME_MAP[name]
				outcomes = append(outcomes, outcome{
					chance: chance / float32(len(sec.OneOf)),
					apply:  func() { w.inflictStatus(mc.User, recipient, status) },
				})
			}
			w.oneOf(outcomes)
			continue
		}

		if !g.secondaryCanApply(mc, recipient, sec) {
			continue
		}
		w.chance(chance, func() { g.applySecondary(mc, recipient, sec) })
	}
}

func (g *generator) secondaryCanApply(mc *MoveContext, recipient Position, sec Secondary) bool {
	state := g.state
	if sec.Status != "" && !canStatus(state, mc.User, recipient, STATUS_NAME_MAP[sec.Status]) {
		return false
	}
	if sec.Volatile != "" {
		for vol, name := range VOLATILE_NAMES {
			if name == sec.Volatile && state.Slot(recipient).Volatiles.Has(vol) {
				return false
			}
		}
	}

	return true
}

func (g *generator) applySecondary(mc *MoveContext, recipient Position, sec Secondary) {
	w := g.w

	if sec.Status != "" {
		w.inflictStatus(mc.User, recipient, STATUS_NAME_MAP[sec.Status])
	}
	if sec.Volatile != "" {
		g.applyNamedVolatile(recipient, sec.Volatile)
	}
	for _, change := range sec.Boosts {
		stat, _ := statFromName(change.StatName)
		w.boostFrom(mc.User, recipient, stat, change.Change)
	}
}

func (g *generator) applyNamedVolatile(pos Position, name string) {
	for vol, n := range VOLATILE_NAMES {
		if n != name {
			continue
		}

		if g.w.applyVolatile(pos, vol) && vol == VOLATILE_CONFUSION {
			g.w.push(ChangeVolatileDuration{Side: pos.Side, Slot: pos.Slot, Volatile: vol, Amount: 3})
		}
		return
	}
}

// statusMoveHandler applies a status move to one target
func (g *generator) statusMoveHandler(mc *MoveContext, target Position) bool {
	state, w := g.state, g.w
	move := &mc.Move

	effect := moveEffects[move.Name]
	if effect.OnHit != nil && effect.OnHit(g, mc, target) {
		return true
	}

	if move.Status != "" {
		w.inflictStatus(mc.User, target, STATUS_NAME_MAP[move.Status])
	}
	if move.Volatile != "" {
		g.applyNamedVolatile(target, move.Volatile)
	}
	for _, change := range move.Boosts {
		stat, _ := statFromName(change.StatName)
		w.boostFrom(mc.User, target, stat, change.Change)
	}
	if move.Heal > 0 {
		w.heal(target, int(float64(state.Active(target).MaxHP)*move.Heal))
	}

	return true
}

func (g *generator) onFaint(mc *MoveContext, target Position, hpBefore int) {
	state, w := g.state, g.w
	turnLogger().V(1).Info("fainted", "pokemon", state.Active(target).ID)

	for _, h := range hooksAt(state, target) {
		if h.OnFaint != nil {
			h.OnFaint(w, mc, target, hpBefore)
		}
	}

	if state.Slot(target).Volatiles.Has(VOLATILE_COMMANDED) {
		w.removeVolatile(target.Ally(), VOLATILE_COMMANDING)
	}
}

// damageTo sums the move damage recorded since mark against pokemon other than the user
func (g *generator) damageTo(mc *MoveContext, mark int) int {
	userIndex := g.state.ActiveIndex(mc.User)
	total := 0

	for _, instruction := range g.w.since(mark) {
		dmg, ok := instruction.(Damage)
		if !ok || (dmg.Side == mc.User.Side && dmg.Index == userIndex) {
			continue
		}
		for _, target := range mc.Targets {
			if dmg.Side == target.Side && dmg.Index == g.state.ActiveIndex(target) {
				total += dmg.Amount
				break
			}
		}
	}

	return total
}

// loweredFoeStat reports whether a stat of the other side dropped since mark
func (g *generator) loweredFoeStat(mc *MoveContext, mark int) bool {
	for _, instruction := range g.w.since(mark) {
		boost, ok := instruction.(Boost)
		if ok && boost.Side != mc.User.Side && boost.Amount < 0 {
			return true
		}
	}

	return false
}

// afterMove applies once per move costs and effects, then a pivot switch
func (g *generator) afterMove(mc *MoveContext, start int) {
	state, w := g.state, g.w
	user := mc.User
	dealt := g.damageTo(mc, start)

	if !state.Active(user).Alive() {
		return
	}

	if !mc.Move.IsDamaging() || dealt > 0 {
		for _, change := range mc.Move.SelfBoosts {
			stat, _ := statFromName(change.StatName)
			w.boost(user, stat, change.Change)
		}
	}

	if mc.Move.Recoil > 0 && dealt > 0 && !hasAbility(state, user, "rock-head") && !hasAbility(state, user, "magic-guard") {
		w.damage(user, max(1, int(float64(dealt)*mc.Move.Recoil)))
	}

	for _, h := range hooksAt(state, user) {
		if h.AfterMove != nil {
			h.AfterMove(w, mc, dealt > 0)
		}
	}

	if !mc.Move.Pivot || !state.Active(user).Alive() || len(state.Side(user.Side).SwitchTargets()) == 0 {
		return
	}
	if mc.Move.IsDamaging() && dealt == 0 {
		return
	}
	if !mc.Move.IsDamaging() && !g.loweredFoeStat(mc, start) {
		return
	}

	g.pivot(user)
}

// pivot halts the turn for a switch decision and stores the choices of everyone still to act
func (g *generator) pivot(user Position) {
	w := g.w
	w.push(ToggleForceSwitch{Side: user.Side, Slot: user.Slot})

	for _, pos := range declarationOrder {
		if pos == user || !g.remaining.has(pos) {
			continue
		}

		choice := g.choices[pos.declarationIndex()]
		if !canAct(g.state, pos, choice) {
			continue
		}

		w.push(SetSwitchOutMove{Side: pos.Side, Slot: pos.Slot, Old: g.state.Slot(pos).SwitchOutMove, New: choice})
	}

	turnLogger().V(1).Info("pivot halted the turn", "side", user.Side, "slot", user.Slot)
}
