package battle

import "math"

// MoveContext is the move being executed by one actor. Handlers may change Move (type, power, target scope).
type MoveContext struct {
	User   Position
	Choice MoveChoice
	Move   MoveData
	// The user terastallized as part of this action
	Tera     bool
	Priority int

	Targets []Position
	// More than one target was hit when the move resolved its targets
	Spread bool

	lastUsedBefore   LastUsedMove
	pranksterBoosted bool
}

func (mc *MoveContext) userPokemon(state *State) *Pokemon {
	return state.Active(mc.User)
}

// Hooks is the set of points an ability or item can react to.
// Any field may be nil.
type Hooks struct {
	ModifyPriority func(state *State, user Position, move *MoveData, priority int) int
	ModifySpeed    func(state *State, pos Position, speed float64) float64

	// Attacker side, before targets are resolved
	BeforeMove func(w *branchWriter, mc *MoveContext)
	ModifyMove func(state *State, mc *MoveContext)
	// Reports whether redirector pulls a single target move towards itself
	Redirects func(state *State, redirector Position, mc *MoveContext) bool

	// Defender side. Returning false stops the move against this target.
	TryHit       func(w *branchWriter, mc *MoveContext, target Position) bool
	BeforeDamage func(w *branchWriter, mc *MoveContext, target Position) bool

	ModifyAttack  func(dc *damageContext)
	ModifyDefense func(dc *damageContext)
	// Called for the target's ally
	ModifyAlly func(dc *damageContext)

	AfterDamageTaken func(w *branchWriter, mc *MoveContext, target Position, hpBefore int)
	OnContact        func(w *branchWriter, mc *MoveContext, target Position)
	OnFaint          func(w *branchWriter, mc *MoveContext, target Position, hpBefore int)
	AfterMove        func(w *branchWriter, mc *MoveContext, dealt bool)

	OnSwitchIn      func(w *branchWriter, pos Position)
	OnSwitchOut     func(w *branchWriter, pos Position)
	OnEndOfTurn     func(w *branchWriter, pos Position)
	OnTerrainChange func(w *branchWriter, pos Position)
}

// Abilities that Mold Breaker and friends ignore on the defending side
var breakableAbilities = map[string]bool{
	"volt-absorb":      true,
	"water-absorb":     true,
	"dry-skin":         true,
	"lightning-rod":    true,
	"storm-drain":      true,
	"sap-sipper":       true,
	"motor-drive":      true,
	"flash-fire":       true,
	"levitate":         true,
	"good-as-gold":     true,
	"armor-tail":       true,
	"dazzling":         true,
	"queenly-majesty":  true,
	"overcoat":         true,
	"soundproof":       true,
	"wonder-guard":     true,
	"earth-eater":      true,
	"telepathy":        true,
	"disguise":         true,
	"ice-face":         true,
	"tera-shell":       true,
	"thick-fat":        true,
	"multiscale":       true,
	"fur-coat":         true,
	"marvel-scale":     true,
	"ice-scales":       true,
	"fluffy":           true,
	"filter":           true,
	"solid-rock":       true,
	"punk-rock":        true,
	"heatproof":        true,
	"water-bubble":     true,
	"purifying-salt":   true,
	"friend-guard":     true,
	"clear-body":       true,
	"white-smoke":      true,
	"hyper-cutter":     true,
	"limber":           true,
	"insomnia":         true,
	"vital-spirit":     true,
	"sweet-veil":       true,
	"water-veil":       true,
	"immunity":         true,
	"pastel-veil":      true,
	"magma-armor":      true,
	"shield-dust":      true,
	"aroma-veil":       true,
	"bulletproof":      true,
	"inner-focus":      true,
	"oblivious":        true,
	"own-tempo":        true,
	"sturdy":           true,
	"thermal-exchange": true,
}

var moldBreakers = map[string]bool{
	"mold-breaker": true,
	"teravolt":     true,
	"turboblaze":   true,
}

// effectiveAbility returns the ability of an active pokemon after suppression, "" when it has none in effect.
func effectiveAbility(state *State, pos Position) string {
	pkm := state.Active(pos)
	if pkm.Ability == "neutralizing-gas" || pkm.Item == "ability-shield" {
		return pkm.Ability
	}

	for _, other := range declarationOrder {
		if other == pos {
			continue
		}
		o := state.Active(other)
		if o.Alive() && o.Ability == "neutralizing-gas" {
			return ""
		}
	}

	return pkm.Ability
}

func hasAbility(state *State, pos Position, ability string) bool {
	return effectiveAbility(state, pos) == ability
}

func hasItem(state *State, pos Position, item string) bool {
	return state.Active(pos).Item == item
}

// ignoresAbility reports whether the attacker skips the defender's ability this move
func ignoresAbility(state *State, attacker Position, defender Position) bool {
	if attacker == defender {
		return false
	}

	return moldBreakers[effectiveAbility(state, attacker)] && breakableAbilities[state.Active(defender).Ability]
}

// hooksAt returns the ability and item handlers of an active pokemon, in that order
func hooksAt(state *State, pos Position) [2]Hooks {
	return [2]Hooks{
		abilityHooks[effectiveAbility(state, pos)],
		itemHooks[state.Active(pos).Item],
	}
}

// defenderHooksAt is hooksAt with a breakable ability dropped when the attacker ignores it
func defenderHooksAt(state *State, attacker Position, pos Position) [2]Hooks {
	hooks := hooksAt(state, pos)
	if ignoresAbility(state, attacker, pos) {
		hooks[0] = Hooks{}
	}

	return hooks
}

func grounded(state *State, pos Position) bool {
	pkm := state.Active(pos)
	if pkm.HasDefensiveType(TYPE_FLYING) {
		return false
	}
	if pkm.Item == "air-balloon" || hasAbility(state, pos, "levitate") {
		return false
	}

	return true
}

func activePositions(state *State) []Position {
	positions := make([]Position, 0, len(declarationOrder))
	for _, pos := range declarationOrder {
		if state.Active(pos).Alive() {
			positions = append(positions, pos)
		}
	}

	return positions
}

func fraction(maxHP int, num int, den int) int {
	amount := maxHP * num / den
	if amount < 1 {
		return 1
	}

	return amount
}

// damage removes hp from an active pokemon, never below 0, and returns the amount removed
func (w *branchWriter) damage(pos Position, amount int) int {
	pkm := w.state.Active(pos)
	amount = min(amount, pkm.HP)
	if amount <= 0 {
		return 0
	}

	w.push(Damage{Side: pos.Side, Index: w.state.ActiveIndex(pos), Amount: amount})
	return amount
}

// heal adds hp to an active pokemon within [0, MaxHP]. Negative amounts are hp loss that is not a hit.
func (w *branchWriter) heal(pos Position, amount int) int {
	pkm := w.state.Active(pos)
	if amount > 0 {
		amount = min(amount, pkm.MaxHP-pkm.HP)
	} else {
		amount = max(amount, -pkm.HP)
	}
	if amount == 0 || !pkm.Alive() {
		return 0
	}

	w.push(Heal{Side: pos.Side, Index: w.state.ActiveIndex(pos), Amount: amount})
	return amount
}

// boost applies a stage change clamped to the legal range and returns the change actually made
func (w *branchWriter) boost(pos Position, stat Stat, amount int) int {
	current := w.state.Slot(pos).Boosts[stat]
	applied := min(max(current+amount, MIN_BOOST), MAX_BOOST) - current
	if applied != 0 {
		w.push(Boost{Side: pos.Side, Slot: pos.Slot, Stat: stat, Amount: applied})
	}

	return applied
}

func blocksStatDrops(state *State, source Position, pos Position) bool {
	if source.Side == pos.Side {
		return false
	}
	if hasItem(state, pos, "clear-amulet") {
		return true
	}

	switch effectiveAbility(state, pos) {
	case "clear-body", "white-smoke", "full-metal-body":
		return !ignoresAbility(state, source, pos)
	}

	return false
}

// boostFrom is boost for a change another pokemon caused
func (w *branchWriter) boostFrom(source Position, pos Position, stat Stat, amount int) int {
	if amount < 0 && blocksStatDrops(w.state, source, pos) {
		return 0
	}
	if amount < 0 && stat == STAT_ATTACK && hasAbility(w.state, pos, "hyper-cutter") && !ignoresAbility(w.state, source, pos) {
		return 0
	}

	applied := w.boost(pos, stat, amount)
	if applied < 0 && source.Side != pos.Side {
		switch effectiveAbility(w.state, pos) {
		case "defiant":
			w.boost(pos, STAT_ATTACK, 2)
		case "competitive":
			w.boost(pos, STAT_SPATTACK, 2)
		}
	}

	return applied
}

func (w *branchWriter) applyVolatile(pos Position, volatile Volatile) bool {
	if w.state.Slot(pos).Volatiles.Has(volatile) {
		return false
	}

	w.push(ApplyVolatile{Side: pos.Side, Slot: pos.Slot, Volatile: volatile})
	return true
}

func (w *branchWriter) removeVolatile(pos Position, volatile Volatile) bool {
	if !w.state.Slot(pos).Volatiles.Has(volatile) {
		return false
	}

	w.push(RemoveVolatile{Side: pos.Side, Slot: pos.Slot, Volatile: volatile})
	return true
}

func (w *branchWriter) changeItem(pos Position, item string) {
	pkm := w.state.Active(pos)
	if pkm.Item == item {
		return
	}

	w.push(ChangeItem{Side: pos.Side, Index: w.state.ActiveIndex(pos), Old: pkm.Item, New: item})
}

func (w *branchWriter) changeAbility(pos Position, ability string) {
	pkm := w.state.Active(pos)
	if pkm.Ability == ability {
		return
	}

	w.push(ChangeAbility{Side: pos.Side, Index: w.state.ActiveIndex(pos), Old: pkm.Ability, New: ability})
}

func (w *branchWriter) changeTypes(pos Position, types [2]PokemonType) {
	pkm := w.state.Active(pos)
	if pkm.Types == types {
		return
	}

	w.push(ChangeType{Side: pos.Side, Index: w.state.ActiveIndex(pos), Old: pkm.Types, New: types})
}

// changeForme swaps species and recalculates raw stats when the new forme has different base stats
func (w *branchWriter) changeForme(pos Position, species string) {
	pkm := w.state.Active(pos)
	if pkm.ID == species {
		return
	}

	index := w.state.ActiveIndex(pos)
	oldData := GlobalData.GetSpecies(pkm.ID)
	newData := GlobalData.GetSpecies(species)
	w.push(FormeChange{Side: pos.Side, Index: index, Old: pkm.ID, New: species})

	if oldData == nil || newData == nil || oldData.BaseStats == newData.BaseStats {
		return
	}

	for _, stat := range CORE_STATS {
		delta := formeStat(newData.BaseStats.Get(stat), pkm.Level) - pkm.StatValue(stat)
		if delta != 0 {
			w.push(ChangeStat{Side: pos.Side, Index: index, Stat: stat, Amount: delta})
		}
	}
}

// formeStat is a non-hp stat with a perfect iv and a neutral nature at the given level
func formeStat(base int, level int) int {
	return int(math.Floor(float64((2*base+52)*level)/100)) + 5
}

func (w *branchWriter) setWeather(kind WeatherKind, turns int) bool {
	if w.state.Weather.Kind == kind {
		return false
	}

	w.push(ChangeWeather{Old: w.state.Weather, New: Weather{Kind: kind, TurnsRemaining: turns}})
	return true
}

// setTerrain changes the terrain and lets every active pokemon react to it
func (w *branchWriter) setTerrain(kind TerrainKind, turns int) bool {
	if w.state.Terrain.Kind == kind {
		return false
	}

	w.push(ChangeTerrain{Old: w.state.Terrain, New: Terrain{Kind: kind, TurnsRemaining: turns}})
	for _, pos := range activePositions(w.state) {
		for _, h := range hooksAt(w.state, pos) {
			if h.OnTerrainChange != nil {
				h.OnTerrainChange(w, pos)
			}
		}
	}

	return true
}

func (w *branchWriter) addSideCondition(side SideRef, condition SideCondition, amount int) {
	if amount == 0 {
		return
	}

	w.push(ChangeSideCondition{Side: side, Condition: condition, Amount: amount})
}

// canStatus reports whether a major status can be inflicted on an active pokemon by source
func canStatus(state *State, source Position, pos Position, status Status) bool {
	pkm := state.Active(pos)
	if !pkm.Alive() || pkm.Status != STATUS_NONE {
		return false
	}

	switch status {
	case STATUS_BURN:
		if pkm.HasDefensiveType(TYPE_FIRE) {
			return false
		}
	case STATUS_PARA:
		if pkm.HasDefensiveType(TYPE_ELECTRIC) {
			return false
		}
	case STATUS_FROZEN:
		if pkm.HasDefensiveType(TYPE_ICE) || state.WeatherIs(WEATHER_SUN) {
			return false
		}
	case STATUS_POISON, STATUS_TOXIC:
		if pkm.HasDefensiveType(TYPE_POISON) || pkm.HasDefensiveType(TYPE_STEEL) {
			return false
		}
	case STATUS_SLEEP:
		if grounded(state, pos) && state.TerrainIs(TERRAIN_ELECTRIC) {
			return false
		}
	}

	if grounded(state, pos) && state.TerrainIs(TERRAIN_MISTY) {
		return false
	}

	if ignoresAbility(state, source, pos) {
		return true
	}

	switch effectiveAbility(state, pos) {
	case "comatose", "purifying-salt":
		return false
	case "limber":
		return status != STATUS_PARA
	case "insomnia", "vital-spirit", "sweet-veil":
		return status != STATUS_SLEEP
	case "water-veil", "water-bubble", "thermal-exchange":
		return status != STATUS_BURN
	case "immunity", "pastel-veil":
		return status != STATUS_POISON && status != STATUS_TOXIC
	case "magma-armor":
		return status != STATUS_FROZEN
	}

	return true
}

func (w *branchWriter) setStatus(pos Position, status Status) {
	pkm := w.state.Active(pos)
	if pkm.Status == status {
		return
	}

	w.push(ChangeStatus{Side: pos.Side, Index: w.state.ActiveIndex(pos), Old: pkm.Status, New: status})
}

// inflictStatus sets a major status when nothing prevents it
func (w *branchWriter) inflictStatus(source Position, pos Position, status Status) bool {
	if !canStatus(w.state, source, pos, status) {
		return false
	}

	w.setStatus(pos, status)
	return true
}
