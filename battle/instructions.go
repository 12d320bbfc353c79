package battle

import "fmt"

// Instruction is one atomic, reversible state mutation.
// Every implementation is a comparable value so instruction lists can be compared with slices.Equal.
type Instruction interface {
	Apply(state *State)
	Reverse(state *State)
}

type Damage struct {
	Side   SideRef
	Index  int
	Amount int
}

func (i Damage) Apply(state *State) {
	pkm := state.Pokemon(i.Side, i.Index)
	pkm.HP -= i.Amount
	if pkm.HP < 0 {
		panic(fmt.Sprintf("damage of %d took %s below 0 hp", i.Amount, pkm.ID))
	}
}

func (i Damage) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).HP += i.Amount
}

// Heal adds hp. Negative amounts are used for recoil that is not a hit (Life Orb).
type Heal struct {
	Side   SideRef
	Index  int
	Amount int
}

func (i Heal) Apply(state *State) {
	pkm := state.Pokemon(i.Side, i.Index)
	pkm.HP += i.Amount
	if pkm.HP > pkm.MaxHP || pkm.HP < 0 {
		panic(fmt.Sprintf("heal of %d put %s at %d/%d hp", i.Amount, pkm.ID, pkm.HP, pkm.MaxHP))
	}
}

func (i Heal) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).HP -= i.Amount
}

type Boost struct {
	Side   SideRef
	Slot   SlotRef
	Stat   Stat
	Amount int
}

func (i Boost) Apply(state *State) {
	slot := state.Slot(Position{i.Side, i.Slot})
	slot.Boosts[i.Stat] += i.Amount
	if slot.Boosts[i.Stat] > MAX_BOOST || slot.Boosts[i.Stat] < MIN_BOOST {
		panic(fmt.Sprintf("boost of %d left %s at %d", i.Amount, i.Stat, slot.Boosts[i.Stat]))
	}
}

func (i Boost) Reverse(state *State) {
	state.Slot(Position{i.Side, i.Slot}).Boosts[i.Stat] -= i.Amount
}

type ChangeStatus struct {
	Side  SideRef
	Index int
	Old   Status
	New   Status
}

func (i ChangeStatus) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).Status = i.New
}

func (i ChangeStatus) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).Status = i.Old
}

type SetSleepTurns struct {
	Side  SideRef
	Index int
	Old   int
	New   int
}

func (i SetSleepTurns) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).SleepTurns = i.New
}

func (i SetSleepTurns) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).SleepTurns = i.Old
}

type ChangeItem struct {
	Side  SideRef
	Index int
	Old   string
	New   string
}

func (i ChangeItem) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).Item = i.New
}

func (i ChangeItem) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).Item = i.Old
}

type ChangeAbility struct {
	Side  SideRef
	Index int
	Old   string
	New   string
}

func (i ChangeAbility) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).Ability = i.New
}

func (i ChangeAbility) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).Ability = i.Old
}

type ApplyVolatile struct {
	Side     SideRef
	Slot     SlotRef
	Volatile Volatile
}

func (i ApplyVolatile) Apply(state *State) {
	slot := state.Slot(Position{i.Side, i.Slot})
	if slot.Volatiles.Has(i.Volatile) {
		panic(fmt.Sprintf("volatile %s applied twice", i.Volatile))
	}
	slot.Volatiles.add(i.Volatile)
}

func (i ApplyVolatile) Reverse(state *State) {
	state.Slot(Position{i.Side, i.Slot}).Volatiles.remove(i.Volatile)
}

type RemoveVolatile struct {
	Side     SideRef
	Slot     SlotRef
	Volatile Volatile
}

func (i RemoveVolatile) Apply(state *State) {
	slot := state.Slot(Position{i.Side, i.Slot})
	if !slot.Volatiles.Has(i.Volatile) {
		panic(fmt.Sprintf("removed missing volatile %s", i.Volatile))
	}
	slot.Volatiles.remove(i.Volatile)
}

func (i RemoveVolatile) Reverse(state *State) {
	state.Slot(Position{i.Side, i.Slot}).Volatiles.add(i.Volatile)
}

type ChangeVolatileDuration struct {
	Side     SideRef
	Slot     SlotRef
	Volatile Volatile
	Amount   int
}

func (i ChangeVolatileDuration) Apply(state *State) {
	state.Slot(Position{i.Side, i.Slot}).Durations[i.Volatile] += i.Amount
}

func (i ChangeVolatileDuration) Reverse(state *State) {
	state.Slot(Position{i.Side, i.Slot}).Durations[i.Volatile] -= i.Amount
}

type Switch struct {
	Side     SideRef
	Slot     SlotRef
	Previous int
	Next     int
}

func (i Switch) Apply(state *State) {
	if !state.Pokemon(i.Side, i.Next).Alive() {
		panic(fmt.Sprintf("switched into fainted pokemon at index %d", i.Next))
	}
	state.Slot(Position{i.Side, i.Slot}).ActiveIndex = i.Next
}

func (i Switch) Reverse(state *State) {
	state.Slot(Position{i.Side, i.Slot}).ActiveIndex = i.Previous
}

type ChangeWeather struct {
	Old Weather
	New Weather
}

func (i ChangeWeather) Apply(state *State) {
	state.Weather = i.New
}

func (i ChangeWeather) Reverse(state *State) {
	state.Weather = i.Old
}

type ChangeTerrain struct {
	Old Terrain
	New Terrain
}

func (i ChangeTerrain) Apply(state *State) {
	state.Terrain = i.New
}

func (i ChangeTerrain) Reverse(state *State) {
	state.Terrain = i.Old
}

type DecrementWeatherTurns struct{}

func (DecrementWeatherTurns) Apply(state *State) {
	state.Weather.TurnsRemaining--
}

func (DecrementWeatherTurns) Reverse(state *State) {
	state.Weather.TurnsRemaining++
}

type DecrementTerrainTurns struct{}

func (DecrementTerrainTurns) Apply(state *State) {
	state.Terrain.TurnsRemaining--
}

func (DecrementTerrainTurns) Reverse(state *State) {
	state.Terrain.TurnsRemaining++
}

type DecrementTrickRoomTurns struct{}

func (DecrementTrickRoomTurns) Apply(state *State) {
	state.TrickRoom.TurnsRemaining--
}

func (DecrementTrickRoomTurns) Reverse(state *State) {
	state.TrickRoom.TurnsRemaining++
}

type ChangeTrickRoom struct {
	Old TrickRoom
	New TrickRoom
}

func (i ChangeTrickRoom) Apply(state *State) {
	state.TrickRoom = i.New
}

func (i ChangeTrickRoom) Reverse(state *State) {
	state.TrickRoom = i.Old
}

type ChangeSideCondition struct {
	Side      SideRef
	Condition SideCondition
	Amount    int
}

func (i ChangeSideCondition) Apply(state *State) {
	state.Side(i.Side).Conditions[i.Condition] += i.Amount
}

func (i ChangeSideCondition) Reverse(state *State) {
	state.Side(i.Side).Conditions[i.Condition] -= i.Amount
}

type ChangeType struct {
	Side  SideRef
	Index int
	Old   [2]PokemonType
	New   [2]PokemonType
}

func (i ChangeType) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).Types = i.New
}

func (i ChangeType) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).Types = i.Old
}

type FormeChange struct {
	Side  SideRef
	Index int
	Old   string
	New   string
}

func (i FormeChange) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).ID = i.New
}

func (i FormeChange) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).ID = i.Old
}

// ChangeStat changes a raw stat, not a boost
type ChangeStat struct {
	Side   SideRef
	Index  int
	Stat   Stat
	Amount int
}

func (i ChangeStat) Apply(state *State) {
	*state.Pokemon(i.Side, i.Index).statPtr(i.Stat) += i.Amount
}

func (i ChangeStat) Reverse(state *State) {
	*state.Pokemon(i.Side, i.Index).statPtr(i.Stat) -= i.Amount
}

type DisableMove struct {
	Side  SideRef
	Index int
	Move  int
}

func (i DisableMove) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).Moves[i.Move].Disabled = true
}

func (i DisableMove) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).Moves[i.Move].Disabled = false
}

type EnableMove struct {
	Side  SideRef
	Index int
	Move  int
}

func (i EnableMove) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).Moves[i.Move].Disabled = false
}

func (i EnableMove) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).Moves[i.Move].Disabled = true
}

type SetLastUsedMove struct {
	Side SideRef
	Slot SlotRef
	Old  LastUsedMove
	New  LastUsedMove
}

func (i SetLastUsedMove) Apply(state *State) {
	state.Slot(Position{i.Side, i.Slot}).LastUsedMove = i.New
}

func (i SetLastUsedMove) Reverse(state *State) {
	state.Slot(Position{i.Side, i.Slot}).LastUsedMove = i.Old
}

type IncrementTimesAttacked struct {
	Side  SideRef
	Index int
}

func (i IncrementTimesAttacked) Apply(state *State) {
	state.Pokemon(i.Side, i.Index).TimesAttacked++
}

func (i IncrementTimesAttacked) Reverse(state *State) {
	state.Pokemon(i.Side, i.Index).TimesAttacked--
}

type ToggleTerastallized struct {
	Side  SideRef
	Index int
}

func (i ToggleTerastallized) Apply(state *State) {
	pkm := state.Pokemon(i.Side, i.Index)
	pkm.Terastallized = !pkm.Terastallized
}

func (i ToggleTerastallized) Reverse(state *State) {
	i.Apply(state)
}

type ToggleForceSwitch struct {
	Side SideRef
	Slot SlotRef
}

func (i ToggleForceSwitch) Apply(state *State) {
	slot := state.Slot(Position{i.Side, i.Slot})
	slot.ForceSwitch = !slot.ForceSwitch
}

func (i ToggleForceSwitch) Reverse(state *State) {
	i.Apply(state)
}

// SetSwitchOutMove stores the choice a slot will use once a pending pivot switch resolves
type SetSwitchOutMove struct {
	Side SideRef
	Slot SlotRef
	Old  MoveChoice
	New  MoveChoice
}

func (i SetSwitchOutMove) Apply(state *State) {
	state.Slot(Position{i.Side, i.Slot}).SwitchOutMove = i.New
}

func (i SetSwitchOutMove) Reverse(state *State) {
	state.Slot(Position{i.Side, i.Slot}).SwitchOutMove = i.Old
}
