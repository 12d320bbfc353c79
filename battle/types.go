package battle

import "math/bits"

type Move struct {
	ID       string
	Disabled bool
}

func (m Move) IsNil() bool {
	return m.ID == "" || m.ID == MOVE_NONE
}

type Pokemon struct {
	// Species identifier, e.g. "dondozo" or "eiscue-noice"
	ID    string
	Level int

	Types     [2]PokemonType
	BaseTypes [2]PokemonType

	HP             int
	MaxHP          int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int

	Ability     string
	BaseAbility string
	Item        string

	Status     Status
	SleepTurns int

	Moves [4]Move

	TeraType      PokemonType
	Terastallized bool

	TimesAttacked int
}

func (p Pokemon) Alive() bool {
	return p.HP > 0
}

func (p Pokemon) HasType(t PokemonType) bool {
	return p.Types[0] == t || p.Types[1] == t
}

// HasDefensiveType is HasType with terastallization taken into account.
// A stellar tera keeps the original types for defense.
func (p Pokemon) HasDefensiveType(t PokemonType) bool {
	if p.Terastallized && p.TeraType != TYPE_STELLAR {
		return p.TeraType == t
	}

	return p.HasType(t)
}

func (p Pokemon) DefensiveTypes() [2]PokemonType {
	if p.Terastallized && p.TeraType != TYPE_STELLAR {
		return [2]PokemonType{p.TeraType, TYPE_TYPELESS}
	}

	return p.Types
}

func (p Pokemon) StatValue(stat Stat) int {
	switch stat {
	case STAT_ATTACK:
		return p.Attack
	case STAT_DEFENSE:
		return p.Defense
	case STAT_SPATTACK:
		return p.SpecialAttack
	case STAT_SPDEF:
		return p.SpecialDefense
	case STAT_SPEED:
		return p.Speed
	}

	return 0
}

func (p *Pokemon) statPtr(stat Stat) *int {
	switch stat {
	case STAT_ATTACK:
		return &p.Attack
	case STAT_DEFENSE:
		return &p.Defense
	case STAT_SPATTACK:
		return &p.SpecialAttack
	case STAT_SPDEF:
		return &p.SpecialDefense
	case STAT_SPEED:
		return &p.Speed
	}

	panic("no raw stat for " + stat.String())
}

// Returns the index of the first move with the given id or -1
func (p Pokemon) MoveIndex(id string) int {
	for i, m := range p.Moves {
		if m.ID == id {
			return i
		}
	}

	return -1
}

type Boosts [7]int

// VolatileSet is a bitset over Volatile so a Slot (and State) stays comparable
type VolatileSet uint32

func (v VolatileSet) Has(vol Volatile) bool {
	return v&(1<<uint(vol)) != 0
}

func (v *VolatileSet) add(vol Volatile) {
	*v |= 1 << uint(vol)
}

func (v *VolatileSet) remove(vol Volatile) {
	*v &^= 1 << uint(vol)
}

func (v VolatileSet) Len() int {
	return bits.OnesCount32(uint32(v))
}

// Each returns the set members in enum order.
func (v VolatileSet) Each() []Volatile {
	vols := make([]Volatile, 0, v.Len())
	for vol := Volatile(0); vol < volatileCount; vol++ {
		if v.Has(vol) {
			vols = append(vols, vol)
		}
	}

	return vols
}

const (
	LASTMOVE_NONE = iota
	LASTMOVE_MOVE
	LASTMOVE_SWITCH
)

type LastUsedMove struct {
	Kind        int
	MoveIndex   int
	SwitchIndex int
}

type Slot struct {
	ActiveIndex int
	Boosts      Boosts
	Volatiles   VolatileSet
	// Indexed by Volatile. VOLATILE_TOXIC_COUNT only ever lives here.
	Durations    [volatileCount]int
	LastUsedMove LastUsedMove

	ForceSwitch   bool
	SwitchOutMove MoveChoice
}

type Side struct {
	Pokemon    [6]Pokemon
	Slots      [2]Slot
	Conditions [sideConditionCount]int
}

func (s *Side) Active(slot SlotRef) *Pokemon {
	return &s.Pokemon[s.Slots[slot].ActiveIndex]
}

// Bench indexes of living pokemon that are not active in either slot
func (s *Side) SwitchTargets() []int {
	targets := make([]int, 0, len(s.Pokemon))
	for i, p := range s.Pokemon {
		if p.ID == "" || !p.Alive() || i == s.Slots[SLOT_A].ActiveIndex || i == s.Slots[SLOT_B].ActiveIndex {
			continue
		}
		targets = append(targets, i)
	}

	return targets
}

type Weather struct {
	Kind WeatherKind
	// -1 means the weather does not expire
	TurnsRemaining int
}

type Terrain struct {
	Kind           TerrainKind
	TurnsRemaining int
}

type TrickRoom struct {
	Active         bool
	TurnsRemaining int
}

type State struct {
	Sides     [2]Side
	Weather   Weather
	Terrain   Terrain
	TrickRoom TrickRoom

	// Enables tracking of each slot's last used move (Fake Out, Disable)
	UseLastUsedMove bool
}

// Position is an absolute reference to an active slot
type Position struct {
	Side SideRef
	Slot SlotRef
}

func (p Position) Ally() Position {
	return Position{Side: p.Side, Slot: p.Slot.Other()}
}

// The four active positions in declaration order
var declarationOrder = [4]Position{
	{SIDE_ONE, SLOT_A},
	{SIDE_ONE, SLOT_B},
	{SIDE_TWO, SLOT_A},
	{SIDE_TWO, SLOT_B},
}

func (p Position) declarationIndex() int {
	return int(p.Side)*2 + int(p.Slot)
}

type ChoiceKind int

const (
	CHOICE_NONE ChoiceKind = iota
	CHOICE_MOVE
	CHOICE_MOVE_TERA
	CHOICE_SWITCH
)

// MoveChoice is the action one slot declared for a turn.
// Targets are absolute positions, not relative to the user.
type MoveChoice struct {
	Kind        ChoiceKind
	MoveIndex   int
	TargetSide  SideRef
	TargetSlot  SlotRef
	SwitchIndex int
}

func NewMoveChoice(moveIndex int, targetSide SideRef, targetSlot SlotRef) MoveChoice {
	return MoveChoice{Kind: CHOICE_MOVE, MoveIndex: moveIndex, TargetSide: targetSide, TargetSlot: targetSlot}
}

func NewTeraMoveChoice(moveIndex int, targetSide SideRef, targetSlot SlotRef) MoveChoice {
	return MoveChoice{Kind: CHOICE_MOVE_TERA, MoveIndex: moveIndex, TargetSide: targetSide, TargetSlot: targetSlot}
}

func NewSwitchChoice(benchIndex int) MoveChoice {
	return MoveChoice{Kind: CHOICE_SWITCH, SwitchIndex: benchIndex}
}

func (c MoveChoice) IsMove() bool {
	return c.Kind == CHOICE_MOVE || c.Kind == CHOICE_MOVE_TERA
}

func (c MoveChoice) Target() Position {
	return Position{Side: c.TargetSide, Slot: c.TargetSlot}
}

// StateInstructions is one outcome of a turn
type StateInstructions struct {
	Percentage         float32
	Instructions       []Instruction
	EndOfTurnTriggered bool
}
