package battle

import "fmt"

// NewState creates a doubles state with the first two pokemon of each team active.
// Teams are truncated to six pokemon.
func NewState(sideOne []Pokemon, sideTwo []Pokemon) State {
	state := State{}
	fillSide(&state.Sides[SIDE_ONE], sideOne)
	fillSide(&state.Sides[SIDE_TWO], sideTwo)

	return state
}

func fillSide(side *Side, team []Pokemon) {
	for i, pkm := range team {
		if i >= len(side.Pokemon) {
			break
		}
		side.Pokemon[i] = pkm
	}

	side.Slots[SLOT_A].ActiveIndex = 0
	side.Slots[SLOT_B].ActiveIndex = 1
}

func (s *State) Side(ref SideRef) *Side {
	return &s.Sides[ref]
}

func (s *State) Slot(pos Position) *Slot {
	return &s.Sides[pos.Side].Slots[pos.Slot]
}

func (s *State) Active(pos Position) *Pokemon {
	return s.Sides[pos.Side].Active(pos.Slot)
}

func (s *State) ActiveIndex(pos Position) int {
	return s.Sides[pos.Side].Slots[pos.Slot].ActiveIndex
}

// Pokemon returns a bench entry by side and index
func (s *State) Pokemon(side SideRef, index int) *Pokemon {
	if index < 0 || index >= len(s.Sides[side].Pokemon) {
		panic(fmt.Sprintf("pokemon index %d out of range on side %d", index, side))
	}

	return &s.Sides[side].Pokemon[index]
}

// ApplyInstructions commits an instruction list to the state in order.
func (s *State) ApplyInstructions(instructions []Instruction) {
	for _, i := range instructions {
		i.Apply(s)
	}
}

// ReverseInstructions undoes an instruction list previously applied with ApplyInstructions.
func (s *State) ReverseInstructions(instructions []Instruction) {
	for i := len(instructions) - 1; i >= 0; i-- {
		instructions[i].Reverse(s)
	}
}

func (s *State) activeFainted(pos Position) bool {
	return !s.Active(pos).Alive()
}

func (s *State) TrickRoomActive() bool {
	return s.TrickRoom.Active
}

func (s *State) WeatherIs(kind WeatherKind) bool {
	if s.Weather.Kind != kind {
		return false
	}

	// Cloud Nine and Air Lock suppress weather effects while active
	for _, pos := range declarationOrder {
		pkm := s.Active(pos)
		if !pkm.Alive() {
			continue
		}
		ability := effectiveAbility(s, pos)
		if ability == "cloud-nine" || ability == "air-lock" {
			return false
		}
	}

	return true
}

func (s *State) TerrainIs(kind TerrainKind) bool {
	return s.Terrain.Kind == kind
}
