package rendering

import (
	"fmt"
	"strings"

	"github.com/nathanieltooley/dondozo/battle"
	"github.com/samber/lo"
)

var (
	statusNames  = lo.Invert(battle.STATUS_NAME_MAP)
	weatherNames = lo.Invert(battle.WEATHER_NAME_MAP)
	terrainNames = lo.Invert(battle.TERRAIN_NAME_MAP)
)

func sideLabel(side battle.SideRef) string {
	return fmt.Sprintf("p%d", int(side)+1)
}

func slotLabel(side battle.SideRef, slot battle.SlotRef) string {
	return sideLabel(side) + string(rune('a'+int(slot)))
}

// pokemonLabel names a team member by the slot it is active in, or its bench index
func pokemonLabel(state *battle.State, side battle.SideRef, index int) string {
	name := DisplayName(state.Pokemon(side, index).ID)
	for slot, s := range state.Side(side).Slots {
		if s.ActiveIndex == index {
			return slotLabel(side, battle.SlotRef(slot)) + " " + name
		}
	}

	return fmt.Sprintf("%s[%d] %s", sideLabel(side), index, name)
}

func activeLabel(state *battle.State, side battle.SideRef, slot battle.SlotRef) string {
	pos := battle.Position{Side: side, Slot: slot}
	return slotLabel(side, slot) + " " + DisplayName(state.Active(pos).ID)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}

	return s
}

func signed(amount int) string {
	return fmt.Sprintf("%+d", amount)
}

func turns(remaining int) string {
	if remaining < 0 {
		return "permanent"
	}

	return fmt.Sprintf("%d turns", remaining)
}

func typesLabel(types [2]battle.PokemonType) string {
	names := lo.FilterMap(types[:], func(t battle.PokemonType, _ int) (string, bool) {
		return t.String(), t != battle.TYPE_TYPELESS
	})
	if len(names) == 0 {
		return battle.TYPE_TYPELESS.String()
	}

	return strings.Join(names, "/")
}

func moveName(state *battle.State, side battle.SideRef, index int, move int) string {
	return DisplayName(state.Pokemon(side, index).Moves[move].ID)
}

func lastUsedLabel(last battle.LastUsedMove) string {
	switch last.Kind {
	case battle.LASTMOVE_MOVE:
		return fmt.Sprintf("move %d", last.MoveIndex)
	case battle.LASTMOVE_SWITCH:
		return fmt.Sprintf("switch to %d", last.SwitchIndex)
	}

	return "none"
}

// Describe renders one instruction against the state it is about to be applied to
func Describe(state *battle.State, instruction battle.Instruction) string {
	switch i := instruction.(type) {
	case battle.Damage:
		return fmt.Sprintf("%s loses %d hp", pokemonLabel(state, i.Side, i.Index), i.Amount)
	case battle.Heal:
		if i.Amount < 0 {
			return fmt.Sprintf("%s loses %d hp", pokemonLabel(state, i.Side, i.Index), -i.Amount)
		}
		return fmt.Sprintf("%s heals %d hp", pokemonLabel(state, i.Side, i.Index), i.Amount)
	case battle.Boost:
		return fmt.Sprintf("%s %s %s", activeLabel(state, i.Side, i.Slot), i.Stat, signed(i.Amount))
	case battle.ChangeStatus:
		return fmt.Sprintf("%s status %s -> %s", pokemonLabel(state, i.Side, i.Index), statusNames[i.Old], statusNames[i.New])
	case battle.SetSleepTurns:
		return fmt.Sprintf("%s sleep turns %d -> %d", pokemonLabel(state, i.Side, i.Index), i.Old, i.New)
	case battle.ChangeItem:
		return fmt.Sprintf("%s item %s -> %s", pokemonLabel(state, i.Side, i.Index), orNone(i.Old), orNone(i.New))
	case battle.ChangeAbility:
		return fmt.Sprintf("%s ability %s -> %s", pokemonLabel(state, i.Side, i.Index), orNone(i.Old), orNone(i.New))
	case battle.ApplyVolatile:
		return fmt.Sprintf("%s gains %s", activeLabel(state, i.Side, i.Slot), i.Volatile)
	case battle.RemoveVolatile:
		return fmt.Sprintf("%s loses %s", activeLabel(state, i.Side, i.Slot), i.Volatile)
	case battle.ChangeVolatileDuration:
		return fmt.Sprintf("%s %s duration %s", activeLabel(state, i.Side, i.Slot), i.Volatile, signed(i.Amount))
	case battle.Switch:
		return fmt.Sprintf("%s: %s -> %s", slotLabel(i.Side, i.Slot),
			DisplayName(state.Pokemon(i.Side, i.Previous).ID), DisplayName(state.Pokemon(i.Side, i.Next).ID))
	case battle.ChangeWeather:
		return fmt.Sprintf("weather %s -> %s (%s)", weatherNames[i.Old.Kind], weatherNames[i.New.Kind], turns(i.New.TurnsRemaining))
	case battle.ChangeTerrain:
		return fmt.Sprintf("terrain %s -> %s (%s)", terrainNames[i.Old.Kind], terrainNames[i.New.Kind], turns(i.New.TurnsRemaining))
	case battle.DecrementWeatherTurns:
		return fmt.Sprintf("%s weather ticks down", weatherNames[state.Weather.Kind])
	case battle.DecrementTerrainTurns:
		return fmt.Sprintf("%s terrain ticks down", terrainNames[state.Terrain.Kind])
	case battle.DecrementTrickRoomTurns:
		return "trick room ticks down"
	case battle.ChangeTrickRoom:
		if !i.New.Active {
			return "trick room ends"
		}
		return fmt.Sprintf("trick room starts (%s)", turns(i.New.TurnsRemaining))
	case battle.ChangeSideCondition:
		return fmt.Sprintf("%s side %s %s", sideLabel(i.Side), i.Condition, signed(i.Amount))
	case battle.ChangeType:
		return fmt.Sprintf("%s type %s -> %s", pokemonLabel(state, i.Side, i.Index), typesLabel(i.Old), typesLabel(i.New))
	case battle.FormeChange:
		return fmt.Sprintf("%s changes forme to %s", pokemonLabel(state, i.Side, i.Index), DisplayName(i.New))
	case battle.ChangeStat:
		return fmt.Sprintf("%s raw %s %s", pokemonLabel(state, i.Side, i.Index), i.Stat, signed(i.Amount))
	case battle.DisableMove:
		return fmt.Sprintf("%s %s disabled", pokemonLabel(state, i.Side, i.Index), moveName(state, i.Side, i.Index, i.Move))
	case battle.EnableMove:
		return fmt.Sprintf("%s %s enabled", pokemonLabel(state, i.Side, i.Index), moveName(state, i.Side, i.Index, i.Move))
	case battle.SetLastUsedMove:
		return fmt.Sprintf("%s last used %s", activeLabel(state, i.Side, i.Slot), lastUsedLabel(i.New))
	case battle.IncrementTimesAttacked:
		return fmt.Sprintf("%s times attacked +1", pokemonLabel(state, i.Side, i.Index))
	case battle.ToggleTerastallized:
		if state.Pokemon(i.Side, i.Index).Terastallized {
			return fmt.Sprintf("%s loses its tera", pokemonLabel(state, i.Side, i.Index))
		}
		return fmt.Sprintf("%s terastallizes", pokemonLabel(state, i.Side, i.Index))
	case battle.ToggleForceSwitch:
		if state.Slot(battle.Position{Side: i.Side, Slot: i.Slot}).ForceSwitch {
			return fmt.Sprintf("%s no longer has to switch", slotLabel(i.Side, i.Slot))
		}
		return fmt.Sprintf("%s has to switch", slotLabel(i.Side, i.Slot))
	case battle.SetSwitchOutMove:
		return fmt.Sprintf("%s stores its choice for after the switch", slotLabel(i.Side, i.Slot))
	}

	return fmt.Sprintf("%T %+v", instruction, instruction)
}
