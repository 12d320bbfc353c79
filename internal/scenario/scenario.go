package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanieltooley/dondozo/battle"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var ErrBadPosition = errors.New("position must be one of s1a, s1b, s2a, s2b")

var positions = map[string]battle.Position{
	"s1a": {Side: battle.SIDE_ONE, Slot: battle.SLOT_A},
	"s1b": {Side: battle.SIDE_ONE, Slot: battle.SLOT_B},
	"s2a": {Side: battle.SIDE_TWO, Slot: battle.SLOT_A},
	"s2b": {Side: battle.SIDE_TWO, Slot: battle.SLOT_B},
}

var declarationOrder = [4]string{"s1a", "s1b", "s2a", "s2b"}

// Scenario is one turn to resolve: both teams, the field and the four declared choices
type Scenario struct {
	Options Options    `yaml:"options" json:"options"`
	Field   Field      `yaml:"field" json:"field"`
	Sides   [2]SideDef `yaml:"sides" json:"sides"`
	// Keyed by s1a, s1b, s2a, s2b. Missing slots do nothing this turn.
	Choices map[string]ChoiceDef `yaml:"choices" json:"choices"`
}

type Options struct {
	BranchOnDamage  bool `yaml:"branch_on_damage" json:"branch_on_damage"`
	UseLastUsedMove bool `yaml:"use_last_used_move" json:"use_last_used_move"`
}

// Field turn counts of 0 mean the weather or terrain never expires
type Field struct {
	Weather        string `yaml:"weather,omitempty" json:"weather,omitempty"`
	WeatherTurns   int    `yaml:"weather_turns,omitempty" json:"weather_turns,omitempty"`
	Terrain        string `yaml:"terrain,omitempty" json:"terrain,omitempty"`
	TerrainTurns   int    `yaml:"terrain_turns,omitempty" json:"terrain_turns,omitempty"`
	TrickRoomTurns int    `yaml:"trick_room_turns,omitempty" json:"trick_room_turns,omitempty"`
}

type SideDef struct {
	Pokemon    []PokemonDef   `yaml:"pokemon" json:"pokemon"`
	Conditions map[string]int `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

type StatsDef struct {
	HP             int `yaml:"hp" json:"hp"`
	Attack         int `yaml:"attack" json:"attack"`
	Defense        int `yaml:"defense" json:"defense"`
	SpecialAttack  int `yaml:"special_attack" json:"special_attack"`
	SpecialDefense int `yaml:"special_defense" json:"special_defense"`
	Speed          int `yaml:"speed" json:"speed"`
}

type PokemonDef struct {
	Species string `yaml:"species" json:"species"`
	Level   int    `yaml:"level,omitempty" json:"level,omitempty"`
	// Raw stats replace the ones derived from the species
	Stats *StatsDef `yaml:"stats,omitempty" json:"stats,omitempty"`
	HP    *int      `yaml:"hp,omitempty" json:"hp,omitempty"`

	Ability string   `yaml:"ability,omitempty" json:"ability,omitempty"`
	Item    string   `yaml:"item,omitempty" json:"item,omitempty"`
	Moves   []string `yaml:"moves,omitempty" json:"moves,omitempty"`

	Status     string `yaml:"status,omitempty" json:"status,omitempty"`
	SleepTurns int    `yaml:"sleep_turns,omitempty" json:"sleep_turns,omitempty"`

	Types         []string `yaml:"types,omitempty" json:"types,omitempty"`
	TeraType      string   `yaml:"tera_type,omitempty" json:"tera_type,omitempty"`
	Terastallized bool     `yaml:"terastallized,omitempty" json:"terastallized,omitempty"`
}

// ChoiceDef is either a move (index and target) or a switch to a bench index
type ChoiceDef struct {
	Move   *int   `yaml:"move,omitempty" json:"move,omitempty"`
	Target string `yaml:"target,omitempty" json:"target,omitempty"`
	Tera   bool   `yaml:"tera,omitempty" json:"tera,omitempty"`
	Switch *int   `yaml:"switch,omitempty" json:"switch,omitempty"`
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load reads a scenario from a yaml file, or json when the extension is .json
func Load(path string) (*Scenario, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	s := &Scenario{}
	if isJSON(path) {
		err = json.Unmarshal(contents, s)
	} else {
		err = yaml.Unmarshal(contents, s)
	}
	if err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	return s, nil
}

func Save(path string, s *Scenario) error {
	var (
		contents []byte
		err      error
	)
	if isJSON(path) {
		contents, err = json.MarshalIndent(s, "", "  ")
	} else {
		contents, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}

	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}

	return nil
}

// typeFromName accepts type names in any case
func typeFromName(name string) (battle.PokemonType, error) {
	t, ok := battle.TypeFromName(cases.Title(language.English).String(strings.ToLower(name)))
	if !ok {
		return battle.TYPE_TYPELESS, fmt.Errorf("unknown type %q", name)
	}

	return t, nil
}

func (p PokemonDef) build() (battle.Pokemon, error) {
	builder := battle.NewPokeBuilder(p.Species)
	if p.Level > 0 {
		builder.SetLevel(p.Level)
	}
	if p.Stats != nil {
		builder.SetStats(p.Stats.HP, p.Stats.Attack, p.Stats.Defense, p.Stats.SpecialAttack, p.Stats.SpecialDefense, p.Stats.Speed)
	}
	if p.HP != nil {
		builder.SetHP(*p.HP)
	}

	switch len(p.Types) {
	case 0:
	case 1, 2:
		types := [2]battle.PokemonType{battle.TYPE_TYPELESS, battle.TYPE_TYPELESS}
		for i, name := range p.Types {
			t, err := typeFromName(name)
			if err != nil {
				return battle.Pokemon{}, err
			}
			types[i] = t
		}
		builder.SetTypes(types[0], types[1])
	default:
		return battle.Pokemon{}, fmt.Errorf("%s has %d types", p.Species, len(p.Types))
	}

	if p.TeraType != "" {
		t, err := typeFromName(p.TeraType)
		if err != nil {
			return battle.Pokemon{}, err
		}
		builder.SetTeraType(t)
	}

	if p.Status != "" {
		status, ok := battle.STATUS_NAME_MAP[strings.ToLower(p.Status)]
		if !ok {
			return battle.Pokemon{}, fmt.Errorf("%s has unknown status %q", p.Species, p.Status)
		}
		builder.SetStatus(status)
	}

	pkm := builder.
		SetAbility(p.Ability).
		SetItem(p.Item).
		SetMoves(p.Moves...).
		Build()
	pkm.SleepTurns = p.SleepTurns
	pkm.Terastallized = p.Terastallized

	return pkm, nil
}

func (s SideDef) team() ([]battle.Pokemon, error) {
	if len(s.Pokemon) < 2 || len(s.Pokemon) > 6 {
		return nil, fmt.Errorf("a side needs 2 to 6 pokemon, got %d", len(s.Pokemon))
	}

	team := make([]battle.Pokemon, 0, len(s.Pokemon))
	for i, def := range s.Pokemon {
		pkm, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("pokemon %d: %w", i, err)
		}
		team = append(team, pkm)
	}

	return team, nil
}

var sideConditionsByName = lo.Invert(battle.SIDECOND_NAMES)

// State builds the battle state the scenario describes
func (s *Scenario) State() (battle.State, error) {
	teams := [2][]battle.Pokemon{}
	for i, side := range s.Sides {
		team, err := side.team()
		if err != nil {
			return battle.State{}, fmt.Errorf("side %d: %w", i+1, err)
		}
		teams[i] = team
	}

	state := battle.NewState(teams[0], teams[1])
	state.UseLastUsedMove = s.Options.UseLastUsedMove

	for i, side := range s.Sides {
		for name, amount := range side.Conditions {
			condition, ok := sideConditionsByName[name]
			if !ok {
				return battle.State{}, fmt.Errorf("side %d: unknown side condition %q", i+1, name)
			}
			state.Sides[i].Conditions[condition] = amount
		}
	}

	if err := s.Field.apply(&state); err != nil {
		return battle.State{}, err
	}

	return state, nil
}

func turnsOrPermanent(turns int) int {
	if turns <= 0 {
		return -1
	}

	return turns
}

func (f Field) apply(state *battle.State) error {
	state.Weather = battle.Weather{Kind: battle.WEATHER_NONE, TurnsRemaining: -1}
	if f.Weather != "" {
		kind, ok := battle.WEATHER_NAME_MAP[strings.ToLower(f.Weather)]
		if !ok {
			return fmt.Errorf("unknown weather %q", f.Weather)
		}
		state.Weather = battle.Weather{Kind: kind, TurnsRemaining: turnsOrPermanent(f.WeatherTurns)}
	}

	if f.Terrain != "" {
		kind, ok := battle.TERRAIN_NAME_MAP[strings.ToLower(f.Terrain)]
		if !ok {
			return fmt.Errorf("unknown terrain %q", f.Terrain)
		}
		state.Terrain = battle.Terrain{Kind: kind, TurnsRemaining: turnsOrPermanent(f.TerrainTurns)}
	}

	if f.TrickRoomTurns > 0 {
		state.TrickRoom = battle.TrickRoom{Active: true, TurnsRemaining: f.TrickRoomTurns}
	}

	return nil
}

func (c ChoiceDef) moveChoice() (battle.MoveChoice, error) {
	switch {
	case c.Move != nil && c.Switch != nil:
		return battle.MoveChoice{}, errors.New("a choice cannot both move and switch")
	case c.Switch != nil:
		return battle.NewSwitchChoice(*c.Switch), nil
	case c.Move == nil:
		return battle.MoveChoice{}, nil
	}

	target, ok := positions[strings.ToLower(c.Target)]
	if !ok {
		return battle.MoveChoice{}, fmt.Errorf("target %q: %w", c.Target, ErrBadPosition)
	}

	if c.Tera {
		return battle.NewTeraMoveChoice(*c.Move, target.Side, target.Slot), nil
	}

	return battle.NewMoveChoice(*c.Move, target.Side, target.Slot), nil
}

// MoveChoices returns the declared choices in s1a, s1b, s2a, s2b order
func (s *Scenario) MoveChoices() ([4]battle.MoveChoice, error) {
	var choices [4]battle.MoveChoice

	for name := range s.Choices {
		if _, ok := positions[name]; !ok {
			return choices, fmt.Errorf("choice %q: %w", name, ErrBadPosition)
		}
	}

	for i, name := range declarationOrder {
		def, ok := s.Choices[name]
		if !ok {
			continue
		}

		choice, err := def.moveChoice()
		if err != nil {
			return choices, fmt.Errorf("choice %s: %w", name, err)
		}
		choices[i] = choice
	}

	return choices, nil
}

func intPtr(i int) *int {
	return &i
}

// Example is a rain team against a commander pair, written by the -init flag
func Example() *Scenario {
	return &Scenario{
		Field: Field{Weather: "rain", WeatherTurns: 5},
		Sides: [2]SideDef{
			{
				Pokemon: []PokemonDef{
					{Species: "pelipper", Level: 50, Ability: "drizzle", Item: "focus-sash", Moves: []string{"surf", "tailwind", "protect", "u-turn"}},
					{Species: "iron-hands", Level: 50, Ability: "quark-drive", Item: "assault-vest", Moves: []string{"fake-out", "drain-punch", "close-combat", "vacuum-wave"}, TeraType: "grass"},
					{Species: "rillaboom", Level: 50, Ability: "grassy-surge", Item: "miracle-seed", Moves: []string{"fake-out", "grassy-glide", "u-turn", "protect"}},
				},
			},
			{
				Pokemon: []PokemonDef{
					{Species: "dondozo", Level: 50, Ability: "unaware", Item: "leftovers", Moves: []string{"order-up", "earthquake", "protect", "body-slam"}},
					{Species: "tatsugiri", Level: 50, Ability: "commander", Item: "choice-scarf", Moves: []string{"draco-meteor", "icy-wind", "surf", "taunt"}},
					{Species: "incineroar", Level: 50, Ability: "intimidate", Item: "sitrus-berry", Moves: []string{"fake-out", "flamethrower", "knock-off", "parting-shot"}},
				},
			},
		},
		Choices: map[string]ChoiceDef{
			"s1a": {Move: intPtr(0), Target: "s2a"},
			"s1b": {Move: intPtr(2), Target: "s2a", Tera: true},
			"s2a": {Move: intPtr(1), Target: "s1b"},
			"s2b": {Move: intPtr(1), Target: "s1a"},
		},
	}
}
