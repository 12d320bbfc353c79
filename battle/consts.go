package battle

const (
	MAX_BOOST = 6
	MIN_BOOST = -6

	// Turns granted to weather and terrain set by an ability or move
	WEATHER_ABILITY_TURNS = 5
	TERRAIN_ABILITY_TURNS = 5
	TRICK_ROOM_TURNS      = 5
	TAILWIND_TURNS        = 4
	SCREEN_TURNS          = 5

	MAX_SLEEP_TURNS = 3

	MOVE_NONE = "none"

	// Average of the sixteen damage rolls (85..100)
	AVERAGE_DAMAGE_ROLL = 0.925
	SPREAD_MODIFIER     = 0.75
)

type SideRef int

const (
	SIDE_ONE SideRef = iota
	SIDE_TWO
)

func (s SideRef) Opposite() SideRef {
	if s == SIDE_ONE {
		return SIDE_TWO
	}

	return SIDE_ONE
}

type SlotRef int

const (
	SLOT_A SlotRef = iota
	SLOT_B
)

func (s SlotRef) Other() SlotRef {
	if s == SLOT_A {
		return SLOT_B
	}

	return SLOT_A
}

type PokemonType int

const (
	TYPE_NORMAL PokemonType = iota
	TYPE_FIRE
	TYPE_WATER
	TYPE_ELECTRIC
	TYPE_GRASS
	TYPE_ICE
	TYPE_FIGHTING
	TYPE_POISON
	TYPE_GROUND
	TYPE_FLYING
	TYPE_PSYCHIC
	TYPE_BUG
	TYPE_ROCK
	TYPE_GHOST
	TYPE_DRAGON
	TYPE_DARK
	TYPE_STEEL
	TYPE_FAIRY
	TYPE_STELLAR
	TYPE_TYPELESS
)

var TYPE_NAMES = map[PokemonType]string{
	TYPE_NORMAL:   "Normal",
	TYPE_FIRE:     "Fire",
	TYPE_WATER:    "Water",
	TYPE_ELECTRIC: "Electric",
	TYPE_GRASS:    "Grass",
	TYPE_ICE:      "Ice",
	TYPE_FIGHTING: "Fighting",
	TYPE_POISON:   "Poison",
	TYPE_GROUND:   "Ground",
	TYPE_FLYING:   "Flying",
	TYPE_PSYCHIC:  "Psychic",
	TYPE_BUG:      "Bug",
	TYPE_ROCK:     "Rock",
	TYPE_GHOST:    "Ghost",
	TYPE_DRAGON:   "Dragon",
	TYPE_DARK:     "Dark",
	TYPE_STEEL:    "Steel",
	TYPE_FAIRY:    "Fairy",
	TYPE_STELLAR:  "Stellar",
	TYPE_TYPELESS: "Typeless",
}

func (t PokemonType) String() string {
	return TYPE_NAMES[t]
}

// TypeFromName maps a case-sensitive type name ("Water") to its PokemonType.
func TypeFromName(name string) (PokemonType, bool) {
	for t, n := range TYPE_NAMES {
		if n == name {
			return t, true
		}
	}

	return TYPE_TYPELESS, false
}

type Status int

const (
	STATUS_NONE Status = iota
	STATUS_BURN
	STATUS_PARA
	STATUS_SLEEP
	STATUS_FROZEN
	STATUS_POISON
	STATUS_TOXIC
)

var STATUS_NAME_MAP = map[string]Status{
	"none":      STATUS_NONE,
	"burn":      STATUS_BURN,
	"paralysis": STATUS_PARA,
	"sleep":     STATUS_SLEEP,
	"freeze":    STATUS_FROZEN,
	"poison":    STATUS_POISON,
	"toxic":     STATUS_TOXIC,
}

type WeatherKind int

const (
	WEATHER_NONE WeatherKind = iota
	WEATHER_RAIN
	WEATHER_SUN
	WEATHER_SANDSTORM
	WEATHER_SNOW
)

var WEATHER_NAME_MAP = map[string]WeatherKind{
	"none":      WEATHER_NONE,
	"rain":      WEATHER_RAIN,
	"sun":       WEATHER_SUN,
	"sandstorm": WEATHER_SANDSTORM,
	"snow":      WEATHER_SNOW,
}

type TerrainKind int

const (
	TERRAIN_NONE TerrainKind = iota
	TERRAIN_ELECTRIC
	TERRAIN_GRASSY
	TERRAIN_MISTY
	TERRAIN_PSYCHIC
)

var TERRAIN_NAME_MAP = map[string]TerrainKind{
	"none":     TERRAIN_NONE,
	"electric": TERRAIN_ELECTRIC,
	"grassy":   TERRAIN_GRASSY,
	"misty":    TERRAIN_MISTY,
	"psychic":  TERRAIN_PSYCHIC,
}

type Stat int

const (
	STAT_ATTACK Stat = iota
	STAT_DEFENSE
	STAT_SPATTACK
	STAT_SPDEF
	STAT_SPEED
	STAT_ACCURACY
	STAT_EVASION
)

var STAT_NAMES = map[Stat]string{
	STAT_ATTACK:   "attack",
	STAT_DEFENSE:  "defense",
	STAT_SPATTACK: "special-attack",
	STAT_SPDEF:    "special-defense",
	STAT_SPEED:    "speed",
	STAT_ACCURACY: "accuracy",
	STAT_EVASION:  "evasion",
}

func (s Stat) String() string {
	return STAT_NAMES[s]
}

// The five stats a forme change or the Commander boost touches, in instruction order
var CORE_STATS = [5]Stat{STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED}

type Volatile int

const (
	VOLATILE_CONFUSION Volatile = iota
	VOLATILE_FLINCH
	VOLATILE_PROTECT
	VOLATILE_SPIKYSHIELD
	VOLATILE_TAUNT
	VOLATILE_ENCORE
	VOLATILE_DISABLE
	VOLATILE_HELPINGHAND
	VOLATILE_FOLLOWME
	VOLATILE_RAGEPOWDER
	VOLATILE_TYPECHANGE
	VOLATILE_ELECTROSHOT
	VOLATILE_COMMANDING
	VOLATILE_COMMANDED
	VOLATILE_LOCKEDMOVE
	VOLATILE_FLASHFIRE
	// Badly poisoned counter, tracked as a duration only
	VOLATILE_TOXIC_COUNT

	volatileCount
)

var VOLATILE_NAMES = map[Volatile]string{
	VOLATILE_CONFUSION:   "confusion",
	VOLATILE_FLINCH:      "flinch",
	VOLATILE_PROTECT:     "protect",
	VOLATILE_SPIKYSHIELD: "spiky-shield",
	VOLATILE_TAUNT:       "taunt",
	VOLATILE_ENCORE:      "encore",
	VOLATILE_DISABLE:     "disable",
	VOLATILE_HELPINGHAND: "helping-hand",
	VOLATILE_FOLLOWME:    "follow-me",
	VOLATILE_RAGEPOWDER:  "rage-powder",
	VOLATILE_TYPECHANGE:  "type-change",
	VOLATILE_ELECTROSHOT: "electro-shot",
	VOLATILE_COMMANDING:  "commanding",
	VOLATILE_COMMANDED:   "commanded",
	VOLATILE_LOCKEDMOVE:  "locked-move",
	VOLATILE_FLASHFIRE:   "flash-fire",
	VOLATILE_TOXIC_COUNT: "toxic-count",
}

func (v Volatile) String() string {
	return VOLATILE_NAMES[v]
}

type SideCondition int

const (
	SIDECOND_TAILWIND SideCondition = iota
	SIDECOND_SPIKES
	SIDECOND_TOXIC_SPIKES
	SIDECOND_STEALTH_ROCK
	SIDECOND_REFLECT
	SIDECOND_LIGHT_SCREEN
	SIDECOND_WIDE_GUARD

	sideConditionCount
)

var SIDECOND_NAMES = map[SideCondition]string{
	SIDECOND_TAILWIND:     "tailwind",
	SIDECOND_SPIKES:       "spikes",
	SIDECOND_TOXIC_SPIKES: "toxic-spikes",
	SIDECOND_STEALTH_ROCK: "stealth-rock",
	SIDECOND_REFLECT:      "reflect",
	SIDECOND_LIGHT_SCREEN: "light-screen",
	SIDECOND_WIDE_GUARD:   "wide-guard",
}

func (c SideCondition) String() string {
	return SIDECOND_NAMES[c]
}

const (
	DAMAGETYPE_PHYSICAL = "physical"
	DAMAGETYPE_SPECIAL  = "special"
	DAMAGETYPE_STATUS   = "status"
)

// Move target scopes, named after the data files
const (
	TARGET_NORMAL            = "normal"
	TARGET_SELF              = "self"
	TARGET_ADJACENT_ALLY     = "adjacent-ally"
	TARGET_ALLY_OR_SELF      = "adjacent-ally-or-self"
	TARGET_ALLIES            = "allies"
	TARGET_ALL_ADJACENT_FOES = "all-adjacent-foes"
	TARGET_ALL_ADJACENT      = "all-adjacent"
	TARGET_RANDOM_NORMAL     = "random-normal"
	TARGET_ALLY_SIDE         = "ally-side"
	TARGET_FOE_SIDE          = "foe-side"
	TARGET_ALL               = "all"
)

var StageMultipliers = map[int]float64{
	-6: 2.0 / 8.0,
	-5: 2.0 / 7.0,
	-4: 2.0 / 6.0,
	-3: 2.0 / 5.0,
	-2: 2.0 / 4.0,
	-1: 2.0 / 3.0,
	0:  1,
	1:  3.0 / 2.0,
	2:  4.0 / 2.0,
	3:  5.0 / 2.0,
	4:  6.0 / 2.0,
	5:  7.0 / 2.0,
	6:  8.0 / 2.0,
}

var accuracyStageMult = map[int]float64{
	6:  9.0 / 3.0,
	5:  8.0 / 3.0,
	4:  7.0 / 3.0,
	3:  6.0 / 3.0,
	2:  5.0 / 3.0,
	1:  4.0 / 3.0,
	0:  1,
	-1: 3.0 / 4.0,
	-2: 3.0 / 5.0,
	-3: 3.0 / 6.0,
	-4: 3.0 / 7.0,
	-5: 3.0 / 8.0,
	-6: 3.0 / 9.0,
}
