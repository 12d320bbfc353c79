package battle

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:embed data/*.json
var embeddedData embed.FS

var GlobalData = mustLoadEmbedded()

type pokemonDb struct {
	moves   map[string]MoveData
	species map[string]SpeciesData
}

type StatChange struct {
	Change   int    `json:"change"`
	StatName string `json:"stat_name"`
}

type Secondary struct {
	// Percent chance the effect happens at all
	Chance int `json:"chance"`
	// "target" (default) or "self"
	Target   string       `json:"target"`
	Status   string       `json:"status"`
	Volatile string       `json:"volatile"`
	Boosts   []StatChange `json:"boosts"`
	// When set, exactly one of these statuses is inflicted, split evenly over Chance
	OneOf []string `json:"one_of"`
}

type MoveData struct {
	Name        string `json:"name"`
	TypeName    string `json:"type"`
	DamageClass string `json:"damage_class"`
	Power       int    `json:"power"`
	// 0 means the move cannot miss
	Accuracy int      `json:"accuracy"`
	Priority int      `json:"priority"`
	Target   string   `json:"target"`
	Flags    []string `json:"flags"`

	Secondaries []Secondary `json:"secondaries"`
	// Applied to the user once per use, regardless of target count
	SelfBoosts []StatChange `json:"self_boosts"`
	// Applied to each target of a status move
	Boosts   []StatChange `json:"boosts"`
	Status   string       `json:"status"`
	Volatile string       `json:"volatile"`

	// Fractions of damage dealt / max hp
	Drain  float64 `json:"drain"`
	Recoil float64 `json:"recoil"`
	Heal   float64 `json:"heal"`

	// Null means always hits once
	MinHits *int `json:"min_hits"`
	MaxHits *int `json:"max_hits"`

	SideCondition string `json:"side_condition"`
	Weather       string `json:"weather"`
	Terrain       string `json:"terrain"`
	Pivot         bool   `json:"pivot"`

	Type PokemonType `json:"-"`
}

func (m MoveData) IsNil() bool {
	return m.Name == ""
}

func (m MoveData) HasFlag(flag string) bool {
	return lo.Contains(m.Flags, flag)
}

func (m MoveData) IsDamaging() bool {
	return m.DamageClass != DAMAGETYPE_STATUS
}

func (m MoveData) IsSpread() bool {
	return m.Target == TARGET_ALL_ADJACENT_FOES || m.Target == TARGET_ALL_ADJACENT
}

func (m MoveData) MultiHit() bool {
	return m.MinHits != nil && m.MaxHits != nil && *m.MaxHits > 1
}

const (
	FLAG_CONTACT = "contact"
	FLAG_SOUND   = "sound"
	FLAG_POWDER  = "powder"
	FLAG_PUNCH   = "punch"
	FLAG_BITE    = "bite"
	FLAG_PULSE   = "pulse"
	FLAG_SLICING = "slicing"
	FLAG_HEAL    = "heal"
	// Ignores Protect and friends
	FLAG_BYPASS_PROTECT = "bypass-protect"
)

type BaseStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special-attack"`
	SpecialDefense int `json:"special-defense"`
	Speed          int `json:"speed"`
}

func (b BaseStats) Get(stat Stat) int {
	switch stat {
	case STAT_ATTACK:
		return b.Attack
	case STAT_DEFENSE:
		return b.Defense
	case STAT_SPATTACK:
		return b.SpecialAttack
	case STAT_SPDEF:
		return b.SpecialDefense
	case STAT_SPEED:
		return b.Speed
	}

	return 0
}

type SpeciesData struct {
	Name      string    `json:"name"`
	TypeNames []string  `json:"types"`
	BaseStats BaseStats `json:"base_stats"`

	Types [2]PokemonType `json:"-"`
}

// GetMove returns the move with the given id, or nil if it is unknown
func (db *pokemonDb) GetMove(name string) *MoveData {
	move, ok := db.moves[name]
	if ok {
		return &move
	}

	return nil
}

func (db *pokemonDb) GetSpecies(name string) *SpeciesData {
	species, ok := db.species[strings.ToLower(name)]
	if ok {
		return &species
	}

	return nil
}

func (db *pokemonDb) MoveCount() int {
	return len(db.moves)
}

func (db *pokemonDb) SpeciesCount() int {
	return len(db.species)
}

// move looks up move data and falls back to the "none" move for unknown ids.
// Unknown ids resolve to no effect rather than an error.
func (db *pokemonDb) move(name string) MoveData {
	move, ok := db.moves[name]
	if !ok {
		return db.moves[MOVE_NONE]
	}

	return move
}

// LoadMoves takes in json that lists out move information
func LoadMoves(moveBytes []byte) (map[string]MoveData, error) {
	internalLogger.V(1).Info("Loading Move Data")

	parsedMoves := make([]MoveData, 0, 256)
	if err := json.Unmarshal(moveBytes, &parsedMoves); err != nil {
		return nil, fmt.Errorf("unmarshal move data: %w", err)
	}

	moves := make(map[string]MoveData, len(parsedMoves))
	for _, move := range parsedMoves {
		moveType, ok := TypeFromName(move.TypeName)
		if !ok {
			return nil, fmt.Errorf("move %s has unknown type %q", move.Name, move.TypeName)
		}
		move.Type = moveType
		if move.Target == "" {
			move.Target = TARGET_NORMAL
		}

		for _, change := range append(append([]StatChange{}, move.SelfBoosts...), move.Boosts...) {
			if _, ok := statFromName(change.StatName); !ok {
				return nil, fmt.Errorf("move %s has unknown stat %q", move.Name, change.StatName)
			}
		}

		moves[move.Name] = move
	}

	if _, ok := moves[MOVE_NONE]; !ok {
		return nil, fmt.Errorf("move data is missing the %q move", MOVE_NONE)
	}

	internalLogger.V(1).Info("Loaded moves", "count", len(moves))

	return moves, nil
}

// LoadSpecies takes in json that lists species types and base stats
func LoadSpecies(speciesBytes []byte) (map[string]SpeciesData, error) {
	internalLogger.V(1).Info("Loading Species Data")

	parsedSpecies := make([]SpeciesData, 0, 64)
	if err := json.Unmarshal(speciesBytes, &parsedSpecies); err != nil {
		return nil, fmt.Errorf("unmarshal species data: %w", err)
	}

	species := make(map[string]SpeciesData, len(parsedSpecies))
	for _, s := range parsedSpecies {
		if len(s.TypeNames) == 0 || len(s.TypeNames) > 2 {
			return nil, fmt.Errorf("species %s has %d types", s.Name, len(s.TypeNames))
		}

		s.Types = [2]PokemonType{TYPE_TYPELESS, TYPE_TYPELESS}
		for i, name := range s.TypeNames {
			t, ok := TypeFromName(name)
			if !ok {
				return nil, fmt.Errorf("species %s has unknown type %q", s.Name, name)
			}
			s.Types[i] = t
		}

		species[s.Name] = s
	}

	internalLogger.V(1).Info("Loaded species", "count", len(species))

	return species, nil
}

// DefaultLoader loads move and species tables from files laid out like this package's data directory.
func DefaultLoader(files fs.FS) (*pokemonDb, error) {
	db := &pokemonDb{}

	var group errgroup.Group
	group.Go(func() error {
		moveBytes, err := fs.ReadFile(files, "data/moves.json")
		if err != nil {
			return fmt.Errorf("read moves: %w", err)
		}

		moves, err := LoadMoves(moveBytes)
		if err != nil {
			return err
		}
		db.moves = moves

		return nil
	})
	group.Go(func() error {
		speciesBytes, err := fs.ReadFile(files, "data/species.json")
		if err != nil {
			return fmt.Errorf("read species: %w", err)
		}

		species, err := LoadSpecies(speciesBytes)
		if err != nil {
			return err
		}
		db.species = species

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return db, nil
}

func mustLoadEmbedded() *pokemonDb {
	db, err := DefaultLoader(embeddedData)
	if err != nil {
		panic(fmt.Sprintf("embedded battle data is invalid: %s", err))
	}

	return db
}

func statFromName(name string) (Stat, bool) {
	for stat, n := range STAT_NAMES {
		if n == name {
			return stat, true
		}
	}

	return STAT_ATTACK, false
}
