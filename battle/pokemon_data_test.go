package battle

import (
	"strings"
	"testing"
	"testing/fstest"
)

const noneMove = `{"name": "none", "type": "Typeless", "damage_class": "status"}`

func TestEmbeddedDataLoads(t *testing.T) {
	if GlobalData.MoveCount() == 0 || GlobalData.SpeciesCount() == 0 {
		t.Fatalf("expected embedded data, got %d moves and %d species", GlobalData.MoveCount(), GlobalData.SpeciesCount())
	}

	tackle := GlobalData.GetMove("tackle")
	if tackle == nil || tackle.Type != TYPE_NORMAL || !tackle.HasFlag(FLAG_CONTACT) {
		t.Fatalf("unexpected tackle %+v", tackle)
	}
	if GlobalData.GetMove("not-a-move") != nil {
		t.Fatalf("expected unknown moves to be nil")
	}
	if GlobalData.move("not-a-move").Name != MOVE_NONE {
		t.Fatalf("expected unknown moves to fall back to %q", MOVE_NONE)
	}

	tatsugiri := GlobalData.GetSpecies("Tatsugiri")
	if tatsugiri == nil || tatsugiri.Types != [2]PokemonType{TYPE_DRAGON, TYPE_WATER} {
		t.Fatalf("unexpected tatsugiri %+v", tatsugiri)
	}
}

func TestLoadMovesRejectsBadData(t *testing.T) {
	tests := map[string]string{
		"bad json":     `[{"name": }]`,
		"unknown type": `[` + noneMove + `, {"name": "zap", "type": "Laser"}]`,
		"unknown stat": `[` + noneMove + `, {"name": "grow", "type": "Grass", "self_boosts": [{"change": 1, "stat_name": "luck"}]}]`,
		"missing none": `[{"name": "tackle", "type": "Normal"}]`,
	}

	for name, data := range tests {
		if _, err := LoadMoves([]byte(data)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestLoadMovesDefaultsTarget(t *testing.T) {
	moves, err := LoadMoves([]byte(`[` + noneMove + `, {"name": "zap", "type": "Electric", "power": 40}]`))
	if err != nil {
		t.Fatalf("failed to load moves: %v", err)
	}

	if moves["zap"].Target != TARGET_NORMAL || moves["zap"].Type != TYPE_ELECTRIC {
		t.Fatalf("unexpected move %+v", moves["zap"])
	}
}

func TestLoadSpeciesRejectsBadTypes(t *testing.T) {
	tests := map[string]string{
		"no types":     `[{"name": "blob", "types": []}]`,
		"three types":  `[{"name": "blob", "types": ["Fire", "Water", "Grass"]}]`,
		"unknown type": `[{"name": "blob", "types": ["Plastic"]}]`,
	}

	for name, data := range tests {
		if _, err := LoadSpecies([]byte(data)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestDefaultLoaderReportsMissingFiles(t *testing.T) {
	files := fstest.MapFS{
		"data/moves.json": {Data: []byte(`[` + noneMove + `]`)},
	}

	_, err := DefaultLoader(files)
	if err == nil || !strings.Contains(err.Error(), "read species") {
		t.Fatalf("expected a missing species error, got %v", err)
	}
}
