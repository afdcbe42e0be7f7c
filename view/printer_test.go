package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ka2n/pokedex/api"
)

func intPtr(i int) *int { return &i }

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestPrinterPokemon(t *testing.T) {
	pk := &api.Pokemon{
		Name:           "bulbasaur",
		Height:         7,
		Weight:         69,
		BaseExperience: intPtr(64),
		Moves: []api.MoveSlot{
			{Move: api.NamedResource{Name: "razor-wind"}},
			{Move: api.NamedResource{Name: "swords-dance"}},
			{Move: api.NamedResource{Name: "cut"}},
		},
	}

	var buf bytes.Buffer
	New(&buf, false).Pokemon(pk, 2)

	want := []string{
		"Name: bulbasaur",
		"Height(meters): 0.7",
		"Weight: 69",
		"Base experience: 64",
		"Move: razor-wind",
		"Move: swords-dance",
	}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Errorf("Pokemon() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterItem(t *testing.T) {
	it := &api.Item{
		Name:     "potion",
		Cost:     200,
		Category: api.NamedResource{Name: "healing"},
		EffectEntries: []api.EffectEntry{
			{Effect: "Stellt 20 KP wieder her.", Language: api.NamedResource{Name: "de"}},
			{Effect: "Restores 20 HP.", Language: api.NamedResource{Name: "en"}},
		},
	}

	var buf bytes.Buffer
	New(&buf, false).Item(it)

	want := []string{
		"Name: potion",
		"Cost: 200",
		"Category: healing",
		"Effect: Restores 20 HP.",
	}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Errorf("Item() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterMove(t *testing.T) {
	tests := []struct {
		name string
		move *api.Move
		want []string
	}{
		{
			name: "damaging move",
			move: &api.Move{
				Name:         "ember",
				Type:         api.NamedResource{Name: "fire"},
				Power:        intPtr(40),
				EffectChance: intPtr(10),
				EffectEntries: []api.EffectEntry{
					{Effect: "Has a $effect_chance% chance to burn the target.", Language: api.NamedResource{Name: "en"}},
				},
			},
			want: []string{
				"Name: ember",
				"Type: fire",
				"Power: 40",
				"Effect: Has a 10% chance to burn the target.",
			},
		},
		{
			name: "status move without English text",
			move: &api.Move{
				Name: "growl",
				Type: api.NamedResource{Name: "normal"},
				EffectEntries: []api.EffectEntry{
					{Effect: "Senkt den Angriff.", Language: api.NamedResource{Name: "de"}},
				},
			},
			want: []string{
				"Name: growl",
				"Type: normal",
				"Power: -",
				"Effect: (no English effect text)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, false).Move(tt.move)
			if diff := cmp.Diff(tt.want, lines(buf.String())); diff != "" {
				t.Errorf("Move() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrinterMenu(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Menu()
	if buf.String() != MenuText+"\n" {
		t.Errorf("Menu() = %q", buf.String())
	}

	buf.Reset()
	New(&buf, true).Menu()
	for _, option := range []string{"Search for a Pokemon", "Search for an Item", "Search for a Move", "To Exit"} {
		if !strings.Contains(buf.String(), option) {
			t.Errorf("styled Menu() is missing %q:\n%s", option, buf.String())
		}
	}
}

func TestPrinterStyledAbility(t *testing.T) {
	a := &api.Ability{
		Name: "overgrow",
		EffectEntries: []api.EffectEntry{
			{Effect: "Strengthens grass moves when HP is low.", Language: api.NamedResource{Name: "en"}},
		},
	}

	var buf bytes.Buffer
	New(&buf, true).Ability(a)

	for _, s := range []string{"overgrow", "Strengthens", "grass moves"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("styled Ability() is missing %q:\n%s", s, buf.String())
		}
	}
}
