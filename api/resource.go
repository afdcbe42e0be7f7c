package api

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// NamedResource is PokeAPI's reference to another resource
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EffectEntry is a per-language description of an effect
type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// EnglishEffect returns the entry whose language is "en"
func EnglishEffect(entries []EffectEntry) (EffectEntry, bool) {
	return lo.Find(entries, func(e EffectEntry) bool {
		return e.Language.Name == "en"
	})
}

// Pokemon is the projection of /pokemon/{name}
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience *int          `json:"base_experience"`
	Moves          []MoveSlot    `json:"moves"`
	Abilities      []AbilitySlot `json:"abilities"`
}

type MoveSlot struct {
	Move NamedResource `json:"move"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// HeightMeters converts the decimetre height reported by PokeAPI
func (p *Pokemon) HeightMeters() float64 {
	return float64(p.Height) / 10
}

// MoveNames returns the names of the first n moves in API order.
// n is clamped to the number of moves.
func (p *Pokemon) MoveNames(n int) []string {
	n = max(0, min(n, len(p.Moves)))
	return lo.Map(p.Moves[:n], func(m MoveSlot, _ int) string {
		return m.Move.Name
	})
}

// Ability is the projection of /ability/{name}
type Ability struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// Item is the projection of /item/{name}
type Item struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Cost          int           `json:"cost"`
	Category      NamedResource `json:"category"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// Move is the projection of /move/{name}
type Move struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Type          NamedResource `json:"type"`
	Power         *int          `json:"power"`
	EffectChance  *int          `json:"effect_chance"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// Effect returns the English effect text with $effect_chance filled in
func (m *Move) Effect() (string, bool) {
	entry, ok := EnglishEffect(m.EffectEntries)
	if !ok {
		return "", false
	}
	text := entry.Effect
	if m.EffectChance != nil {
		text = strings.ReplaceAll(text, "$effect_chance", strconv.Itoa(*m.EffectChance))
	}
	return text, true
}
