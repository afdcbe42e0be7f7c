// Package view writes PokeAPI records to a terminal.
package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/ka2n/pokedex/api"
	"github.com/ka2n/pokedex/log"
)

// MenuText is the plain rendering of the main menu
const MenuText = " 1 Search for a Pokemon \n 2 Search for an Item \n 3 Search for a Move\n 4 To Exit"

const noEnglishEffect = "(no English effect text)"

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	menuStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			PaddingLeft(1).
			PaddingRight(1)
)

// Printer writes records as "Label: value" lines.
// A styled printer colors labels and word-wraps effect text for terminals.
type Printer struct {
	w        io.Writer
	styled   bool
	renderer *glamour.TermRenderer
}

// New creates a printer writing to w
func New(w io.Writer, styled bool) *Printer {
	p := &Printer{w: w, styled: styled}
	if styled {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			log.Debug("Falling back to plain effect text", "error", err)
		} else {
			p.renderer = r
		}
	}
	return p
}

// Menu writes the four menu options
func (p *Printer) Menu() {
	if p.styled {
		fmt.Fprintln(p.w, menuStyle.Render(strings.TrimRight(MenuText, " \n")))
		return
	}
	fmt.Fprintln(p.w, MenuText)
}

// Line writes a message on its own line
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Pokemon writes name, height, weight, base experience and the first
// moves entries of pk.Moves
func (p *Printer) Pokemon(pk *api.Pokemon, moves int) {
	p.field("Name", pk.Name)
	p.field("Height(meters)", strconv.FormatFloat(pk.HeightMeters(), 'f', -1, 64))
	p.field("Weight", strconv.Itoa(pk.Weight))
	if pk.BaseExperience != nil {
		p.field("Base experience", strconv.Itoa(*pk.BaseExperience))
	} else {
		p.field("Base experience", "-")
	}
	for _, name := range pk.MoveNames(moves) {
		p.field("Move", name)
	}
}

// Ability writes an ability with its English effect
func (p *Printer) Ability(a *api.Ability) {
	p.field("Ability", a.Name)
	entry, ok := api.EnglishEffect(a.EffectEntries)
	if !ok {
		p.field("Effect", noEnglishEffect)
		return
	}
	p.effect(entry.Effect)
}

// Item writes name, cost, category and the English effect of an item
func (p *Printer) Item(it *api.Item) {
	p.field("Name", it.Name)
	p.field("Cost", strconv.Itoa(it.Cost))
	p.field("Category", it.Category.Name)
	entry, ok := api.EnglishEffect(it.EffectEntries)
	if !ok {
		p.field("Effect", noEnglishEffect)
		return
	}
	p.effect(entry.Effect)
}

// Move writes name, type, power and the English effect of a move
func (p *Printer) Move(m *api.Move) {
	p.field("Name", m.Name)
	p.field("Type", m.Type.Name)
	if m.Power != nil {
		p.field("Power", strconv.Itoa(*m.Power))
	} else {
		p.field("Power", "-")
	}
	text, ok := m.Effect()
	if !ok {
		p.field("Effect", noEnglishEffect)
		return
	}
	p.effect(text)
}

func (p *Printer) field(label, value string) {
	if p.styled {
		label = labelStyle.Render(label + ":")
	} else {
		label += ":"
	}
	fmt.Fprintf(p.w, "%s %s\n", label, value)
}

func (p *Printer) effect(text string) {
	if p.renderer != nil {
		if out, err := p.renderer.Render(text); err == nil {
			fmt.Fprintf(p.w, "%s\n%s\n", labelStyle.Render("Effect:"), strings.Trim(out, "\n"))
			return
		}
	}
	p.field("Effect", text)
}
