package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/ka2n/pokedex/api"
	"github.com/ka2n/pokedex/log"
	"github.com/ka2n/pokedex/view"
	"github.com/morikuni/failure/v2"
)

const (
	choicePrompt    = "Make a choice "
	termPrompt      = "Enter your search term "
	moveCountPrompt = "How many moves would you like to show? "
)

// Session runs the interactive search menu until the user exits
type Session struct {
	client  *api.Client
	in      LineReader
	printer *view.Printer
}

// NewSession creates a session reading from in and printing with printer
func NewSession(client *api.Client, in LineReader, printer *view.Printer) *Session {
	return &Session{
		client:  client,
		in:      in,
		printer: printer,
	}
}

// Run shows the menu, dispatches the choice and repeats.
// It returns nil when the user picks exit, closes the input or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		s.printer.Menu()
		choice, err := s.ask(choicePrompt)
		if err != nil {
			if isEndOfInput(err) {
				return nil
			}
			return failure.Wrap(err)
		}

		var search func(context.Context, string) error
		var kind string
		switch strings.TrimSpace(choice) {
		case "1":
			kind, search = "Pokemon", s.searchPokemon
		case "2":
			kind, search = "item", s.searchItem
		case "3":
			kind, search = "move", s.searchMove
		case "4":
			return nil
		default:
			log.Debug("Invalid menu choice", "choice", choice)
			s.printer.Line("incorrect command!!")
			continue
		}

		term, err := s.ask(termPrompt)
		if err == nil {
			err = search(ctx, term)
		}
		if err != nil {
			if isEndOfInput(err) {
				return nil
			}
			s.report(kind, err)
		}
	}
}

func (s *Session) ask(prompt string) (string, error) {
	s.in.SetPrompt(prompt)
	return s.in.Readline()
}

// report prints a search failure and returns control to the menu
func (s *Session) report(kind string, err error) {
	log.Debug("Search failed", "kind", kind, "error", err)
	if failure.Is(err, InvalidMoveCount) {
		s.printer.Line("%s", UserMessage(err))
		return
	}
	s.printer.Line("Error searching %s: %s", kind, UserMessage(err))
}

func (s *Session) searchPokemon(ctx context.Context, term string) error {
	pk, err := s.client.FetchPokemon(ctx, term)
	if err != nil {
		return err
	}

	total := len(pk.Moves)
	s.printer.Line("There are %d moves", total)

	count := 0
	if total > 0 {
		answer, err := s.ask(moveCountPrompt)
		if err != nil {
			return err
		}
		count, err = parseMoveCount(answer, total)
		if err != nil {
			return err
		}
	}

	s.printer.Pokemon(pk, count)

	for _, slot := range pk.Abilities {
		ability, err := s.client.FetchAbility(ctx, slot.Ability)
		if err != nil {
			return err
		}
		s.printer.Ability(ability)
	}
	return nil
}

func (s *Session) searchItem(ctx context.Context, term string) error {
	item, err := s.client.FetchItem(ctx, term)
	if err != nil {
		return err
	}
	s.printer.Item(item)
	return nil
}

func (s *Session) searchMove(ctx context.Context, term string) error {
	move, err := s.client.FetchMove(ctx, term)
	if err != nil {
		return err
	}
	s.printer.Move(move)
	return nil
}

// parseMoveCount accepts a whole number between 1 and total
func parseMoveCount(answer string, total int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > total {
		return 0, failure.New(InvalidMoveCount,
			failure.Message("Invalid number of moves"),
			failure.Context{
				"answer": answer,
				"total":  strconv.Itoa(total),
			},
		)
	}
	return n, nil
}
