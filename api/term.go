package api

import (
	"strings"

	"github.com/morikuni/failure/v2"
)

// NormalizeTerm turns free text such as " Master Ball " into the PokeAPI
// slug "master-ball"
func NormalizeTerm(term string) (string, error) {
	slug := strings.Join(strings.Fields(strings.ToLower(term)), "-")
	if slug == "" {
		return "", failure.New(ErrInvalidTerm,
			failure.Message("Search term is empty"),
		)
	}
	return slug, nil
}
