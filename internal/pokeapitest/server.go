// Package pokeapitest serves recorded PokeAPI responses for tests.
package pokeapitest

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

//go:embed testdata/*.json
var fixtures embed.FS

// routes maps request paths to fixture files. Trailing slashes are ignored.
var routes = map[string]string{
	"/pokemon/pikachu":  "pokemon_pikachu.json",
	"/pokemon/25":       "pokemon_pikachu.json",
	"/pokemon/unown":    "pokemon_unown.json",
	"/ability/9":        "ability_static.json",
	"/ability/31":       "ability_lightning_rod.json",
	"/item/master-ball": "item_master_ball.json",
	"/move/thunderbolt": "move_thunderbolt.json",
	"/move/growl":       "move_growl.json",
}

// Server is a fake PokeAPI backed by testdata fixtures.
//
// Besides the fixtures it answers /item/broken with a body that is not JSON
// and /move/teapot with 418. Every other path is a 404.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

// NewServer starts a fake PokeAPI that is closed when the test ends
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Requests returns the paths requested so far, in order
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")

	s.mu.Lock()
	s.requests = append(s.requests, path)
	s.mu.Unlock()

	switch path {
	case "/item/broken":
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not json"))
		return
	case "/move/teapot":
		http.Error(w, "I'm a teapot", http.StatusTeapot)
		return
	}

	name, ok := routes[path]
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	body, err := fixtures.ReadFile("testdata/" + name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(strings.ReplaceAll(string(body), "{{BASE}}", s.URL)))
}
