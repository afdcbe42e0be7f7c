package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ka2n/pokedex/log"
	"github.com/morikuni/failure/v2"
)

// Client fetches resources from a PokeAPI compatible server
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient creates a client for baseURL whose requests are logged at debug level.
// A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: log.Transport(http.DefaultTransport),
		},
	}
}

// resourceURL builds the URL of a named resource such as pokemon/pikachu
func (c *Client) resourceURL(resource, slug string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.BaseURL, "/"), resource, url.PathEscape(slug))
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// getJSON issues a GET for rawURL and decodes the JSON body into T.
// what names the resource in user facing messages.
func getJSON[T any](ctx context.Context, c *Client, what, rawURL string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, failure.Translate(err, ErrRequest,
			failure.Message("Invalid request URL"),
			failure.Context{"url": rawURL},
		)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, failure.Translate(err, ErrRequest,
			failure.Message("Could not reach the Pokémon API"),
			failure.Context{"url": rawURL},
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, failure.New(ErrNotFound,
			failure.Message(fmt.Sprintf("%s not found", what)),
			failure.Context{"url": rawURL},
		)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, failure.New(ErrUnexpectedStatus,
			failure.Message(fmt.Sprintf("The Pokémon API answered %s", resp.Status)),
			failure.Context{
				"url":    rawURL,
				"status": resp.Status,
			},
		)
	}

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, failure.Translate(err, ErrDecode,
			failure.Message("Unexpected response from the Pokémon API"),
			failure.Context{"url": rawURL},
		)
	}
	return &v, nil
}

// FetchPokemon looks up a Pokémon by name or national dex number
func (c *Client) FetchPokemon(ctx context.Context, term string) (*Pokemon, error) {
	slug, err := NormalizeTerm(term)
	if err != nil {
		return nil, err
	}
	return getJSON[Pokemon](ctx, c, fmt.Sprintf("Pokemon %q", slug), c.resourceURL("pokemon", slug))
}

// FetchItem looks up an item by name or id
func (c *Client) FetchItem(ctx context.Context, term string) (*Item, error) {
	slug, err := NormalizeTerm(term)
	if err != nil {
		return nil, err
	}
	return getJSON[Item](ctx, c, fmt.Sprintf("Item %q", slug), c.resourceURL("item", slug))
}

// FetchMove looks up a move by name or id
func (c *Client) FetchMove(ctx context.Context, term string) (*Move, error) {
	slug, err := NormalizeTerm(term)
	if err != nil {
		return nil, err
	}
	return getJSON[Move](ctx, c, fmt.Sprintf("Move %q", slug), c.resourceURL("move", slug))
}

// FetchAbility follows the ability URL embedded in a Pokémon response
func (c *Client) FetchAbility(ctx context.Context, ref NamedResource) (*Ability, error) {
	rawURL := ref.URL
	if rawURL == "" {
		rawURL = c.resourceURL("ability", ref.Name)
	}
	return getJSON[Ability](ctx, c, fmt.Sprintf("Ability %q", ref.Name), rawURL)
}
