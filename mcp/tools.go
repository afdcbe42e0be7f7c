package mcp

import (
	"bytes"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/pokedex/api"
	"github.com/ka2n/pokedex/view"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
)

var validate = validator.New()

func InitTools(client *api.Client) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(LookupPokemon(client)))
	tools = append(tools, newServerTool(LookupItem(client)))
	tools = append(tools, newServerTool(LookupMove(client)))

	return tools
}

type lookupArguments struct {
	Name string `mapstructure:"name" validate:"required"`
}

func decodeArguments(ctx context.Context, req mcp.CallToolRequest, args any) error {
	if err := mapstructure.Decode(req.Params.Arguments, args); err != nil {
		return err
	}
	return validate.StructCtx(ctx, args)
}

// errorResult reports err to the client with its user facing message
func errorResult(err error) *mcp.CallToolResult {
	if msg := failure.MessageOf(err); msg != "" {
		return mcp.NewToolResultError(msg.String())
	}
	return mcp.NewToolResultError(err.Error())
}

func LookupPokemon(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"lookup_pokemon",
			mcp.WithDescription("Look up a Pokémon on PokeAPI: height in meters, weight, base experience, moves and abilities with their effects"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Pokémon name or national dex number")),
			mcp.WithNumber("moves", mcp.Description("Number of moves to list, in PokeAPI order (default: all)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Name  string `mapstructure:"name" validate:"required"`
				Moves int    `mapstructure:"moves" validate:"gte=0"`
			}
			var args ToolArguments
			if err := decodeArguments(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			pk, err := client.FetchPokemon(ctx, args.Name)
			if err != nil {
				return errorResult(err), nil
			}

			moves := len(pk.Moves)
			if args.Moves > 0 {
				if args.Moves > len(pk.Moves) {
					return mcp.NewToolResultError("Invalid number of moves"), nil
				}
				moves = args.Moves
			}

			var buf bytes.Buffer
			p := view.New(&buf, false)
			p.Pokemon(pk, moves)
			for _, slot := range pk.Abilities {
				ability, err := client.FetchAbility(ctx, slot.Ability)
				if err != nil {
					return errorResult(err), nil
				}
				p.Ability(ability)
			}

			return mcp.NewToolResultText(buf.String()), nil
		}
}

func LookupItem(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"lookup_item",
			mcp.WithDescription("Look up an item on PokeAPI: cost, category and English effect"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Item name or id")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var args lookupArguments
			if err := decodeArguments(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			item, err := client.FetchItem(ctx, args.Name)
			if err != nil {
				return errorResult(err), nil
			}

			var buf bytes.Buffer
			view.New(&buf, false).Item(item)
			return mcp.NewToolResultText(buf.String()), nil
		}
}

func LookupMove(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"lookup_move",
			mcp.WithDescription("Look up a move on PokeAPI: type, power and English effect"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Move name or id")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var args lookupArguments
			if err := decodeArguments(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			move, err := client.FetchMove(ctx, args.Name)
			if err != nil {
				return errorResult(err), nil
			}

			var buf bytes.Buffer
			view.New(&buf, false).Move(move)
			return mcp.NewToolResultText(buf.String()), nil
		}
}
