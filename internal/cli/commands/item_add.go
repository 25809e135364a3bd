package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"TodoKeeper/internal/cli/api"
	"TodoKeeper/internal/cli/auth"
	"TodoKeeper/internal/config"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Add a to-do item" }
func (addCmd) Usage() string       { return "add <text>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/item"
	item := map[string]any{"text": strings.Join(args, " ")}
	resp, body, err := api.PostJSON(endpoint, item, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	printItems(items)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
