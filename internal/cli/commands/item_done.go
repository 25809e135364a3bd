package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"TodoKeeper/internal/cli/api"
	"TodoKeeper/internal/cli/auth"
	"TodoKeeper/internal/config"
)

type doneCmd struct{}

func (doneCmd) Name() string        { return "done" }
func (doneCmd) Description() string { return "Toggle the done mark of an item by index" }
func (doneCmd) Usage() string       { return "done <index>" }

func (doneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return mutateByIndex(cfg, http.MethodPut, args)
}

func init() { RegisterCmd(doneCmd{}) }

// mutateByIndex шлёт PUT или DELETE на /api/item/{index} и печатает
// обновлённый список.
func mutateByIndex(cfg *config.Config, method string, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	if _, err := strconv.Atoi(args[0]); err != nil {
		return ErrUsage
	}
	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/item/" + args[0]
	resp, body, err := api.DoJSON(method, endpoint, nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	printItems(items)
	return nil
}
