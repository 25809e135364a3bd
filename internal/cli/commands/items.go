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

type itemsResponse struct {
	Items []map[string]any `json:"items"`
	Name  string           `json:"name"`
}

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Show the to-do list" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items"
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var ir itemsResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "%s's list:\n", ir.Name)
	printItems(ir.Items)
	return nil
}

func init() { RegisterCmd(listCmd{}) }

// printItems печатает элементы с позиционными индексами — теми же, что
// принимают команды done и rm.
func printItems(items []map[string]any) {
	if len(items) == 0 {
		fmt.Fprintln(Out, "  (empty)")
		return
	}
	for i, it := range items {
		mark := " "
		if done, ok := it["done"].(bool); ok && done {
			mark = "x"
		}
		text, _ := it["text"].(string)
		if text == "" {
			// элемент без text показываем сырым JSON
			raw, _ := json.Marshal(it)
			text = string(raw)
		}
		fmt.Fprintf(Out, "  %d. [%s] %s\n", i, mark, text)
	}
}
