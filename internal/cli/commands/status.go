package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"TodoKeeper/internal/cli/api"
	"TodoKeeper/internal/cli/auth"
	"TodoKeeper/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check server availability and stored auth" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/ping"
	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	fmt.Fprintln(Out, "Server: ok")

	if _, err := auth.LoadToken(cfg.TokenFile); err != nil {
		fmt.Fprintln(Out, "Auth: no stored token")
		return nil
	}
	fmt.Fprintln(Out, "Auth: token stored")
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
