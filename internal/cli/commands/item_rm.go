package commands

import (
	"context"
	"net/http"

	"TodoKeeper/internal/config"
)

type rmCmd struct{}

func (rmCmd) Name() string        { return "rm" }
func (rmCmd) Description() string { return "Remove an item by index" }
func (rmCmd) Usage() string       { return "rm <index>" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return mutateByIndex(cfg, http.MethodDelete, args)
}

func init() { RegisterCmd(rmCmd{}) }
