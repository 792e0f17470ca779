package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-sheets/internal/app"
	"github.com/KirkDiggler/dnd-sheets/internal/config"
	"github.com/KirkDiggler/dnd-sheets/internal/dice"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
)

type rootOptions struct {
	owner    string
	doImport bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "sheets",
		Short:         "Build D&D 5e character sheets from descriptions",
		Long:          `sheets composes multiclass D&D 5e characters from JSON descriptions and stores them in Redis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.owner, "owner", os.Getenv("USER"), "owner ID for stored sheets")
	root.PersistentFlags().BoolVar(&opts.doImport, "import", false, "import SRD content from the D&D 5e API before running")

	root.AddCommand(
		newRenderCmd(opts),
		newSaveCmd(opts),
		newShowCmd(opts),
		newListCmd(opts),
		newDeleteCmd(opts),
		newCatalogCmd(),
		newRollCmd(dice.NewRandomRoller()),
	)

	return root
}

// start builds the app from the environment; requireRedis is set for commands
// that read stored sheets, which would always miss in memory
func (o *rootOptions) start(ctx context.Context, requireRedis bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return app.New(ctx, cfg, &app.Options{
		Import:       &o.doImport,
		RequireRedis: requireRedis,
	})
}

func readDescriptionFile(path string) (character.Description, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = readAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return character.ParseDescription(data)
}
