package main

import (
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-sheets/internal/app"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook/dnd5e"
	catalogService "github.com/KirkDiggler/dnd-sheets/internal/services/catalog"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Build a description file and print the sheet without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := readDescriptionFile(args[0])
			if err != nil {
				return err
			}

			a, err := opts.start(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeApp(a)

			char, err := a.Provider.SheetService.Build(desc)
			if err != nil {
				return err
			}

			return printSheet(cmd.OutOrStdout(), char)
		},
	}
}

func newSaveCmd(opts *rootOptions) *cobra.Command {
	var replace string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Validate and store a description file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := readDescriptionFile(args[0])
			if err != nil {
				return err
			}

			a, err := opts.start(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeApp(a)

			svc := a.Provider.SheetService
			if replace != "" {
				result, err := svc.Replace(cmd.Context(), opts.owner, replace, desc)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Replaced %s (%s)\n", result.Sheet.ID, result.Sheet.Name)
				return nil
			}

			result, err := svc.Save(cmd.Context(), opts.owner, desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", result.Sheet.ID, result.Sheet.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&replace, "replace", "", "ID of a sheet to overwrite")
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.start(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeApp(a)

			result, err := a.Provider.SheetService.Render(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printSheet(cmd.OutOrStdout(), result.Character)
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the owner's stored sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.start(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeApp(a)

			list, err := a.Provider.SheetService.ListByOwner(cmd.Context(), opts.owner)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tUPDATED")
			for _, sh := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", sh.ID, sh.Name, sh.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.start(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeApp(a)

			if err := a.Provider.SheetService.Delete(cmd.Context(), opts.owner, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newCatalogCmd() *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Rulebook content commands",
	}

	catalog.AddCommand(newCatalogCountCmd(), newCatalogImportCmd())
	return catalog
}

func newCatalogCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count the built-in entries per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCounts(cmd.OutOrStdout(), dnd5e.NewLibrary())
		},
	}
}

func newCatalogImportCmd() *cobra.Command {
	var features bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Pull SRD content from the D&D 5e API and report what the built-in rulebook lacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the import runs here, so start must not run it as well
			a, err := (&rootOptions{}).start(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeApp(a)

			result, err := a.Provider.CatalogService.Import(cmd.Context(), a.Provider.Library, &catalogService.ImportInput{
				Features: features,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.ImportSummary(result))
			return printCounts(cmd.OutOrStdout(), a.Provider.Library)
		},
	}

	cmd.Flags().BoolVar(&features, "features", false, "also import class features (slow)")
	return cmd
}

func closeApp(a *app.App) {
	if err := a.Close(); err != nil {
		log.Println(err)
	}
}

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, 1<<20))
}
