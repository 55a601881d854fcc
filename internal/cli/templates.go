package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitstrap.dev/gitstrap/internal/templates"
)

// newTemplatesCmd creates the templates command
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "templates [name]",
		Short:     "List the generated files, or print one of them",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: templates.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, t := range templates.All() {
					if _, err := fmt.Fprintf(out, "%-12s %s\n", t.Name, t.Path); err != nil {
						return err
					}
				}
				return nil
			}

			t, err := templates.Lookup(args[0])
			if err != nil {
				return err
			}
			_, err = out.Write(t.Bytes())
			return err
		},
	}
}
