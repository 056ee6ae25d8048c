package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRootsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "Print the static-asset root directories the finders expose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roots, err := c.app.Roots()
			if err != nil {
				return err
			}
			for _, root := range roots {
				fmt.Fprintln(cmd.OutOrStdout(), root)
			}
			return nil
		},
	}
}
