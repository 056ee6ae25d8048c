package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile SCSS/ES6 source files into browser-ready assets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			c.app.OutputDir = out

			return c.app.Run(cmd.Context(), args, force)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Recompile even when the source is unchanged")
	cmd.Flags().StringP("out", "o", "", "Output directory (overrides configuration)")

	return cmd
}
