package commands

import (
	"github.com/spf13/cobra"

	xdgerrors "github.com/francisco-colaco/xdg-directories/internal/errors"
)

// baseOutput holds the value of the base command's --output flag.
var baseOutput string

func init() {
	baseCmd.Flags().StringVarP(&baseOutput, "output", "o", outputText,
		"output format: text, json, yaml")
	rootCmd.AddCommand(baseCmd)
}

var baseCmd = &cobra.Command{
	Use:   "base",
	Short: "Print the XDG base directories",
	Long: `Print the four XDG base directories: config, data, and cache homes
resolved from the environment with documented defaults, and the runtime
directory, which stays unset when XDG_RUNTIME_DIR is absent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolver()
		if err != nil {
			return err
		}
		base := r.BaseDirs()
		set := dirSet{
			Config:  base.ConfigHome,
			Data:    base.DataHome,
			Cache:   base.CacheHome,
			Runtime: base.RuntimeDir,
		}
		if err := writeDirSet(cmd.OutOrStdout(), set, baseOutput); err != nil {
			return xdgerrors.NewUserError(err, "")
		}
		return nil
	},
}
