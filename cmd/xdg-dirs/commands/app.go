package commands

import (
	"errors"

	"github.com/spf13/cobra"

	xdgerrors "github.com/francisco-colaco/xdg-directories/internal/errors"
	"github.com/francisco-colaco/xdg-directories/pkg/xdgdirs"
)

// appOutput holds the value of the app command's --output flag.
var appOutput string

func init() {
	appCmd.Flags().StringVarP(&appOutput, "output", "o", outputText,
		"output format: text, json, yaml")
	rootCmd.AddCommand(appCmd)
}

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Print the application directories",
	Long: `Print the application directories: each XDG base directory with the
application namespace appended. The namespace comes from the --app flag
or the configuration file. The runtime entry stays unset when
XDG_RUNTIME_DIR is absent and no override is configured.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolver()
		if err != nil {
			return err
		}

		var set dirSet
		for _, domain := range xdgdirs.Domains() {
			dir, err := r.AppDir(domain)
			if err != nil {
				if errors.Is(err, xdgdirs.ErrRuntimeDirUnset) {
					continue
				}
				return xdgerrors.NewUserError(err, "")
			}
			switch domain {
			case xdgdirs.DomainConfig:
				set.Config = dir
			case xdgdirs.DomainData:
				set.Data = dir
			case xdgdirs.DomainCache:
				set.Cache = dir
			case xdgdirs.DomainRuntime:
				set.Runtime = dir
			}
		}

		if err := writeDirSet(cmd.OutOrStdout(), set, appOutput); err != nil {
			return xdgerrors.NewUserError(err, "")
		}
		return nil
	},
}
