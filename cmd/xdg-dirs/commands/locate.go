package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	xdgerrors "github.com/francisco-colaco/xdg-directories/internal/errors"
	"github.com/francisco-colaco/xdg-directories/pkg/xdgdirs"
)

// createParents holds the value of the locate command's --create flag.
var createParents bool

func init() {
	locateCmd.Flags().BoolVarP(&createParents, "create", "c", false,
		"create missing parent directories")
	rootCmd.AddCommand(locateCmd)
}

var locateCmd = &cobra.Command{
	Use:   "locate <domain> <file>",
	Short: "Locate a file inside an application directory",
	Long: `Locate a file inside one of the application directories (config, data,
cache, or runtime) and print its absolute path. The file itself is never
checked or created; with --create, missing parent directories are
created recursively.`,
	Example: `  xdg-dirs locate config init.el
  xdg-dirs locate cache elfeed/index --create
  xdg-dirs locate runtime server.sock`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain := xdgdirs.Domain(args[0])
		if !xdgdirs.ValidDomain(domain) {
			return xdgerrors.NewUserError(
				fmt.Errorf("unknown domain %q", args[0]),
				"Valid domains: "+domainList())
		}

		r, err := resolver()
		if err != nil {
			return err
		}

		path, err := r.Locate(domain, args[1], createParents)
		switch {
		case errors.Is(err, xdgdirs.ErrRuntimeDirUnset):
			return xdgerrors.NewUserError(err,
				"Set XDG_RUNTIME_DIR or configure directories.runtime_dir")
		case err != nil:
			var dirErr *xdgdirs.DirCreationError
			if errors.As(err, &dirErr) {
				return xdgerrors.NewSystemError(err,
					"Check permissions on "+dirErr.Path)
			}
			return xdgerrors.NewSystemError(err, "")
		}

		slog.Debug("located file",
			"domain", string(domain), "path", path, "create", createParents)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func domainList() string {
	domains := xdgdirs.Domains()
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
