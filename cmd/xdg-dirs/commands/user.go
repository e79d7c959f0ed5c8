package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	xdgerrors "github.com/francisco-colaco/xdg-directories/internal/errors"
	"github.com/francisco-colaco/xdg-directories/pkg/xdgdirs"
)

// noFallback holds the value of the user command's --no-fallback flag.
var noFallback bool

func init() {
	userCmd.Flags().BoolVar(&noFallback, "no-fallback", false,
		"fail when the lookup utility is unavailable instead of using well-known defaults")
	rootCmd.AddCommand(userCmd)
}

var userCmd = &cobra.Command{
	Use:   "user <kind> [relpath]",
	Short: "Print a platform user directory",
	Long: `Print a platform user directory (Desktop, Documents, Music, ...) as
reported by the xdg-user-dir utility, falling back to well-known
locations when the utility is unavailable. An optional relative path is
joined onto the directory.`,
	Example: `  xdg-dirs user documents
  xdg-dirs user download iso/disk.img
  xdg-dirs user pictures --no-fallback`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := xdgdirs.UserDirKind(args[0])
		if !xdgdirs.ValidUserDirKind(kind) {
			return xdgerrors.NewUserError(
				fmt.Errorf("unknown user directory kind %q", args[0]),
				"Valid kinds: "+userDirKindList())
		}

		var rel string
		if len(args) == 2 {
			rel = args[1]
		}

		u, err := userDirs(noFallback)
		if err != nil {
			return err
		}

		path, err := u.Path(cmd.Context(), kind, rel)
		if err != nil {
			if errors.Is(err, xdgdirs.ErrLookupUnavailable) {
				return xdgerrors.NewSystemError(err,
					"Install xdg-user-dirs or drop --no-fallback")
			}
			return xdgerrors.NewSystemError(err, "")
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func userDirKindList() string {
	kinds := xdgdirs.UserDirKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
