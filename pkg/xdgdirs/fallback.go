package xdgdirs

import (
	"context"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// FallbackProvider serves well-known user directory locations without
// consulting the lookup utility. Values come from github.com/adrg/xdg,
// which honors user-dirs.dirs when present and otherwise falls back to
// conventional home subdirectories (~/Desktop, ~/Documents, ...).
type FallbackProvider struct{}

// Lookup returns the well-known location for kind.
func (FallbackProvider) Lookup(_ context.Context, kind UserDirKind) (string, error) {
	var dir string
	switch kind {
	case UserDirDesktop:
		dir = xdg.UserDirs.Desktop
	case UserDirDownload:
		dir = xdg.UserDirs.Download
	case UserDirTemplates:
		dir = xdg.UserDirs.Templates
	case UserDirPublicShare:
		dir = xdg.UserDirs.PublicShare
	case UserDirDocuments:
		dir = xdg.UserDirs.Documents
	case UserDirMusic:
		dir = xdg.UserDirs.Music
	case UserDirPictures:
		dir = xdg.UserDirs.Pictures
	case UserDirVideos:
		dir = xdg.UserDirs.Videos
	default:
		return "", errors.Wrapf(ErrUnknownUserDir, "%q", kind)
	}
	if dir == "" {
		return "", errors.Wrapf(ErrLookupUnavailable, "no fallback location for %q", kind)
	}
	return dir, nil
}
