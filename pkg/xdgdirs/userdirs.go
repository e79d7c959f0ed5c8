package xdgdirs

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// UserDirKind identifies a semantic, platform-reported user directory,
// distinct from the XDG base directories.
type UserDirKind string

// User directory kinds.
const (
	UserDirDesktop     UserDirKind = "desktop"
	UserDirDownload    UserDirKind = "download"
	UserDirTemplates   UserDirKind = "templates"
	UserDirPublicShare UserDirKind = "publicshare"
	UserDirDocuments   UserDirKind = "documents"
	UserDirMusic       UserDirKind = "music"
	UserDirPictures    UserDirKind = "pictures"
	UserDirVideos      UserDirKind = "videos"
)

// userDirTokens maps kinds to the tokens understood by xdg-user-dir.
var userDirTokens = map[UserDirKind]string{
	UserDirDesktop:     "DESKTOP",
	UserDirDownload:    "DOWNLOAD",
	UserDirTemplates:   "TEMPLATES",
	UserDirPublicShare: "PUBLICSHARE",
	UserDirDocuments:   "DOCUMENTS",
	UserDirMusic:       "MUSIC",
	UserDirPictures:    "PICTURES",
	UserDirVideos:      "VIDEOS",
}

// UserDirKinds returns all user directory kinds in a stable order.
func UserDirKinds() []UserDirKind {
	return []UserDirKind{
		UserDirDesktop,
		UserDirDownload,
		UserDirTemplates,
		UserDirPublicShare,
		UserDirDocuments,
		UserDirMusic,
		UserDirPictures,
		UserDirVideos,
	}
}

// ValidUserDirKind returns true if the kind is recognized.
func ValidUserDirKind(kind UserDirKind) bool {
	_, ok := userDirTokens[kind]
	return ok
}

// Provider resolves user directories. Implementations must return
// ErrLookupUnavailable (possibly wrapped) when they cannot produce a
// location, never an empty path.
type Provider interface {
	Lookup(ctx context.Context, kind UserDirKind) (string, error)
}

// DefaultLookupTimeout bounds one xdg-user-dir invocation.
const DefaultLookupTimeout = 3 * time.Second

// defaultLookupCommand is the freedesktop user-directories utility.
const defaultLookupCommand = "xdg-user-dir"

// CommandProvider resolves user directories by invoking the xdg-user-dir
// utility as a subprocess. A missing binary, non-zero exit, timeout, or
// empty output maps to ErrLookupUnavailable; the utility's habit of
// printing an empty line on failure is never passed through.
type CommandProvider struct {
	// Command is the utility to invoke. Defaults to "xdg-user-dir".
	Command string

	// Timeout bounds one invocation. Defaults to DefaultLookupTimeout.
	Timeout time.Duration
}

// Lookup runs the utility with the kind's domain token and returns its
// single-line output with trailing whitespace trimmed.
func (p *CommandProvider) Lookup(ctx context.Context, kind UserDirKind) (string, error) {
	token, ok := userDirTokens[kind]
	if !ok {
		return "", errors.Wrapf(ErrUnknownUserDir, "%q", kind)
	}

	name := p.Command
	if name == "" {
		name = defaultLookupCommand
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, token).Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.Wrapf(ErrLookupUnavailable, "%s %s timed out after %s", name, token, timeout)
		}
		return "", errors.Wrapf(ErrLookupUnavailable, "running %s %s: %v", name, token, err)
	}

	dir := strings.TrimRight(string(out), " \t\r\n")
	if dir == "" {
		return "", errors.Wrapf(ErrLookupUnavailable, "%s %s produced no output", name, token)
	}
	return dir, nil
}

// StaticProvider resolves user directories from a fixed mapping. Intended
// for tests and for embedding applications that manage locations
// themselves.
type StaticProvider map[UserDirKind]string

// Lookup returns the mapped directory, or ErrLookupUnavailable when the
// kind is not mapped.
func (p StaticProvider) Lookup(_ context.Context, kind UserDirKind) (string, error) {
	dir, ok := p[kind]
	if !ok || dir == "" {
		return "", errors.Wrapf(ErrLookupUnavailable, "no static mapping for %q", kind)
	}
	return dir, nil
}

// ChainProvider tries each provider in order and returns the first
// successful lookup.
type ChainProvider []Provider

// Lookup returns the first provider's result, falling through on error.
// The last provider's error is returned when every lookup fails.
func (p ChainProvider) Lookup(ctx context.Context, kind UserDirKind) (string, error) {
	var err error
	for _, provider := range p {
		var dir string
		if dir, err = provider.Lookup(ctx, kind); err == nil {
			return dir, nil
		}
	}
	if err == nil {
		err = errors.Wrapf(ErrLookupUnavailable, "no providers configured")
	}
	return "", err
}

// DefaultProvider returns the production lookup chain: the xdg-user-dir
// utility first, well-known fallback locations when it is absent or fails.
func DefaultProvider() Provider {
	return ChainProvider{&CommandProvider{}, FallbackProvider{}}
}

// UserDirs is a lazy, memoizing view over a Provider. Each kind is looked
// up at most once per UserDirs value; the cached result reflects the
// environment at first access, mirroring the staleness profile of an eager
// startup lookup without the startup cost.
type UserDirs struct {
	provider Provider

	mu    sync.Mutex
	cache map[UserDirKind]string
}

// NewUserDirs builds a UserDirs over the given provider. A nil provider
// selects DefaultProvider.
func NewUserDirs(provider Provider) *UserDirs {
	if provider == nil {
		provider = DefaultProvider()
	}
	return &UserDirs{
		provider: provider,
		cache:    make(map[UserDirKind]string),
	}
}

// Dir returns the user directory for kind, consulting the provider on
// first access and the cache afterward. Failed lookups are not cached.
func (u *UserDirs) Dir(ctx context.Context, kind UserDirKind) (string, error) {
	if !ValidUserDirKind(kind) {
		return "", errors.Wrapf(ErrUnknownUserDir, "%q", kind)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if dir, ok := u.cache[kind]; ok {
		return dir, nil
	}
	dir, err := u.provider.Lookup(ctx, kind)
	if err != nil {
		return "", err
	}
	u.cache[kind] = dir
	return dir, nil
}

// Path joins rel onto the user directory for kind. An empty rel returns
// the directory itself. No directory is created and no existence check is
// performed.
func (u *UserDirs) Path(ctx context.Context, kind UserDirKind, rel string) (string, error) {
	dir, err := u.Dir(ctx, kind)
	if err != nil {
		return "", err
	}
	if rel == "" {
		return dir, nil
	}
	return filepath.Join(dir, rel), nil
}

// LocateDocumentFile returns the path of name inside the Documents
// directory. Pure: no filesystem mutation, no existence check.
func (u *UserDirs) LocateDocumentFile(ctx context.Context, name string) (string, error) {
	return u.Path(ctx, UserDirDocuments, name)
}
