package xdgdirs

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Domain identifies one of the four XDG base directory families.
type Domain string

// Directory domains.
const (
	DomainConfig  Domain = "config"
	DomainData    Domain = "data"
	DomainCache   Domain = "cache"
	DomainRuntime Domain = "runtime"
)

// Domains returns all directory domains in a stable order.
func Domains() []Domain {
	return []Domain{DomainConfig, DomainData, DomainCache, DomainRuntime}
}

// ValidDomain returns true if the domain is recognized.
func ValidDomain(d Domain) bool {
	switch d {
	case DomainConfig, DomainData, DomainCache, DomainRuntime:
		return true
	}
	return false
}

// Resolver locates files inside an application's XDG directories. It is
// built once by New and immutable afterward; all methods are safe for
// concurrent use.
type Resolver struct {
	appName string
	base    BaseDirs
	appDirs map[Domain]string
	dirPerm os.FileMode
}

// Option customizes a Resolver during construction.
type Option func(*Resolver)

// WithBaseDirs replaces the environment-derived base directories.
func WithBaseDirs(base BaseDirs) Option {
	return func(r *Resolver) { r.base = base }
}

// WithAppDir overrides the application directory for one domain,
// independently of the base directory it would otherwise derive from.
func WithAppDir(domain Domain, dir string) Option {
	return func(r *Resolver) { r.appDirs[domain] = dir }
}

// WithDirPerm sets the permission bits used when creating parent
// directories. The default is DefaultDirPerm (0700).
func WithDirPerm(perm os.FileMode) Option {
	return func(r *Resolver) { r.dirPerm = perm }
}

// New builds a Resolver for the given application namespace. Base
// directories come from the environment (see ResolveBaseDirs) unless
// overridden; each application directory defaults to the base directory
// with the namespace appended. The runtime application directory stays
// absent when XDG_RUNTIME_DIR is unset.
func New(appName string, opts ...Option) *Resolver {
	r := &Resolver{
		appName: appName,
		base:    ResolveBaseDirs(),
		appDirs: make(map[Domain]string, 4),
		dirPerm: DefaultDirPerm,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, d := range Domains() {
		if _, ok := r.appDirs[d]; ok {
			continue
		}
		if base := r.baseFor(d); base != "" {
			r.appDirs[d] = filepath.Join(base, appName)
		}
	}
	return r
}

// AppName returns the application namespace segment.
func (r *Resolver) AppName() string {
	return r.appName
}

// BaseDirs returns the base directories the resolver was built from.
func (r *Resolver) BaseDirs() BaseDirs {
	return r.base
}

func (r *Resolver) baseFor(d Domain) string {
	switch d {
	case DomainConfig:
		return r.base.ConfigHome
	case DomainData:
		return r.base.DataHome
	case DomainCache:
		return r.base.CacheHome
	case DomainRuntime:
		return r.base.RuntimeDir
	}
	return ""
}

// AppDir returns the application directory for a domain.
// Returns ErrRuntimeDirUnset for the runtime domain when XDG_RUNTIME_DIR
// was absent and no override was supplied, and ErrUnknownDomain for
// unrecognized domains. Other domains blanked by an override report a
// plain unset error.
func (r *Resolver) AppDir(domain Domain) (string, error) {
	if !ValidDomain(domain) {
		return "", errors.Wrapf(ErrUnknownDomain, "%q", domain)
	}
	dir, ok := r.appDirs[domain]
	if !ok || dir == "" {
		if domain == DomainRuntime {
			return "", errors.WithStack(ErrRuntimeDirUnset)
		}
		return "", errors.Newf("application %s directory is not set", domain)
	}
	return dir, nil
}

// Locate joins name onto the application directory for the domain and
// returns the full path. When createParents is true, the parent directory
// of the result is created recursively first; creation failures return a
// *DirCreationError carrying the offending path. The target file itself is
// never checked or created.
func (r *Resolver) Locate(domain Domain, name string, createParents bool) (string, error) {
	dir, err := r.AppDir(domain)
	if err != nil {
		return "", err
	}
	full := filepath.Join(dir, name)
	if createParents {
		parent := filepath.Dir(full)
		if err := EnsureDir(parent, r.dirPerm); err != nil {
			return "", &DirCreationError{Path: parent, Err: err}
		}
	}
	return full, nil
}

// LocateConfigFile locates name inside the application config directory.
func (r *Resolver) LocateConfigFile(name string, createParents bool) (string, error) {
	return r.Locate(DomainConfig, name, createParents)
}

// LocateDataFile locates name inside the application data directory.
func (r *Resolver) LocateDataFile(name string, createParents bool) (string, error) {
	return r.Locate(DomainData, name, createParents)
}

// LocateCacheFile locates name inside the application cache directory.
func (r *Resolver) LocateCacheFile(name string, createParents bool) (string, error) {
	return r.Locate(DomainCache, name, createParents)
}

// LocateRuntimeFile locates name inside the application runtime directory.
func (r *Resolver) LocateRuntimeFile(name string, createParents bool) (string, error) {
	return r.Locate(DomainRuntime, name, createParents)
}
