package xdgdirs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

func TestStaticProvider(t *testing.T) {
	p := StaticProvider{UserDirDocuments: "/home/u/Documents"}

	got, err := p.Lookup(context.Background(), UserDirDocuments)
	if err != nil {
		t.Fatalf("Lookup(documents) error = %v", err)
	}
	if got != "/home/u/Documents" {
		t.Errorf("Lookup(documents) = %q, want %q", got, "/home/u/Documents")
	}

	_, err = p.Lookup(context.Background(), UserDirMusic)
	if !errors.Is(err, ErrLookupUnavailable) {
		t.Errorf("Lookup(music) error = %v, want ErrLookupUnavailable", err)
	}
}

func TestCommandProvider_TrimsOutput(t *testing.T) {
	// echo prints the token followed by a newline; the provider must trim it.
	p := &CommandProvider{Command: "echo"}

	got, err := p.Lookup(context.Background(), UserDirDocuments)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "DOCUMENTS" {
		t.Errorf("Lookup() = %q, want %q", got, "DOCUMENTS")
	}
}

func TestCommandProvider_MissingUtility(t *testing.T) {
	p := &CommandProvider{Command: "xdg-user-dir-does-not-exist"}

	_, err := p.Lookup(context.Background(), UserDirDesktop)
	if !errors.Is(err, ErrLookupUnavailable) {
		t.Errorf("Lookup() error = %v, want ErrLookupUnavailable", err)
	}
}

func TestCommandProvider_EmptyOutput(t *testing.T) {
	// true exits zero without printing anything, which the legacy behavior
	// would have passed through as an empty base directory.
	p := &CommandProvider{Command: "true"}

	_, err := p.Lookup(context.Background(), UserDirDesktop)
	if !errors.Is(err, ErrLookupUnavailable) {
		t.Errorf("Lookup() error = %v, want ErrLookupUnavailable", err)
	}
}

func TestCommandProvider_UnknownKind(t *testing.T) {
	p := &CommandProvider{Command: "echo"}

	_, err := p.Lookup(context.Background(), UserDirKind("attic"))
	if !errors.Is(err, ErrUnknownUserDir) {
		t.Errorf("Lookup() error = %v, want ErrUnknownUserDir", err)
	}
}

func TestChainProvider(t *testing.T) {
	chain := ChainProvider{
		StaticProvider{}, // always fails
		StaticProvider{UserDirDocuments: "/home/u/Documents"},
	}

	got, err := chain.Lookup(context.Background(), UserDirDocuments)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "/home/u/Documents" {
		t.Errorf("Lookup() = %q, want fallback value %q", got, "/home/u/Documents")
	}

	_, err = chain.Lookup(context.Background(), UserDirMusic)
	if !errors.Is(err, ErrLookupUnavailable) {
		t.Errorf("Lookup(music) error = %v, want ErrLookupUnavailable", err)
	}
}

// countingProvider records how many lookups reach it.
type countingProvider struct {
	calls int
	dir   string
}

func (p *countingProvider) Lookup(context.Context, UserDirKind) (string, error) {
	p.calls++
	return p.dir, nil
}

func TestUserDirs_Memoizes(t *testing.T) {
	p := &countingProvider{dir: "/home/u/Music"}
	u := NewUserDirs(p)

	for i := 0; i < 3; i++ {
		got, err := u.Dir(context.Background(), UserDirMusic)
		if err != nil {
			t.Fatalf("Dir() call %d error = %v", i+1, err)
		}
		if got != "/home/u/Music" {
			t.Errorf("Dir() = %q, want %q", got, "/home/u/Music")
		}
	}
	if p.calls != 1 {
		t.Errorf("provider consulted %d times, want 1", p.calls)
	}
}

func TestUserDirs_FailedLookupNotCached(t *testing.T) {
	u := NewUserDirs(StaticProvider{})

	for i := 0; i < 2; i++ {
		_, err := u.Dir(context.Background(), UserDirPictures)
		if !errors.Is(err, ErrLookupUnavailable) {
			t.Errorf("Dir() call %d error = %v, want ErrLookupUnavailable", i+1, err)
		}
	}
}

func TestUserDirs_UnknownKind(t *testing.T) {
	u := NewUserDirs(StaticProvider{})

	_, err := u.Dir(context.Background(), UserDirKind("basement"))
	if !errors.Is(err, ErrUnknownUserDir) {
		t.Errorf("Dir() error = %v, want ErrUnknownUserDir", err)
	}
}

func TestLocateDocumentFile(t *testing.T) {
	u := NewUserDirs(StaticProvider{UserDirDocuments: "/home/u/Documents"})

	got, err := u.LocateDocumentFile(context.Background(), "report.txt")
	if err != nil {
		t.Fatalf("LocateDocumentFile() error = %v", err)
	}
	if want := filepath.Join("/home/u/Documents", "report.txt"); got != want {
		t.Errorf("LocateDocumentFile() = %q, want %q", got, want)
	}
}

func TestUserDirs_Path(t *testing.T) {
	u := NewUserDirs(StaticProvider{UserDirDownload: "/home/u/Downloads"})

	got, err := u.Path(context.Background(), UserDirDownload, "")
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if got != "/home/u/Downloads" {
		t.Errorf("Path(empty rel) = %q, want base directory", got)
	}

	got, err = u.Path(context.Background(), UserDirDownload, "iso/disk.img")
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if want := filepath.Join("/home/u/Downloads", "iso", "disk.img"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLocateDocumentFile_UtilityAbsentFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigHome, filepath.Join(home, ".config"))
	unsetenv(t, "XDG_DOCUMENTS_DIR")
	// The fallback values are computed at package init; recompute them for
	// the test home and restore afterwards.
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	chain := ChainProvider{
		&CommandProvider{Command: "xdg-user-dir-does-not-exist"},
		FallbackProvider{},
	}
	u := NewUserDirs(chain)

	got, err := u.LocateDocumentFile(context.Background(), "report.txt")
	if err != nil {
		t.Fatalf("LocateDocumentFile() error = %v", err)
	}
	if want := filepath.Join(home, "Documents", "report.txt"); got != want {
		t.Errorf("LocateDocumentFile() = %q, want well-known default %q", got, want)
	}
}

func TestFallbackProvider_UnknownKind(t *testing.T) {
	_, err := FallbackProvider{}.Lookup(context.Background(), UserDirKind("garage"))
	if !errors.Is(err, ErrUnknownUserDir) {
		t.Errorf("Lookup() error = %v, want ErrUnknownUserDir", err)
	}
}

func TestUserDirKinds(t *testing.T) {
	kinds := UserDirKinds()
	if len(kinds) != 8 {
		t.Fatalf("UserDirKinds() returned %d kinds, want 8", len(kinds))
	}
	for _, kind := range kinds {
		if !ValidUserDirKind(kind) {
			t.Errorf("ValidUserDirKind(%q) = false for listed kind", kind)
		}
	}
	if ValidUserDirKind("Desktop") {
		t.Error("ValidUserDirKind is case sensitive; \"Desktop\" should be invalid")
	}
}
