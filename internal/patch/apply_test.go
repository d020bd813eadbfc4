package patch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pulsekit/prebuild/internal/recipe"
)

func writeHeader(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "MAX30105.h")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestApplyPatches(t *testing.T) {
	dir := t.TempDir()
	path := writeHeader(t, dir, samdFixture)
	var out bytes.Buffer

	o := NewApplier(&out, nil).Apply(path, recipe.Default())
	if o.Status != StatusPatched {
		t.Fatalf("status = %v (%v), want patched", o.Status, o.Err)
	}
	if o.Backup != path+".bak" {
		t.Errorf("Backup = %q, want %q", o.Backup, path+".bak")
	}

	content := readString(t, path)
	if !strings.Contains(content, "defined(ARDUINO_ARCH_ESP32)") {
		t.Error("marker missing after patch")
	}
	if got := readString(t, path+".bak"); got != samdFixture {
		t.Errorf("backup content = %q, want original", got)
	}

	want := "Modified " + path + " to avoid I2C_BUFFER_LENGTH redefinition on ESP32\n"
	if out.String() != want {
		t.Errorf("diagnostic = %q, want %q", out.String(), want)
	}
}

func TestApplyIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeHeader(t, dir, samdFixture)
	a := NewApplier(nil, nil)
	r := recipe.Default()

	if o := a.Apply(path, r); o.Status != StatusPatched {
		t.Fatalf("first apply: %v", o)
	}
	first := readString(t, path)

	var out bytes.Buffer
	a.Out = &out
	o := a.Apply(path, r)
	if o.Status != StatusAlreadyPatched {
		t.Errorf("second apply status = %v, want already-patched", o.Status)
	}
	if o.Backup != "" {
		t.Errorf("second apply reported backup %q", o.Backup)
	}
	if got := readString(t, path); got != first {
		t.Error("second apply changed the header")
	}
	if out.Len() != 0 {
		t.Errorf("already-patched should be silent, got %q", out.String())
	}
}

func TestApplyBackupWrittenOnce(t *testing.T) {
	dir := t.TempDir()
	path := writeHeader(t, dir, samdFixture)
	a := NewApplier(nil, nil)
	r := recipe.Default()

	for i := 0; i < 4; i++ {
		a.Apply(path, r)
		// Simulate the dependency manager restoring a fresh header between builds.
		if i == 1 {
			if err := os.WriteFile(path, []byte(samdFixture+"\n// v2\n"), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}

	if got := readString(t, path+".bak"); got != samdFixture {
		t.Errorf("backup = %q, want content before the first patch", got)
	}

	var backups int
	for _, name := range listDir(t, dir) {
		if strings.HasSuffix(name, ".bak") {
			backups++
		}
	}
	if backups != 1 {
		t.Errorf("found %d backup files, want 1", backups)
	}
}

func TestApplyKeepsExistingBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeHeader(t, dir, samdFixture)
	if err := os.WriteFile(path+".bak", []byte("pristine"), 0644); err != nil {
		t.Fatal(err)
	}

	o := NewApplier(nil, nil).Apply(path, recipe.Default())
	if o.Status != StatusPatched {
		t.Fatalf("status = %v", o.Status)
	}
	if o.Backup != "" {
		t.Errorf("Backup = %q, want empty when a backup already existed", o.Backup)
	}
	if got := readString(t, path+".bak"); got != "pristine" {
		t.Errorf("existing backup overwritten: %q", got)
	}
}

func TestApplyMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MAX30105.h")
	var out bytes.Buffer

	o := NewApplier(&out, nil).Apply(path, recipe.Default())
	if o.Status != StatusSkipped || o.Reason != ReasonFileNotFound {
		t.Errorf("outcome = %v, want skipped (file not found)", o)
	}
	if !errors.Is(o.Err, ErrMissingFile) {
		t.Errorf("Err = %v, want ErrMissingFile", o.Err)
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("filesystem changed: %v", names)
	}
	if out.String() != "Could not find "+path+"\n" {
		t.Errorf("diagnostic = %q", out.String())
	}
}

func TestApplyAnchorNotFound(t *testing.T) {
	dir := t.TempDir()
	content := "#if defined(__AVR__)\n#define X 1\n#else\n#define X 2\n#endif\n"
	path := writeHeader(t, dir, content)
	var out bytes.Buffer

	o := NewApplier(&out, nil).Apply(path, recipe.Default())
	if o.Status != StatusSkipped || o.Reason != ReasonAnchorNotFound {
		t.Errorf("outcome = %v, want skipped (anchor not found)", o)
	}
	if !errors.Is(o.Err, ErrAnchorNotFound) {
		t.Errorf("Err = %v, want ErrAnchorNotFound", o.Err)
	}
	if got := readString(t, path); got != content {
		t.Error("header modified although the anchor was not found")
	}
	if out.Len() != 0 {
		t.Errorf("anchor-not-found should be silent, got %q", out.String())
	}
}

func TestApplyMarkerGateSkipsBackup(t *testing.T) {
	dir := t.TempDir()
	content := "// defined(ARDUINO_ARCH_ESP32)\n" + samdFixture
	path := writeHeader(t, dir, content)

	o := NewApplier(nil, nil).Apply(path, recipe.Default())
	if o.Status != StatusAlreadyPatched {
		t.Errorf("status = %v, want already-patched", o.Status)
	}
	if _, err := os.Stat(path + ".bak"); !os.IsNotExist(err) {
		t.Error("backup must not be created for an already patched header")
	}
	if got := readString(t, path); got != content {
		t.Error("already patched header was modified")
	}
}

func TestApplyDirectoryIsSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MAX30105.h")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer

	o := NewApplier(&out, nil).Apply(path, recipe.Default())
	if o.Status != StatusSkipped {
		t.Errorf("status = %v, want skipped", o.Status)
	}
	if !errors.Is(o.Err, ErrIO) {
		t.Errorf("Err = %v, want ErrIO", o.Err)
	}
	if !strings.HasPrefix(out.String(), "Could not patch "+path) {
		t.Errorf("diagnostic = %q", out.String())
	}
}

func TestApplyKeepsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on Windows")
	}
	dir := t.TempDir()
	path := writeHeader(t, dir, samdFixture)
	if err := os.Chmod(path, 0640); err != nil {
		t.Fatal(err)
	}

	if o := NewApplier(nil, nil).Apply(path, recipe.Default()); o.Status != StatusPatched {
		t.Fatalf("status = %v", o.Status)
	}
	for _, p := range []string{path, path + ".bak"} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0640 {
			t.Errorf("%s permissions = %o, want %o", filepath.Base(p), perm, 0640)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{StatusPatched, "patched"},
		{StatusAlreadyPatched, "already-patched"},
		{StatusSkipped, "skipped"},
		{Status(0), "status(0)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	o := Outcome{Status: StatusSkipped, Path: "/x.h", Reason: ReasonFileNotFound}
	if got := o.String(); got != "skipped: /x.h (file not found)" {
		t.Errorf("String() = %q", got)
	}
	o = Outcome{Status: StatusPatched, Path: "/x.h"}
	if got := o.String(); got != "patched: /x.h" {
		t.Errorf("String() = %q", got)
	}
}
