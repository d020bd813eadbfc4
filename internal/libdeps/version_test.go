package libdeps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInstalledVersionProperties(t *testing.T) {
	dir := t.TempDir()
	props := "name=SparkFun MAX3010x Pulse and Proximity Sensor Library\nversion=1.1.2\nauthor=SparkFun Electronics\n"
	if err := os.WriteFile(filepath.Join(dir, LibraryProperties), []byte(props), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := InstalledVersion(dir)
	if err != nil {
		t.Fatalf("InstalledVersion: %v", err)
	}
	if got != "1.1.2" {
		t.Errorf("InstalledVersion = %q, want %q", got, "1.1.2")
	}
}

func TestInstalledVersionJSONWins(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LibraryJSON), []byte(`{"name":"x","version":"2.0.1"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LibraryProperties), []byte("version=1.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := InstalledVersion(dir)
	if err != nil {
		t.Fatalf("InstalledVersion: %v", err)
	}
	if got != "2.0.1" {
		t.Errorf("InstalledVersion = %q, want %q", got, "2.0.1")
	}
}

func TestInstalledVersionFallsBackWhenJSONHasNoVersion(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LibraryJSON), []byte(`{"name":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LibraryProperties), []byte("version = 1.0.3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := InstalledVersion(dir)
	if err != nil {
		t.Fatalf("InstalledVersion: %v", err)
	}
	if got != "1.0.3" {
		t.Errorf("InstalledVersion = %q, want %q", got, "1.0.3")
	}
}

func TestInstalledVersionNone(t *testing.T) {
	_, err := InstalledVersion(t.TempDir())
	if !errors.Is(err, ErrNoVersion) {
		t.Errorf("err = %v, want ErrNoVersion", err)
	}
}

func TestInstalledVersionBadJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LibraryJSON), []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := InstalledVersion(dir)
	if err == nil || errors.Is(err, ErrNoVersion) {
		t.Errorf("err = %v, want parse error", err)
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		{"1.1.2", ">=1.0.0", true},
		{"v1.1.2", ">=1.0.0, <2.0.0", true},
		{"2.0.0", ">=1.0.0, <2.0.0", false},
		{"0.9.0", "^1.0", false},
		{"1.4.0", "~1.4", true},
	}
	for _, tt := range tests {
		got, err := Satisfies(tt.version, tt.constraint)
		if err != nil {
			t.Errorf("Satisfies(%q, %q) error: %v", tt.version, tt.constraint, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.version, tt.constraint, got, tt.want)
		}
	}
}

func TestSatisfiesErrors(t *testing.T) {
	if _, err := Satisfies("1.0.0", "not a constraint!!"); err == nil {
		t.Error("expected error for invalid constraint")
	}
	if _, err := Satisfies("latest", ">=1.0.0"); err == nil {
		t.Error("expected error for invalid version")
	}
}
