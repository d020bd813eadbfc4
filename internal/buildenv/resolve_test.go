package buildenv

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestResolveHeader(t *testing.T) {
	root := t.TempDir()
	env := Env{KeyLibDepsDir: root}
	loc := HeaderLocation{
		Library: "SparkFun MAX3010x Pulse and Proximity Sensor Library",
		Header:  "src/MAX30105.h",
	}

	got, err := ResolveHeader(env, "esp32dev", loc)
	if err != nil {
		t.Fatalf("ResolveHeader: %v", err)
	}
	want := filepath.Join(root, "esp32dev", loc.Library, "src", "MAX30105.h")
	if got != want {
		t.Errorf("ResolveHeader = %q, want %q", got, want)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ResolveHeader returned relative path %q", got)
	}
}

func TestResolveHeaderRelativeRoot(t *testing.T) {
	env := Env{KeyLibDepsDir: filepath.Join(".pio", "libdeps")}
	got, err := ResolveHeader(env, "uno", HeaderLocation{Library: "Lib", Header: "a.h"})
	if err != nil {
		t.Fatalf("ResolveHeader: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
	if filepath.Base(got) != "a.h" {
		t.Errorf("base = %q, want a.h", filepath.Base(got))
	}
}

func TestResolveHeaderDoesNotCheckExistence(t *testing.T) {
	env := Env{KeyLibDepsDir: filepath.Join(t.TempDir(), "does-not-exist")}
	if _, err := ResolveHeader(env, "esp32dev", HeaderLocation{Library: "L", Header: "h.h"}); err != nil {
		t.Errorf("ResolveHeader should not stat the file: %v", err)
	}
}

func TestResolveHeaderErrors(t *testing.T) {
	loc := HeaderLocation{Library: "L", Header: "h.h"}

	if _, err := ResolveHeader(Env{}, "esp32dev", loc); !errors.Is(err, ErrNoInstallRoot) {
		t.Errorf("missing root: err = %v, want ErrNoInstallRoot", err)
	}
	if _, err := ResolveHeader(Env{KeyLibDepsDir: "/x"}, "", loc); !errors.Is(err, ErrNoPlatform) {
		t.Errorf("missing platform: err = %v, want ErrNoPlatform", err)
	}
}
