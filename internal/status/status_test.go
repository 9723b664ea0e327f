package status

import (
	"context"
	"path/filepath"
	"testing"

	"brewctl/internal/brew"
	"brewctl/internal/brewfile"
	tu "brewctl/internal/testutil"
)

func TestCollect(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()
	defer tu.WithEnv(t, "HOMEBREW_BREWFILE", "")()

	bin := tu.StubBin(t, tmp, "testbrew", `echo "Homebrew 4.2.10"`)
	b := &brew.Brew{Bin: bin}

	// no Brewfile yet
	rep, err := Collect(context.Background(), b)
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if !rep.BrewInstalled || rep.BrewVersion != "4.2.10" {
		t.Fatalf("brew status = %+v", rep)
	}
	if rep.BrewfileFound {
		t.Fatal("Brewfile should be missing")
	}
	want := filepath.Join(tmp, "brewfile", "Brewfile")
	if rep.Brewfile != want {
		t.Fatalf("brewfile path = %q, want %q", rep.Brewfile, want)
	}

	// with a Brewfile
	bf := &brewfile.File{
		Taps:  []string{"rcmdnk/file"},
		Brews: []brewfile.Formula{{Name: "git"}, {Name: "vim"}},
	}
	if err := brewfile.Save(want, bf); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	rep, err = Collect(context.Background(), b)
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if !rep.BrewfileFound || rep.Taps != 1 || rep.Formulae != 2 || rep.Casks != 0 {
		t.Fatalf("report = %+v", rep)
	}
	if len(rep.Entries) != 3 {
		t.Fatalf("entries = %v", rep.Entries)
	}
}

func TestCollect_BrewMissing(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()
	defer tu.WithEnv(t, "HOMEBREW_BREWFILE", "")()

	rep, err := Collect(context.Background(), &brew.Brew{Bin: "testbrew-definitely-missing"})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if rep.BrewInstalled {
		t.Fatal("brew should be reported missing")
	}
}
