// Package status gathers the current brew/Brewfile state for the
// status command, the dashboard and the local API.
package status

import (
	"context"
	"os"

	"brewctl/internal/brew"
	"brewctl/internal/brewfile"
	"brewctl/internal/config"
)

// Report is a snapshot of the environment.
type Report struct {
	BrewInstalled bool             `json:"brewInstalled"`
	BrewPath      string           `json:"brewPath,omitempty"`
	BrewVersion   string           `json:"brewVersion,omitempty"`
	Brewfile      string           `json:"brewfile"`
	BrewfileFound bool             `json:"brewfileFound"`
	Taps          int              `json:"taps"`
	Formulae      int              `json:"formulae"`
	Casks         int              `json:"casks"`
	Entries       []brewfile.Entry `json:"entries,omitempty"`
}

// Collect builds a Report. A missing brew or Brewfile is reported in the
// snapshot, not returned as an error.
func Collect(ctx context.Context, b *brew.Brew) (Report, error) {
	if b == nil {
		b = brew.New()
	}
	var rep Report
	if path, ok := b.Detect(); ok {
		rep.BrewInstalled = true
		rep.BrewPath = path
		if ver, err := b.Version(ctx); err == nil {
			rep.BrewVersion = ver
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return rep, err
	}
	bfPath, err := config.BrewfilePath(cfg)
	if err != nil {
		return rep, err
	}
	rep.Brewfile = bfPath
	bf, err := brewfile.Load(bfPath)
	if err != nil {
		if os.IsNotExist(err) {
			return rep, nil
		}
		return rep, err
	}
	rep.BrewfileFound = true
	rep.Taps = len(bf.Taps)
	rep.Formulae = len(bf.Brews)
	rep.Casks = len(bf.Casks)
	rep.Entries = bf.Entries()
	return rep, nil
}
