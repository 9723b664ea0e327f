package cli

import (
	"fmt"
	"os"
	"time"

	"brewctl/internal/brewfile"
	"brewctl/internal/config"
)

// stepTimeout bounds a single brew invocation in the sync commands.
const stepTimeout = 5 * time.Minute

// brewfilePath resolves the managed Brewfile from env/config.
func brewfilePath() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return config.BrewfilePath(cfg)
}

// loadBrewfile resolves and parses the managed Brewfile.
func loadBrewfile() (string, *brewfile.File, error) {
	path, err := brewfilePath()
	if err != nil {
		return "", nil, err
	}
	f, err := brewfile.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil, fmt.Errorf("no Brewfile at %s (run `brewctl dump` to create one)", path)
		}
		return path, nil, err
	}
	return path, f, nil
}
