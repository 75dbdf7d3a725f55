package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WatchItem is one instrument tracked by the watcher
type WatchItem struct {
	ISIN   string `yaml:"isin"`
	Market string `yaml:"market"`
	Full   bool   `yaml:"full"` // also collect the 52-week range
}

// Key returns "{isin}-{market}", the form Euronext uses in its URLs
func (w WatchItem) Key() string {
	return w.ISIN + "-" + w.Market
}

// Watchlist is the YAML document listing instruments to collect
type Watchlist struct {
	Instruments []WatchItem `yaml:"instruments"`
}

// LoadWatchlist reads and validates a watchlist file
func LoadWatchlist(path string) (*Watchlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read watchlist file: %w", err)
	}

	var wl Watchlist
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("failed to parse watchlist file: %w", err)
	}

	if err := wl.validate(); err != nil {
		return nil, fmt.Errorf("invalid watchlist %s: %w", path, err)
	}

	return &wl, nil
}

func (w *Watchlist) validate() error {
	if len(w.Instruments) == 0 {
		return fmt.Errorf("no instruments")
	}

	seen := make(map[string]bool, len(w.Instruments))
	for i, item := range w.Instruments {
		if item.ISIN == "" || item.Market == "" {
			return fmt.Errorf("instrument #%d: isin and market are required", i+1)
		}
		if seen[item.Key()] {
			return fmt.Errorf("instrument %s listed twice", item.Key())
		}
		seen[item.Key()] = true
	}

	return nil
}
