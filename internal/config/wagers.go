package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
)

// ErrEmptySlip is returned when a wager file lists no wagers.
var ErrEmptySlip = errors.New("wager slip is empty")

type slipFile struct {
	Wagers []slipEntry `yaml:"wagers"`
}

type slipEntry struct {
	Home string `yaml:"home"`
	Away string `yaml:"away"`
	Bet  string `yaml:"bet"`
}

// LoadWagers reads a YAML wager slip from disk.
func LoadWagers(path string) ([]wagers.Wager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wager slip: %w", err)
	}
	slip, err := ParseWagers(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return slip, nil
}

// ParseWagers decodes and validates a wager slip. Unknown fields, blank team
// names and unknown bet kinds are rejected with the entry index.
func ParseWagers(data []byte) ([]wagers.Wager, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file slipFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySlip
		}
		return nil, fmt.Errorf("parse wager slip: %w", err)
	}
	if len(file.Wagers) == 0 {
		return nil, ErrEmptySlip
	}

	out := make([]wagers.Wager, 0, len(file.Wagers))
	for i, entry := range file.Wagers {
		home := strings.TrimSpace(entry.Home)
		away := strings.TrimSpace(entry.Away)
		if home == "" || away == "" {
			return nil, fmt.Errorf("wager %d: home and away teams are required", i)
		}
		kind, err := wagers.ParseBetKind(entry.Bet)
		if err != nil {
			return nil, fmt.Errorf("wager %d (%s - %s): %w", i, home, away, err)
		}
		out = append(out, wagers.Wager{Home: home, Away: away, Bet: kind})
	}
	return out, nil
}
