package server

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"lightcast/assets"
	"lightcast/internal/gamemap"
	"lightcast/internal/generate"
)

// ErrUnknownMap is returned by LoadLayout when name is neither a built-in
// map nor an existing file.
var ErrUnknownMap = errors.New("server: unknown map")

// LoadLayout resolves a -map argument. "" and "random" generate a BSP
// dungeon from seed; a built-in name parses that map; anything else is
// read as an ASCII map file.
func LoadLayout(name string, seed int64) (*gamemap.Layout, error) {
	switch name {
	case "", "random":
		return generate.Generate(generate.DefaultConfig(rand.New(rand.NewSource(seed)))), nil
	}

	if def, ok := assets.MapByName(name); ok {
		l, err := gamemap.Parse(def.Rows)
		if err != nil {
			return nil, fmt.Errorf("built-in map %s: %w", name, err)
		}
		return l, nil
	}

	data, err := os.ReadFile(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMap)
	}
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	l, err := gamemap.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", name, err)
	}
	return l, nil
}
