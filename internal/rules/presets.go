package rules

import (
	"fmt"
	"sort"
	"strings"
)

var presets = map[string]Set{}

// Register adds a named rule set. Both players share rule.
func Register(name string, rule string) {
	r, err := ParseRule(rule)
	if err != nil {
		panic(err)
	}
	name = strings.ToLower(name)
	if name == "" {
		return
	}
	presets[name] = Set{Players: [2]Rule{r, r}, TieBreak: Majority}
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Set, error) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Set{}, fmt.Errorf("rules: unknown preset %q", name)
	}
	return s, nil
}

// Names lists registered presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default returns Conway's rule for both players with majority tie-break.
func Default() Set {
	s, _ := Lookup("conway")
	return s
}

func init() {
	Register("conway", "B3/S23")
	Register("highlife", "B36/S23")
	Register("daynight", "B3678/S34678")
	Register("seeds", "B2/S")
	Register("maze", "B3/S12345")
}
