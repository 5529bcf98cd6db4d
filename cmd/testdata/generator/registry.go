package generator

import (
	"fmt"
	"slices"

	"pkg.jsn.cam/likegen/pkg/likegen"
)

// Registry maps generator names to generator factory functions
var Registry = map[string]func() Generator{
	"first": func() Generator {
		return &VocabGenerator{Kind: likegen.FirstNames, Count: 5000, Path: likegen.DefaultFirstNamesPath}
	},
	"last": func() Generator {
		return &VocabGenerator{Kind: likegen.LastNames, Count: 5000, Path: likegen.DefaultLastNamesPath}
	},
	"likes": func() Generator {
		return &VocabGenerator{Kind: likegen.Likes, Count: 100, Path: likegen.DefaultLikesPath}
	},
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names, sorted
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
