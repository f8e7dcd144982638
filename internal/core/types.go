package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a display front end drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Seeder places an initial population on g relative to origin. Generated
// populations use seed for deterministic randomness.
type Seeder func(g *Grid, origin Point, seed int64) error

var seeders = map[string]Seeder{}

// RegisterSeeder adds a named initial population.
func RegisterSeeder(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of initial populations.
func Seeders() map[string]Seeder {
	return seeders
}

// SeederNames returns the registered names in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
