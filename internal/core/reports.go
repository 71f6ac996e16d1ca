package core

import (
	"fmt"
	"strings"
	"time"
)

// SpeciesGroup lists the animals of one species in registration order.
type SpeciesGroup struct {
	Species string   `json:"species"`
	Names   []string `json:"names"`
}

// Count returns the number of animals in the group.
func (g SpeciesGroup) Count() int { return len(g.Names) }

// AnimalsBySpecies groups animal names by species. Groups appear in the order
// their species was first registered.
func (z *Zoo) AnimalsBySpecies() []SpeciesGroup {
	index := make(map[string]int)
	var groups []SpeciesGroup
	for _, a := range z.animals {
		i, ok := index[a.Species()]
		if !ok {
			i = len(groups)
			index[a.Species()] = i
			groups = append(groups, SpeciesGroup{Species: a.Species()})
		}
		groups[i].Names = append(groups[i].Names, a.Name())
	}
	return groups
}

// EnclosureStatusReport returns one status line per enclosure.
func (z *Zoo) EnclosureStatusReport() []string {
	out := make([]string, 0, len(z.enclosures))
	for _, e := range z.enclosures {
		out = append(out, e.Status())
	}
	return out
}

// HealthReport summarises every animal that has at least one active issue.
func (z *Zoo) HealthReport() []string {
	var out []string
	for _, a := range z.animals {
		issues := a.ActiveIssues()
		if len(issues) == 0 {
			continue
		}
		parts := make([]string, 0, len(issues))
		for _, rec := range issues {
			parts = append(parts, fmt.Sprintf("%s [severity %d]", rec.Description, rec.Severity))
		}
		out = append(out, fmt.Sprintf("%s (%s) under treatment: %s", a.Name(), a.Species(), strings.Join(parts, ", ")))
	}
	return out
}

// Report is a point-in-time summary of the zoo suitable for archiving.
type Report struct {
	Zoo         string         `json:"zoo"`
	GeneratedAt time.Time      `json:"generated_at"`
	Species     []SpeciesGroup `json:"species"`
	Enclosures  []string       `json:"enclosures"`
	Health      []string       `json:"health"`
	Routine     []string       `json:"routine,omitempty"`
}

// Report captures the current reports. routine holds the narration of a
// daily routine the caller already ran, if any.
func (z *Zoo) Report(routine []string) Report {
	return Report{
		Zoo:         z.name,
		GeneratedAt: z.clock.Now(),
		Species:     z.AnimalsBySpecies(),
		Enclosures:  z.EnclosureStatusReport(),
		Health:      z.HealthReport(),
		Routine:     routine,
	}
}
