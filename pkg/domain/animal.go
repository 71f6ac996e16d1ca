package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Traits carries the variant-specific payload of an Animal. The set of
// implementations is closed: Mammal, Bird and Reptile.
type Traits interface {
	Category() Category
	sound(name string) string
}

// Mammal traits.
type Mammal struct {
	FurType string `json:"fur_type"`
}

// Category implements Traits.
func (Mammal) Category() Category { return CategoryMammal }

func (Mammal) sound(name string) string {
	return fmt.Sprintf("%s (mammal) makes a growl or call.", name)
}

// Bird traits.
type Bird struct {
	CanFly bool `json:"can_fly"`
}

// Category implements Traits.
func (Bird) Category() Category { return CategoryBird }

func (Bird) sound(name string) string {
	return fmt.Sprintf("%s (bird) chirps or squawks.", name)
}

// Reptile traits.
type Reptile struct {
	IsVenomous bool `json:"is_venomous"`
}

// Category implements Traits.
func (Reptile) Category() Category { return CategoryReptile }

func (Reptile) sound(name string) string {
	return fmt.Sprintf("%s (reptile) hisses.", name)
}

// Profile holds the identity fields supplied when an animal is created. The
// Category is checked against the variant being constructed.
type Profile struct {
	Name     string
	Species  string
	Age      int
	Diet     string
	Category string
}

// Animal is an individual tracked by the zoo. Its category is implied by its
// traits; health records are appended and resolved over its lifetime.
type Animal struct {
	id      string
	name    string
	species string
	age     int
	diet    string
	traits  Traits
	records []HealthRecord
}

// NewMammal constructs a mammal. An empty fur type defaults to "varied".
func NewMammal(p Profile, furType string) (*Animal, error) {
	if strings.TrimSpace(furType) == "" {
		furType = "varied"
	}
	return newAnimal(p, Mammal{FurType: furType})
}

// NewBird constructs a bird.
func NewBird(p Profile, canFly bool) (*Animal, error) {
	return newAnimal(p, Bird{CanFly: canFly})
}

// NewReptile constructs a reptile.
func NewReptile(p Profile, venomous bool) (*Animal, error) {
	return newAnimal(p, Reptile{IsVenomous: venomous})
}

func newAnimal(p Profile, traits Traits) (*Animal, error) {
	if p.Age < 0 {
		return nil, invalid(EntityAnimal, "age", "must be non-negative, got %d", p.Age)
	}
	category := Category(p.Category)
	if !category.Valid() {
		return nil, invalid(EntityAnimal, "category", "must be one of mammal, bird, reptile, got %q", p.Category)
	}
	if want := traits.Category(); category != want {
		return nil, invalid(EntityAnimal, "category", "%s must have category '%s', got '%s'", want, want, category)
	}
	return &Animal{
		id:      uuid.NewString(),
		name:    p.Name,
		species: p.Species,
		age:     p.Age,
		diet:    p.Diet,
		traits:  traits,
	}, nil
}

func (a *Animal) ID() string         { return a.id }
func (a *Animal) Name() string       { return a.name }
func (a *Animal) Species() string    { return a.species }
func (a *Animal) Age() int           { return a.age }
func (a *Animal) Diet() string       { return a.diet }
func (a *Animal) Category() Category { return a.traits.Category() }

// Traits returns the variant payload; switch on its concrete type to reach
// FurType, CanFly or IsVenomous.
func (a *Animal) Traits() Traits { return a.traits }

// HealthRecords returns a copy of the animal's records in reporting order.
func (a *Animal) HealthRecords() []HealthRecord {
	out := make([]HealthRecord, len(a.records))
	copy(out, a.records)
	return out
}

// ActiveIssues returns the records that are still active.
func (a *Animal) ActiveIssues() []HealthRecord {
	var out []HealthRecord
	for _, r := range a.records {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}

// AddHealthIssue validates record and appends it to the animal's history.
func (a *Animal) AddHealthIssue(record HealthRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	a.records = append(a.records, record)
	return nil
}

// ResolveHealthIssue marks the record at index as no longer active.
func (a *Animal) ResolveHealthIssue(index int) error {
	if index < 0 || index >= len(a.records) {
		return invalid(EntityHealthRecord, "index", "%d out of range for %s (%d records)", index, a.name, len(a.records))
	}
	a.records[index].Active = false
	return nil
}

// UnderTreatment reports whether any health record is active.
func (a *Animal) UnderTreatment() bool {
	for _, r := range a.records {
		if r.Active {
			return true
		}
	}
	return false
}

// MakeSound returns the variant's sound line.
func (a *Animal) MakeSound() string {
	return a.traits.sound(a.name)
}

// Eat narrates the animal eating its diet.
func (a *Animal) Eat() string {
	return fmt.Sprintf("%s the %s eats %s.", a.name, a.species, a.diet)
}

// Sleep narrates the animal going to sleep.
func (a *Animal) Sleep() string {
	return fmt.Sprintf("%s the %s is sleeping.", a.name, a.species)
}
