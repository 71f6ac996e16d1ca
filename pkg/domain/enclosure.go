package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Cleanliness bounds and the amount of dirt a single arrival adds.
const (
	MaxCleanliness         = 100
	ArrivalCleanlinessCost = 5
)

// EnclosureSpec holds the construction parameters of an enclosure.
// A nil Cleanliness starts the enclosure fully clean.
type EnclosureSpec struct {
	Name            string
	Environment     string
	SizeSqM         float64
	AllowedCategory string
	Cleanliness     *int
}

// Enclosure houses animals of a single category. Membership holds
// non-owning references; the zoo owns the animals.
type Enclosure struct {
	id          string
	name        string
	environment Environment
	sizeSqM     float64
	allowed     Category
	cleanliness int
	animals     []*Animal
}

// NewEnclosure validates spec and returns an empty enclosure.
func NewEnclosure(spec EnclosureSpec) (*Enclosure, error) {
	if spec.SizeSqM <= 0 {
		return nil, invalid(EntityEnclosure, "size_sq_m", "must be positive, got %v", spec.SizeSqM)
	}
	allowed := Category(spec.AllowedCategory)
	if !allowed.Valid() {
		return nil, invalid(EntityEnclosure, "allowed_category", "must be 'mammal', 'bird', or 'reptile', got %q", spec.AllowedCategory)
	}
	env := Environment(spec.Environment)
	if !env.Valid() {
		return nil, invalid(EntityEnclosure, "environment", "unsupported environment %q", spec.Environment)
	}
	cleanliness := MaxCleanliness
	if spec.Cleanliness != nil {
		cleanliness = *spec.Cleanliness
	}
	if cleanliness < 0 || cleanliness > MaxCleanliness {
		return nil, invalid(EntityEnclosure, "cleanliness", "must be between 0 and %d, got %d", MaxCleanliness, cleanliness)
	}
	return &Enclosure{
		id:          uuid.NewString(),
		name:        spec.Name,
		environment: env,
		sizeSqM:     spec.SizeSqM,
		allowed:     allowed,
		cleanliness: cleanliness,
	}, nil
}

func (e *Enclosure) ID() string                { return e.id }
func (e *Enclosure) Name() string              { return e.name }
func (e *Enclosure) Environment() Environment  { return e.environment }
func (e *Enclosure) SizeSqM() float64          { return e.sizeSqM }
func (e *Enclosure) AllowedCategory() Category { return e.allowed }
func (e *Enclosure) Cleanliness() int          { return e.cleanliness }

// Animals returns the current members in arrival order.
func (e *Enclosure) Animals() []*Animal {
	out := make([]*Animal, len(e.animals))
	copy(out, e.animals)
	return out
}

// Contains reports whether animal is a member.
func (e *Enclosure) Contains(animal *Animal) bool {
	return e.indexOf(animal) >= 0
}

// Admission evaluates the default admission rules for animal.
func (e *Enclosure) Admission(animal *Animal) Result {
	return defaultAdmission.Evaluate(e, animal)
}

// CanAccept reports whether animal matches the allowed category and is not
// under treatment.
func (e *Enclosure) CanAccept(animal *Animal) bool {
	return !e.Admission(animal).HasBlocking()
}

// AddAnimal admits animal, adding a little dirt with the arrival.
func (e *Enclosure) AddAnimal(animal *Animal) error {
	if animal == nil {
		return invalid(EntityEnclosure, "animal", "animal is required")
	}
	if res := e.Admission(animal); res.HasBlocking() {
		return ValidationError{
			Entity:     EntityEnclosure,
			Message:    fmt.Sprintf("cannot add %s to %s: incompatible or under treatment", animal.Name(), e.name),
			Violations: res.Blocking(),
		}
	}
	if e.Contains(animal) {
		return invalid(EntityEnclosure, "animals", "%s is already housed in %s", animal.Name(), e.name)
	}
	e.animals = append(e.animals, animal)
	e.cleanliness = max(0, e.cleanliness-ArrivalCleanlinessCost)
	return nil
}

// RemoveAnimal drops animal from the membership.
func (e *Enclosure) RemoveAnimal(animal *Animal) error {
	i := e.indexOf(animal)
	if i < 0 {
		name := "<nil>"
		if animal != nil {
			name = animal.Name()
		}
		return invalid(EntityEnclosure, "animals", "%s is not housed in %s", name, e.name)
	}
	e.animals = append(e.animals[:i], e.animals[i+1:]...)
	return nil
}

// Clean resets cleanliness to its maximum.
func (e *Enclosure) Clean() {
	e.cleanliness = MaxCleanliness
}

// Status summarises the enclosure on a single line.
func (e *Enclosure) Status() string {
	names := make([]string, 0, len(e.animals))
	for _, a := range e.animals {
		names = append(names, a.Name())
	}
	members := strings.Join(names, ", ")
	if members == "" {
		members = "No animals"
	}
	return fmt.Sprintf("Enclosure '%s': %s, %s m^2, cleanliness %d/%d, animals: %s",
		e.name, e.environment, strconv.FormatFloat(e.sizeSqM, 'f', -1, 64), e.cleanliness, MaxCleanliness, members)
}

func (e *Enclosure) indexOf(animal *Animal) int {
	for i, a := range e.animals {
		if a == animal {
			return i
		}
	}
	return -1
}
