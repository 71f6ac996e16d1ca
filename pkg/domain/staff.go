package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Staff is a zoo employee acting on animals and enclosures.
type Staff interface {
	ID() string
	Name() string
	Role() Role
}

type member struct {
	id   string
	name string
	role Role
}

func (m member) ID() string   { return m.id }
func (m member) Name() string { return m.name }
func (m member) Role() Role   { return m.role }

func newMember(name, role string, want Role) (member, error) {
	r := Role(role)
	if !r.Valid() {
		return member{}, invalid(EntityStaff, "role", "must be 'zookeeper' or 'veterinarian', got %q", role)
	}
	if r != want {
		return member{}, invalid(EntityStaff, "role", "%s must have role '%s', got '%s'", want, want, r)
	}
	return member{id: uuid.NewString(), name: name, role: r}, nil
}

// Zookeeper feeds animals and cleans the enclosures assigned to them.
type Zookeeper struct {
	member
	enclosures []*Enclosure
}

// NewZookeeper validates role and returns a keeper with no assignments.
func NewZookeeper(name, role string) (*Zookeeper, error) {
	m, err := newMember(name, role, RoleZookeeper)
	if err != nil {
		return nil, err
	}
	return &Zookeeper{member: m}, nil
}

// AssignEnclosure adds enclosure to the keeper's rota unless already present.
func (z *Zookeeper) AssignEnclosure(enclosure *Enclosure) {
	if enclosure == nil || z.IsAssigned(enclosure) {
		return
	}
	z.enclosures = append(z.enclosures, enclosure)
}

// IsAssigned reports whether enclosure is on the keeper's rota.
func (z *Zookeeper) IsAssigned(enclosure *Enclosure) bool {
	for _, e := range z.enclosures {
		if e == enclosure {
			return true
		}
	}
	return false
}

// AssignedEnclosures returns the rota in assignment order.
func (z *Zookeeper) AssignedEnclosures() []*Enclosure {
	out := make([]*Enclosure, len(z.enclosures))
	copy(out, z.enclosures)
	return out
}

// Feed narrates feeding animal.
func (z *Zookeeper) Feed(animal *Animal) string {
	return fmt.Sprintf("%s feeds %s. %s", z.name, animal.Name(), animal.Eat())
}

// CleanEnclosure cleans an enclosure on the keeper's rota.
func (z *Zookeeper) CleanEnclosure(enclosure *Enclosure) (string, error) {
	if enclosure == nil || !z.IsAssigned(enclosure) {
		name := "<nil>"
		if enclosure != nil {
			name = enclosure.Name()
		}
		return "", invalid(EntityStaff, "enclosure", "zookeeper %s not assigned to enclosure '%s'", z.name, name)
	}
	enclosure.Clean()
	return fmt.Sprintf("%s cleaned enclosure '%s'.", z.name, enclosure.Name()), nil
}

// VetOption customises a veterinarian at construction.
type VetOption func(*Veterinarian)

// WithClock overrides the clock used to date health records.
func WithClock(now func() time.Time) VetOption {
	return func(v *Veterinarian) {
		if now != nil {
			v.now = now
		}
	}
}

// Veterinarian examines animals, opening and resolving health records.
type Veterinarian struct {
	member
	animals []*Animal
	now     func() time.Time
}

// NewVeterinarian validates role and returns a vet with no assignments.
func NewVeterinarian(name, role string, opts ...VetOption) (*Veterinarian, error) {
	m, err := newMember(name, role, RoleVeterinarian)
	if err != nil {
		return nil, err
	}
	v := &Veterinarian{member: m, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// AssignAnimal adds animal to the vet's caseload unless already present.
func (v *Veterinarian) AssignAnimal(animal *Animal) {
	if animal == nil || v.IsAssigned(animal) {
		return
	}
	v.animals = append(v.animals, animal)
}

// IsAssigned reports whether animal is on the vet's caseload.
func (v *Veterinarian) IsAssigned(animal *Animal) bool {
	for _, a := range v.animals {
		if a == animal {
			return true
		}
	}
	return false
}

// AssignedAnimals returns the caseload in assignment order.
func (v *Veterinarian) AssignedAnimals() []*Animal {
	out := make([]*Animal, len(v.animals))
	copy(out, v.animals)
	return out
}

// HealthCheck records a new issue against animal, dated today, and returns it.
func (v *Veterinarian) HealthCheck(animal *Animal, description string, severity int, treatment string) (HealthRecord, error) {
	rec, err := NewHealthRecord(description, v.now(), severity, treatment)
	if err != nil {
		return HealthRecord{}, err
	}
	if err := animal.AddHealthIssue(rec); err != nil {
		return HealthRecord{}, err
	}
	return rec, nil
}

// ResolveIssue marks the animal's record at index as resolved.
func (v *Veterinarian) ResolveIssue(animal *Animal, index int) error {
	return animal.ResolveHealthIssue(index)
}
