// Package core hosts the Zoo aggregate: the registry that owns animals,
// enclosures and staff and sequences their daily routine.
package core

import (
	"fmt"
	"strings"
	"time"

	"zoocore/pkg/domain"
)

// Zoo owns every animal, enclosure and staff member and is the single
// authority for moving animals between enclosures.
type Zoo struct {
	name       string
	animals    []*domain.Animal
	enclosures []*domain.Enclosure
	staff      []domain.Staff
	placements map[*domain.Animal]*domain.Enclosure

	rules   *domain.RulesEngine
	clock   Clock
	logger  Logger
	audit   AuditRecorder
	metrics MetricsRecorder
}

// New constructs an empty zoo.
func New(name string, opts ...Option) *Zoo {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rules := domain.NewRulesEngine()
	for _, r := range o.rules {
		rules.Register(r)
	}
	return &Zoo{
		name:       name,
		placements: make(map[*domain.Animal]*domain.Enclosure),
		rules:      rules,
		clock:      o.clock,
		logger:     o.logger,
		audit:      o.audit,
		metrics:    o.metrics,
	}
}

// Name returns the zoo's display name.
func (z *Zoo) Name() string { return z.name }

// Animals returns the registered animals in registration order.
func (z *Zoo) Animals() []*domain.Animal {
	out := make([]*domain.Animal, len(z.animals))
	copy(out, z.animals)
	return out
}

// Enclosures returns the registered enclosures in registration order.
func (z *Zoo) Enclosures() []*domain.Enclosure {
	out := make([]*domain.Enclosure, len(z.enclosures))
	copy(out, z.enclosures)
	return out
}

// Staff returns the registered staff in registration order.
func (z *Zoo) Staff() []domain.Staff {
	out := make([]domain.Staff, len(z.staff))
	copy(out, z.staff)
	return out
}

// FindAnimal returns the first registered animal with the given name.
func (z *Zoo) FindAnimal(name string) (*domain.Animal, bool) {
	for _, a := range z.animals {
		if strings.EqualFold(a.Name(), name) {
			return a, true
		}
	}
	return nil, false
}

// FindEnclosure returns the first registered enclosure with the given name.
func (z *Zoo) FindEnclosure(name string) (*domain.Enclosure, bool) {
	for _, e := range z.enclosures {
		if strings.EqualFold(e.Name(), name) {
			return e, true
		}
	}
	return nil, false
}

// FindStaff returns the first registered staff member with the given name.
func (z *Zoo) FindStaff(name string) (domain.Staff, bool) {
	for _, s := range z.staff {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}
	return nil, false
}

// EnclosureOf reports where animal currently lives.
func (z *Zoo) EnclosureOf(animal *domain.Animal) (*domain.Enclosure, bool) {
	e, ok := z.placements[animal]
	return e, ok
}

// AddAnimal registers animal. Registering the same animal twice fails.
func (z *Zoo) AddAnimal(animal *domain.Animal) error {
	var id, name string
	if animal != nil {
		id, name = animal.ID(), animal.Name()
	}
	return z.run("add_animal", domain.EntityAnimal, id, name, func() error {
		if animal == nil {
			return domain.ValidationError{Entity: domain.EntityZoo, Field: "animals", Message: "animal is required"}
		}
		if z.hasAnimal(animal) {
			return domain.ValidationError{Entity: domain.EntityZoo, Field: "animals", Message: fmt.Sprintf("%s is already registered", animal.Name())}
		}
		z.animals = append(z.animals, animal)
		return nil
	})
}

// AddEnclosure registers enclosure. Registering the same enclosure twice fails.
func (z *Zoo) AddEnclosure(enclosure *domain.Enclosure) error {
	var id, name string
	if enclosure != nil {
		id, name = enclosure.ID(), enclosure.Name()
	}
	return z.run("add_enclosure", domain.EntityEnclosure, id, name, func() error {
		if enclosure == nil {
			return domain.ValidationError{Entity: domain.EntityZoo, Field: "enclosures", Message: "enclosure is required"}
		}
		if z.hasEnclosure(enclosure) {
			return domain.ValidationError{Entity: domain.EntityZoo, Field: "enclosures", Message: fmt.Sprintf("enclosure '%s' is already registered", enclosure.Name())}
		}
		z.enclosures = append(z.enclosures, enclosure)
		return nil
	})
}

// AddStaff registers a staff member. Registering the same member twice fails.
func (z *Zoo) AddStaff(member domain.Staff) error {
	var id, name string
	if member != nil {
		id, name = member.ID(), member.Name()
	}
	return z.run("add_staff", domain.EntityStaff, id, name, func() error {
		if member == nil {
			return domain.ValidationError{Entity: domain.EntityZoo, Field: "staff", Message: "staff member is required"}
		}
		for _, s := range z.staff {
			if s == member {
				return domain.ValidationError{Entity: domain.EntityZoo, Field: "staff", Message: fmt.Sprintf("%s is already registered", member.Name())}
			}
		}
		z.staff = append(z.staff, member)
		return nil
	})
}

// AssignAnimalToEnclosure moves animal into enclosure. The enclosure's own
// admission policy applies first, then any zoo-level rules; blocking
// violations refuse the move with a ValidationError and warnings are logged.
// An animal previously housed elsewhere leaves its old enclosure.
func (z *Zoo) AssignAnimalToEnclosure(animal *domain.Animal, enclosure *domain.Enclosure) error {
	var id, subject string
	if animal != nil && enclosure != nil {
		id, subject = animal.ID(), animal.Name()+" -> "+enclosure.Name()
	}
	return z.run("assign_animal_to_enclosure", domain.EntityAnimal, id, subject, func() error {
		if animal == nil || !z.hasAnimal(animal) {
			return domain.ValidationError{Entity: domain.EntityZoo, Field: "animals", Message: "animal is not registered with " + z.name}
		}
		if enclosure == nil || !z.hasEnclosure(enclosure) {
			return domain.ValidationError{Entity: domain.EntityZoo, Field: "enclosures", Message: "enclosure is not registered with " + z.name}
		}

		extra := z.rules.Evaluate(enclosure, animal)
		if extra.HasBlocking() && enclosure.CanAccept(animal) {
			msgs := make([]string, 0, len(extra.Violations))
			for _, v := range extra.Blocking() {
				msgs = append(msgs, v.Message)
			}
			return domain.ValidationError{
				Entity:     domain.EntityEnclosure,
				Message:    fmt.Sprintf("cannot add %s to %s: %s", animal.Name(), enclosure.Name(), strings.Join(msgs, "; ")),
				Violations: extra.Blocking(),
			}
		}
		if err := enclosure.AddAnimal(animal); err != nil {
			return err
		}
		for _, v := range extra.Violations {
			z.logger.Warn("admission rule warning", "rule", v.Rule, "animal", animal.Name(), "enclosure", enclosure.Name(), "message", v.Message)
		}

		if prev, ok := z.placements[animal]; ok && prev != enclosure && prev.Contains(animal) {
			if err := prev.RemoveAnimal(animal); err != nil {
				return err
			}
			z.logger.Info("animal relocated", "animal", animal.Name(), "from", prev.Name(), "to", enclosure.Name())
		}
		z.placements[animal] = enclosure
		return nil
	})
}

func (z *Zoo) hasAnimal(animal *domain.Animal) bool {
	for _, a := range z.animals {
		if a == animal {
			return true
		}
	}
	return false
}

func (z *Zoo) hasEnclosure(enclosure *domain.Enclosure) bool {
	for _, e := range z.enclosures {
		if e == enclosure {
			return true
		}
	}
	return false
}

// run wraps a mutating operation with audit, metrics and debug logging.
// Failures are returned to the caller untouched.
func (z *Zoo) run(op string, entity domain.EntityType, entityID, subject string, fn func() error) error {
	start := z.clock.Now()
	err := fn()
	z.observe(op, err, start)

	entry := AuditEntry{
		Operation: op,
		Status:    AuditStatusSuccess,
		Entity:    entity,
		EntityID:  entityID,
		Subject:   subject,
		At:        start,
	}
	if err != nil {
		entry.Status = AuditStatusError
		entry.Error = err.Error()
	} else {
		z.logger.Debug("zoo operation", "operation", op, "subject", subject)
	}
	z.audit.Record(entry)
	return err
}

func (z *Zoo) observe(op string, err error, start time.Time) {
	z.metrics.Observe(op, err == nil, z.clock.Now().Sub(start))
}
