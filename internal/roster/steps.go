package roster

import (
	"fmt"

	"zoocore/internal/core"
	"zoocore/pkg/domain"
)

// Step actions.
const (
	ActionHealthCheck = "health_check"
	ActionResolve     = "resolve"
	ActionAssign      = "assign"
	ActionClean       = "clean"
	ActionFeed        = "feed"
)

// Outcome reports one executed step. Err holds a refused business operation
// (a domain.ValidationError); the script carries on after it.
type Outcome struct {
	Step    int
	Action  string
	Message string
	Err     error
}

// OK reports whether the step succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("step %d %s refused: %v", o.Step, o.Action, o.Err)
	}
	return fmt.Sprintf("step %d %s: %s", o.Step, o.Action, o.Message)
}

// Apply runs the roster's steps against z in order. Refused business
// operations are reported as outcomes. Malformed steps and references to
// unknown entities stop the script with an *Error.
func (r *Roster) Apply(z *core.Zoo) ([]Outcome, error) {
	out := make([]Outcome, 0, len(r.Steps))
	for i, step := range r.Steps {
		msg, err := r.apply(z, i, step)
		if err != nil && !domain.IsValidation(err) {
			return out, err
		}
		out = append(out, Outcome{Step: i + 1, Action: step.Action, Message: msg, Err: err})
	}
	return out, nil
}

func (r *Roster) apply(z *core.Zoo, i int, step Step) (string, error) {
	at := entry("steps", i)
	switch step.Action {
	case ActionHealthCheck:
		vet, animal, err := r.vetAndAnimal(z, at, step)
		if err != nil {
			return "", err
		}
		rec, err := vet.HealthCheck(animal, step.Description, step.Severity, step.Treatment)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s recorded '%s' for %s [severity %d]", vet.Name(), rec.Description, animal.Name(), rec.Severity), nil
	case ActionResolve:
		vet, animal, err := r.vetAndAnimal(z, at, step)
		if err != nil {
			return "", err
		}
		if err := vet.ResolveIssue(animal, step.Index); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s resolved issue %d for %s", vet.Name(), step.Index, animal.Name()), nil
	case ActionAssign:
		animal, err := r.animal(z, at, step.Animal)
		if err != nil {
			return "", err
		}
		enclosure, err := r.enclosure(z, at, step.Enclosure)
		if err != nil {
			return "", err
		}
		if err := z.AssignAnimalToEnclosure(animal, enclosure); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s moved to %s", animal.Name(), enclosure.Name()), nil
	case ActionClean:
		keeper, err := r.keeper(z, at, step.Staff)
		if err != nil {
			return "", err
		}
		enclosure, err := r.enclosure(z, at, step.Enclosure)
		if err != nil {
			return "", err
		}
		return keeper.CleanEnclosure(enclosure)
	case ActionFeed:
		keeper, err := r.keeper(z, at, step.Staff)
		if err != nil {
			return "", err
		}
		animal, err := r.animal(z, at, step.Animal)
		if err != nil {
			return "", err
		}
		return keeper.Feed(animal), nil
	default:
		return "", &Error{Op: "roster.apply", Kind: KindInvalid, Path: r.path, Entry: at, Err: fmt.Errorf("unknown action %q", step.Action)}
	}
}

func (r *Roster) vetAndAnimal(z *core.Zoo, at string, step Step) (*domain.Veterinarian, *domain.Animal, error) {
	member, ok := z.FindStaff(step.Staff)
	if !ok {
		return nil, nil, r.unknown("roster.apply", at, "staff member", step.Staff)
	}
	vet, ok := member.(*domain.Veterinarian)
	if !ok {
		return nil, nil, &Error{Op: "roster.apply", Kind: KindInvalid, Path: r.path, Entry: at, Err: fmt.Errorf("%s is not a veterinarian", member.Name())}
	}
	animal, err := r.animal(z, at, step.Animal)
	if err != nil {
		return nil, nil, err
	}
	return vet, animal, nil
}

func (r *Roster) keeper(z *core.Zoo, at, name string) (*domain.Zookeeper, error) {
	member, ok := z.FindStaff(name)
	if !ok {
		return nil, r.unknown("roster.apply", at, "staff member", name)
	}
	keeper, ok := member.(*domain.Zookeeper)
	if !ok {
		return nil, &Error{Op: "roster.apply", Kind: KindInvalid, Path: r.path, Entry: at, Err: fmt.Errorf("%s is not a zookeeper", member.Name())}
	}
	return keeper, nil
}

func (r *Roster) animal(z *core.Zoo, at, name string) (*domain.Animal, error) {
	a, ok := z.FindAnimal(name)
	if !ok {
		return nil, r.unknown("roster.apply", at, "animal", name)
	}
	return a, nil
}

func (r *Roster) enclosure(z *core.Zoo, at, name string) (*domain.Enclosure, error) {
	e, ok := z.FindEnclosure(name)
	if !ok {
		return nil, r.unknown("roster.apply", at, "enclosure", name)
	}
	return e, nil
}
