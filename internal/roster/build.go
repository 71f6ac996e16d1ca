package roster

import (
	"fmt"
	"time"

	"zoocore/internal/core"
	"zoocore/pkg/domain"
)

// Option customises Build.
type Option func(*buildOptions)

type buildOptions struct {
	now     func() time.Time
	zooOpts []core.Option
}

// WithClock dates health records and zoo audit entries with now.
func WithClock(now func() time.Time) Option {
	return func(o *buildOptions) { o.now = now }
}

// WithZooOptions passes options through to core.New.
func WithZooOptions(opts ...core.Option) Option {
	return func(o *buildOptions) { o.zooOpts = append(o.zooOpts, opts...) }
}

// Build constructs every entity in the roster, registers it with a new zoo
// and wires staff assignments. Any construction failure aborts the build.
func (r *Roster) Build(opts ...Option) (*core.Zoo, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	zooOpts := o.zooOpts
	var vetOpts []domain.VetOption
	if o.now != nil {
		zooOpts = append([]core.Option{core.WithClock(core.ClockFunc(o.now))}, zooOpts...)
		vetOpts = append(vetOpts, domain.WithClock(o.now))
	}
	z := core.New(r.Zoo, zooOpts...)

	for i, src := range r.Animals {
		if _, dup := z.FindAnimal(src.Name); dup {
			return nil, r.invalid(entry("animals", i), fmt.Errorf("duplicate animal name %q", src.Name))
		}
		a, err := newAnimal(src)
		if err == nil {
			err = z.AddAnimal(a)
		}
		if err != nil {
			return nil, r.invalid(entry("animals", i), err)
		}
	}

	for i, src := range r.Enclosures {
		if _, dup := z.FindEnclosure(src.Name); dup {
			return nil, r.invalid(entry("enclosures", i), fmt.Errorf("duplicate enclosure name %q", src.Name))
		}
		e, err := domain.NewEnclosure(domain.EnclosureSpec{
			Name:            src.Name,
			Environment:     src.Environment,
			SizeSqM:         src.SizeSqM,
			AllowedCategory: src.AllowedCategory,
			Cleanliness:     src.Cleanliness,
		})
		if err == nil {
			err = z.AddEnclosure(e)
		}
		if err != nil {
			return nil, r.invalid(entry("enclosures", i), err)
		}
	}

	for i, src := range r.Staff {
		at := entry("staff", i)
		if _, dup := z.FindStaff(src.Name); dup {
			return nil, r.invalid(at, fmt.Errorf("duplicate staff name %q", src.Name))
		}
		member, err := r.newMember(z, at, src, vetOpts)
		if err != nil {
			return nil, err
		}
		if err := z.AddStaff(member); err != nil {
			return nil, r.invalid(at, err)
		}
	}
	return z, nil
}

func newAnimal(src Animal) (*domain.Animal, error) {
	p := domain.Profile{
		Name:     src.Name,
		Species:  src.Species,
		Age:      src.Age,
		Diet:     src.Diet,
		Category: src.Category,
	}
	kind := src.Kind
	if kind == "" {
		kind = src.Category
	}
	switch domain.Category(kind) {
	case domain.CategoryMammal:
		return domain.NewMammal(p, src.FurType)
	case domain.CategoryBird:
		return domain.NewBird(p, src.CanFly)
	case domain.CategoryReptile:
		return domain.NewReptile(p, src.Venomous)
	default:
		return nil, fmt.Errorf("unknown animal kind %q", kind)
	}
}

func (r *Roster) newMember(z *core.Zoo, at string, src Member, vetOpts []domain.VetOption) (domain.Staff, error) {
	switch domain.Role(src.Role) {
	case domain.RoleZookeeper:
		if len(src.Animals) > 0 {
			return nil, r.invalid(at, fmt.Errorf("zookeeper %s cannot be assigned animals", src.Name))
		}
		k, err := domain.NewZookeeper(src.Name, src.Role)
		if err != nil {
			return nil, r.invalid(at, err)
		}
		for _, name := range src.Enclosures {
			e, ok := z.FindEnclosure(name)
			if !ok {
				return nil, r.unknown("roster.build", at, "enclosure", name)
			}
			k.AssignEnclosure(e)
		}
		return k, nil
	case domain.RoleVeterinarian:
		if len(src.Enclosures) > 0 {
			return nil, r.invalid(at, fmt.Errorf("veterinarian %s cannot be assigned enclosures", src.Name))
		}
		v, err := domain.NewVeterinarian(src.Name, src.Role, vetOpts...)
		if err != nil {
			return nil, r.invalid(at, err)
		}
		for _, name := range src.Animals {
			a, ok := z.FindAnimal(name)
			if !ok {
				return nil, r.unknown("roster.build", at, "animal", name)
			}
			v.AssignAnimal(a)
		}
		return v, nil
	default:
		return nil, r.invalid(at, fmt.Errorf("unknown staff role %q", src.Role))
	}
}

func (r *Roster) invalid(at string, err error) *Error {
	return &Error{Op: "roster.build", Kind: KindInvalid, Path: r.path, Entry: at, Err: err}
}

func (r *Roster) unknown(op, at, what, name string) *Error {
	return &Error{Op: op, Kind: KindReference, Path: r.path, Entry: at, Err: fmt.Errorf("no %s named %q", what, name)}
}
