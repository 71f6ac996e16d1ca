package core_test

import (
	"testing"
	"time"

	"zoocore/internal/core"
	"zoocore/pkg/domain"
)

var testDay = time.Date(2025, 10, 26, 8, 0, 0, 0, time.UTC)

type demoZoo struct {
	zoo       *core.Zoo
	leo       *domain.Animal
	polly     *domain.Animal
	snek      *domain.Animal
	savannah  *domain.Enclosure
	aviary    *domain.Enclosure
	reptarium *domain.Enclosure
	keeper    *domain.Zookeeper
	vet       *domain.Veterinarian
}

func intPtr(v int) *int { return &v }

func mustNoErr(t *testing.T, label string, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", label, err)
	}
}

// newDemoZoo registers the three demo animals, enclosures and staff without
// placing any animal.
func newDemoZoo(t *testing.T, opts ...core.Option) demoZoo {
	t.Helper()
	d := demoZoo{zoo: core.New("Simone's Zoo", opts...)}
	var err error

	d.leo, err = domain.NewMammal(domain.Profile{Name: "Leo", Species: "Lion", Age: 6, Diet: "meat", Category: "mammal"}, "short")
	mustNoErr(t, "leo", err)
	d.polly, err = domain.NewBird(domain.Profile{Name: "Polly", Species: "Parrot", Age: 2, Diet: "seeds", Category: "bird"}, true)
	mustNoErr(t, "polly", err)
	d.snek, err = domain.NewReptile(domain.Profile{Name: "Snek", Species: "Python", Age: 4, Diet: "rodents", Category: "reptile"}, false)
	mustNoErr(t, "snek", err)
	for _, a := range []*domain.Animal{d.leo, d.polly, d.snek} {
		mustNoErr(t, "add animal", d.zoo.AddAnimal(a))
	}

	d.savannah, err = domain.NewEnclosure(domain.EnclosureSpec{Name: "Savannah Plains", Environment: "savannah", SizeSqM: 1200, AllowedCategory: "mammal", Cleanliness: intPtr(85)})
	mustNoErr(t, "savannah", err)
	d.aviary, err = domain.NewEnclosure(domain.EnclosureSpec{Name: "Big Aviary", Environment: "aviary", SizeSqM: 300, AllowedCategory: "bird", Cleanliness: intPtr(90)})
	mustNoErr(t, "aviary", err)
	d.reptarium, err = domain.NewEnclosure(domain.EnclosureSpec{Name: "Reptarium", Environment: "desert", SizeSqM: 250, AllowedCategory: "reptile", Cleanliness: intPtr(75)})
	mustNoErr(t, "reptarium", err)
	for _, e := range []*domain.Enclosure{d.savannah, d.aviary, d.reptarium} {
		mustNoErr(t, "add enclosure", d.zoo.AddEnclosure(e))
	}

	d.keeper, err = domain.NewZookeeper("Sam", "zookeeper")
	mustNoErr(t, "keeper", err)
	d.vet, err = domain.NewVeterinarian("Vera", "veterinarian", domain.WithClock(func() time.Time { return testDay }))
	mustNoErr(t, "vet", err)
	mustNoErr(t, "add keeper", d.zoo.AddStaff(d.keeper))
	mustNoErr(t, "add vet", d.zoo.AddStaff(d.vet))

	d.keeper.AssignEnclosure(d.savannah)
	d.keeper.AssignEnclosure(d.aviary)
	d.keeper.AssignEnclosure(d.reptarium)
	return d
}

// house places every demo animal in its matching enclosure.
func (d demoZoo) house(t *testing.T) {
	t.Helper()
	mustNoErr(t, "assign leo", d.zoo.AssignAnimalToEnclosure(d.leo, d.savannah))
	mustNoErr(t, "assign polly", d.zoo.AssignAnimalToEnclosure(d.polly, d.aviary))
	mustNoErr(t, "assign snek", d.zoo.AssignAnimalToEnclosure(d.snek, d.reptarium))
}

type captureLogger struct{ calls []string }

func (c *captureLogger) Debug(msg string, _ ...any) { c.calls = append(c.calls, "d:"+msg) }
func (c *captureLogger) Info(msg string, _ ...any)  { c.calls = append(c.calls, "i:"+msg) }
func (c *captureLogger) Warn(msg string, _ ...any)  { c.calls = append(c.calls, "w:"+msg) }
func (c *captureLogger) Error(msg string, _ ...any) { c.calls = append(c.calls, "e:"+msg) }

func (c *captureLogger) has(call string) bool {
	for _, got := range c.calls {
		if got == call {
			return true
		}
	}
	return false
}

type metricsCall struct {
	op      string
	success bool
}

type captureMetricsRecorder struct{ calls []metricsCall }

func (c *captureMetricsRecorder) Observe(op string, success bool, _ time.Duration) {
	c.calls = append(c.calls, metricsCall{op: op, success: success})
}

func (c *captureMetricsRecorder) has(op string, success bool) bool {
	for _, call := range c.calls {
		if call.op == op && call.success == success {
			return true
		}
	}
	return false
}
