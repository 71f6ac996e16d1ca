package domain

import "fmt"

// Rule evaluates whether an enclosure may admit an animal.
type Rule interface {
	Name() string
	Evaluate(enclosure *Enclosure, animal *Animal) Result
}

// RulesEngine orchestrates rule evaluation.
type RulesEngine struct {
	rules []Rule
}

// NewRulesEngine constructs an engine instance.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// DefaultAdmissionRules builds an engine with the built-in admission policy:
// the animal's category must match and it must not be under treatment.
func DefaultAdmissionRules() *RulesEngine {
	engine := NewRulesEngine()
	engine.Register(categoryMatchRule{})
	engine.Register(treatmentClearanceRule{})
	return engine
}

var defaultAdmission = DefaultAdmissionRules()

// Register appends a rule to the engine.
func (e *RulesEngine) Register(rule Rule) {
	e.rules = append(e.rules, rule)
}

// Evaluate executes all registered rules and aggregates their results.
func (e *RulesEngine) Evaluate(enclosure *Enclosure, animal *Animal) Result {
	var combined Result
	for _, rule := range e.rules {
		combined.Merge(rule.Evaluate(enclosure, animal))
	}
	return combined
}

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string     `json:"rule"`
	Severity Severity   `json:"severity"`
	Message  string     `json:"message"`
	Entity   EntityType `json:"entity"`
	EntityID string     `json:"entity_id"`
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// Blocking returns only the blocking violations.
func (r Result) Blocking() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			out = append(out, v)
		}
	}
	return out
}

type categoryMatchRule struct{}

func (categoryMatchRule) Name() string { return "category_match" }

func (categoryMatchRule) Evaluate(enclosure *Enclosure, animal *Animal) Result {
	if animal.Category() == enclosure.AllowedCategory() {
		return Result{}
	}
	return Result{Violations: []Violation{{
		Rule:     "category_match",
		Severity: SeverityBlock,
		Message:  fmt.Sprintf("%s is a %s, enclosure %s houses %ss", animal.Name(), animal.Category(), enclosure.Name(), enclosure.AllowedCategory()),
		Entity:   EntityAnimal,
		EntityID: animal.ID(),
	}}}
}

type treatmentClearanceRule struct{}

func (treatmentClearanceRule) Name() string { return "treatment_clearance" }

func (treatmentClearanceRule) Evaluate(_ *Enclosure, animal *Animal) Result {
	if !animal.UnderTreatment() {
		return Result{}
	}
	return Result{Violations: []Violation{{
		Rule:     "treatment_clearance",
		Severity: SeverityBlock,
		Message:  fmt.Sprintf("%s is under treatment", animal.Name()),
		Entity:   EntityAnimal,
		EntityID: animal.ID(),
	}}}
}
