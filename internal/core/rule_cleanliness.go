package core

import (
	"fmt"

	"zoocore/pkg/domain"
)

// NewCleanlinessRule warns when an animal is admitted to an enclosure whose
// cleanliness is below threshold. It never blocks the admission.
func NewCleanlinessRule(threshold int) domain.Rule {
	return cleanlinessRule{threshold: threshold}
}

type cleanlinessRule struct {
	threshold int
}

func (cleanlinessRule) Name() string { return "enclosure_cleanliness" }

func (r cleanlinessRule) Evaluate(enclosure *domain.Enclosure, _ *domain.Animal) domain.Result {
	if enclosure.Cleanliness() >= r.threshold {
		return domain.Result{}
	}
	return domain.Result{Violations: []domain.Violation{{
		Rule:     "enclosure_cleanliness",
		Severity: domain.SeverityWarn,
		Message:  fmt.Sprintf("enclosure %s cleanliness %d/100 below %d", enclosure.Name(), enclosure.Cleanliness(), r.threshold),
		Entity:   domain.EntityEnclosure,
		EntityID: enclosure.ID(),
	}}}
}
