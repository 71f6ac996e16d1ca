package core

import (
	"fmt"
	"iter"

	"zoocore/pkg/domain"
)

// DailyRoutine narrates one simulated day. Nothing runs until the sequence is
// ranged over, and every range replays the routine against the current state:
//
//  1. each zookeeper, in staff order, feeds the animals of every assigned
//     enclosure and then cleans it;
//  2. each veterinarian examines the animals on their caseload;
//  3. animals no keeper fed, in registration order, eat on their own;
//  4. every animal, in registration order, goes to sleep.
func (z *Zoo) DailyRoutine() iter.Seq[string] {
	return func(yield func(string) bool) {
		start := z.clock.Now()
		lines := 0
		fed := make(map[*domain.Animal]bool, len(z.animals))
		emit := func(line string) bool {
			lines++
			return yield(line)
		}

		for _, member := range z.staff {
			keeper, ok := member.(*domain.Zookeeper)
			if !ok {
				continue
			}
			for _, enclosure := range keeper.AssignedEnclosures() {
				for _, animal := range enclosure.Animals() {
					fed[animal] = true
					if !emit(keeper.Feed(animal)) {
						return
					}
				}
				msg, err := keeper.CleanEnclosure(enclosure)
				if err != nil {
					msg = err.Error()
				}
				if !emit(msg) {
					return
				}
			}
		}

		for _, member := range z.staff {
			vet, ok := member.(*domain.Veterinarian)
			if !ok {
				continue
			}
			for _, animal := range vet.AssignedAnimals() {
				if !emit(examination(vet, animal)) {
					return
				}
			}
		}

		for _, animal := range z.animals {
			if fed[animal] {
				continue
			}
			if !emit(animal.Eat()) {
				return
			}
		}

		for _, animal := range z.animals {
			if !emit(animal.Sleep()) {
				return
			}
		}

		z.observe("daily_routine", nil, start)
		z.logger.Debug("daily routine complete", "zoo", z.name, "lines", lines)
	}
}

func examination(vet *domain.Veterinarian, animal *domain.Animal) string {
	active := len(animal.ActiveIssues())
	if active == 0 {
		return fmt.Sprintf("%s examines %s: no active issues", vet.Name(), animal.Name())
	}
	return fmt.Sprintf("%s examines %s: %d active issue(s)", vet.Name(), animal.Name(), active)
}
