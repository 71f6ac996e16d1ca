// Package domain defines the zoo entities, their validated constructors and
// the admission rules that govern which animals an enclosure may house.
package domain

// EntityType identifies the kind of record a violation or error refers to.
type EntityType string

// Supported entity type identifiers.
const (
	// EntityAnimal identifies an individual animal.
	EntityAnimal EntityType = "animal"
	// EntityHealthRecord identifies a medical issue attached to an animal.
	EntityHealthRecord EntityType = "health_record"
	// EntityEnclosure identifies a housing unit.
	EntityEnclosure EntityType = "enclosure"
	// EntityStaff identifies a staff member.
	EntityStaff EntityType = "staff"
	// EntityZoo identifies the aggregate itself.
	EntityZoo EntityType = "zoo"
)

// Category partitions animals and constrains enclosure admission.
type Category string

// Supported animal categories.
const (
	CategoryMammal  Category = "mammal"
	CategoryBird    Category = "bird"
	CategoryReptile Category = "reptile"
)

// Categories returns the supported categories in declaration order.
func Categories() []Category {
	return []Category{CategoryMammal, CategoryBird, CategoryReptile}
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMammal, CategoryBird, CategoryReptile:
		return true
	}
	return false
}

// Environment describes the habitat an enclosure simulates.
type Environment string

// Supported enclosure environments.
const (
	EnvironmentAquatic    Environment = "aquatic"
	EnvironmentSavannah   Environment = "savannah"
	EnvironmentAviary     Environment = "aviary"
	EnvironmentDesert     Environment = "desert"
	EnvironmentRainforest Environment = "rainforest"
	EnvironmentTemperate  Environment = "temperate"
)

// Valid reports whether e is one of the supported environments.
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentAquatic, EnvironmentSavannah, EnvironmentAviary,
		EnvironmentDesert, EnvironmentRainforest, EnvironmentTemperate:
		return true
	}
	return false
}

// Role identifies a staff member's responsibilities.
type Role string

// Supported staff roles.
const (
	RoleZookeeper    Role = "zookeeper"
	RoleVeterinarian Role = "veterinarian"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	return r == RoleZookeeper || r == RoleVeterinarian
}

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine whether an admission proceeds.
const (
	// SeverityBlock refuses the admission.
	SeverityBlock Severity = "block"
	// SeverityWarn is reported but allows the admission.
	SeverityWarn Severity = "warn"
	// SeverityLog is recorded only.
	SeverityLog Severity = "log"
)
