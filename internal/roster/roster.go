// Package roster loads a zoo description from YAML: its animals, enclosures
// and staff, plus a script of steps (health checks, assignments, ...) to run
// against the assembled zoo.
package roster

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// Roster is the decoded YAML document.
type Roster struct {
	Zoo        string      `yaml:"zoo"`
	Animals    []Animal    `yaml:"animals"`
	Enclosures []Enclosure `yaml:"enclosures"`
	Staff      []Member    `yaml:"staff"`
	Steps      []Step      `yaml:"steps"`

	path string
}

// Animal describes one animal. Kind selects the variant (mammal, bird,
// reptile) and defaults to Category.
type Animal struct {
	Name     string `yaml:"name"`
	Species  string `yaml:"species"`
	Age      int    `yaml:"age"`
	Diet     string `yaml:"diet"`
	Category string `yaml:"category"`
	Kind     string `yaml:"kind,omitempty"`
	FurType  string `yaml:"fur_type,omitempty"`
	CanFly   bool   `yaml:"can_fly,omitempty"`
	Venomous bool   `yaml:"venomous,omitempty"`
}

// Enclosure describes one enclosure. A missing cleanliness starts at 100.
type Enclosure struct {
	Name            string  `yaml:"name"`
	Environment     string  `yaml:"environment"`
	SizeSqM         float64 `yaml:"size_sq_m"`
	AllowedCategory string  `yaml:"allowed_category"`
	Cleanliness     *int    `yaml:"cleanliness,omitempty"`
}

// Member describes a staff member and their assignments: enclosures for a
// zookeeper, animals for a veterinarian.
type Member struct {
	Name       string   `yaml:"name"`
	Role       string   `yaml:"role"`
	Enclosures []string `yaml:"enclosures,omitempty"`
	Animals    []string `yaml:"animals,omitempty"`
}

// Step is one scripted action. Which fields apply depends on Action.
type Step struct {
	Action      string `yaml:"action"`
	Animal      string `yaml:"animal,omitempty"`
	Enclosure   string `yaml:"enclosure,omitempty"`
	Staff       string `yaml:"staff,omitempty"`
	Description string `yaml:"description,omitempty"`
	Severity    int    `yaml:"severity,omitempty"`
	Treatment   string `yaml:"treatment,omitempty"`
	Index       int    `yaml:"index,omitempty"`
}

// Load reads and decodes the roster at path.
func Load(path string) (*Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		kind := KindRead
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindNotFound
		}
		return nil, &Error{Op: "roster.load", Kind: kind, Path: path, Err: err}
	}
	r, err := Parse(raw)
	if err != nil {
		var re *Error
		if errors.As(err, &re) {
			re.Path = path
		}
		return nil, err
	}
	r.path = path
	return r, nil
}

// Parse decodes a roster document. Unknown fields are rejected.
func Parse(raw []byte) (*Roster, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var r Roster
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &Error{Op: "roster.parse", Kind: KindInvalid, Err: err}
	}
	if r.Zoo == "" {
		return nil, &Error{Op: "roster.parse", Kind: KindInvalid, Entry: "zoo", Err: errors.New("zoo name is required")}
	}
	return &r, nil
}

// Demo returns the built-in demonstration roster.
func Demo() *Roster {
	r, err := Parse(demoYAML)
	if err != nil {
		panic("roster: invalid embedded demo: " + err.Error())
	}
	r.path = "demo.yaml"
	return r
}

// Path returns the file the roster was loaded from, if any.
func (r *Roster) Path() string { return r.path }

// Marshal encodes the roster back to YAML.
func (r *Roster) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}
