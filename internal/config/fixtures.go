package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures seed the stateful lessons: the ATM cash box and the file system tree.
type Fixtures struct {
	ATM        ATMFixture `yaml:"atm"`
	FileSystem Entry      `yaml:"filesystem"`
}

// ATMFixture describes the notes loaded into the cash box and the
// withdrawals the lesson attempts.
type ATMFixture struct {
	Notes       []NoteFixture `yaml:"notes" validate:"required,min=1,dive"`
	Withdrawals []int         `yaml:"withdrawals" validate:"dive,gt=0"`
}

type NoteFixture struct {
	Denomination int `yaml:"denomination" validate:"gt=0"`
	Count        int `yaml:"count" validate:"gte=0"`
}

// Entry is a file (Size set, no Children) or a folder.
type Entry struct {
	Name     string  `yaml:"name" validate:"required,excludesall=/"`
	Size     int64   `yaml:"size" validate:"gte=0"`
	Children []Entry `yaml:"children" validate:"dive"`
	Dir      bool    `yaml:"dir"`
}

// IsDir reports whether the entry is a folder. Entries with children are
// folders even without the dir flag.
func (e Entry) IsDir() bool {
	return e.Dir || len(e.Children) > 0
}

// Inventory returns the ATM notes as denomination to count.
func (a ATMFixture) Inventory() map[int]int {
	inv := make(map[int]int, len(a.Notes))
	for _, n := range a.Notes {
		inv[n.Denomination] += n.Count
	}
	return inv
}

// LoadFixtures reads fixtures from path, or the embedded defaults when path is empty.
func LoadFixtures(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		data = raw
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes and validates a fixtures document.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}
	return &f, nil
}
