// Package words holds the stage table, the endless word list, and the
// generator that turns them into enemy labels.
package words

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StageID identifies a stage: "1", "2", "3" or "ENDLESS".
type StageID string

// Well-known stage identifiers.
const (
	Stage1  StageID = "1"
	Stage2  StageID = "2"
	Stage3  StageID = "3"
	Endless StageID = "ENDLESS"
)

// ErrUnknownStage is returned when a stage id is not in the table.
var ErrUnknownStage = errors.New("unknown stage")

//go:embed stages.yaml
var defaultStagesYAML []byte

//go:embed words.yaml
var defaultWordsYAML []byte

// Stage describes how labels are generated for one stage.
type Stage struct {
	ID      StageID `yaml:"id"`
	Name    string  `yaml:"name"`
	Chars   string  `yaml:"chars"`
	MinLen  int     `yaml:"minLen"`
	MaxLen  int     `yaml:"maxLen"`
	Endless bool    `yaml:"endless"`
}

// Table is the ordered stage list.
type Table struct {
	Stages []Stage `yaml:"stages"`
}

// WordList is the flat list used by endless stages.
type WordList struct {
	Words []string `yaml:"words"`
}

// DefaultStages returns the embedded stage table.
func DefaultStages() *Table {
	t, err := ParseStages(defaultStagesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded stages.yaml: %v", err))
	}
	return t
}

// DefaultWordList returns the embedded endless word list.
func DefaultWordList() *WordList {
	l, err := ParseWordList(defaultWordsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded words.yaml: %v", err))
	}
	return l
}

// LoadStages reads a stage table from a YAML file.
func LoadStages(filePath string) (*Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stages file: %w", err)
	}
	return ParseStages(data)
}

// ParseStages decodes and validates a stage table.
func ParseStages(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse stages YAML: %w", err)
	}
	if err := validateStages(&t); err != nil {
		return nil, fmt.Errorf("invalid stages config: %w", err)
	}
	return &t, nil
}

func validateStages(t *Table) error {
	if len(t.Stages) == 0 {
		return fmt.Errorf("stages cannot be empty")
	}
	seen := make(map[StageID]bool, len(t.Stages))
	for _, s := range t.Stages {
		if s.ID == "" {
			return fmt.Errorf("stage id cannot be empty")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate stage id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Endless {
			continue
		}
		if s.Chars == "" {
			return fmt.Errorf("stage %q: chars cannot be empty", s.ID)
		}
		if s.MinLen < 1 {
			return fmt.Errorf("stage %q: minLen must be >= 1, got %d", s.ID, s.MinLen)
		}
		if s.MaxLen < s.MinLen {
			return fmt.Errorf("stage %q: maxLen %d is below minLen %d", s.ID, s.MaxLen, s.MinLen)
		}
	}
	return nil
}

// Get returns the stage with the given id.
func (t *Table) Get(id StageID) (Stage, error) {
	for _, s := range t.Stages {
		if s.ID == id {
			return s, nil
		}
	}
	return Stage{}, fmt.Errorf("%w: %q", ErrUnknownStage, id)
}

// Next returns the stage played after clearing id. The last stage in the
// table (normally ENDLESS) is its own successor.
func (t *Table) Next(id StageID) StageID {
	for i, s := range t.Stages {
		if s.ID == id && i+1 < len(t.Stages) {
			return t.Stages[i+1].ID
		}
	}
	return id
}

// LoadWordList reads an endless word list from a YAML file.
func LoadWordList(filePath string) (*WordList, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list file: %w", err)
	}
	return ParseWordList(data)
}

// ParseWordList decodes and validates a word list.
func ParseWordList(data []byte) (*WordList, error) {
	var l WordList
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse word list YAML: %w", err)
	}
	if len(l.Words) == 0 {
		return nil, fmt.Errorf("invalid word list: words cannot be empty")
	}
	for i, w := range l.Words {
		if w == "" {
			return nil, fmt.Errorf("invalid word list: entry %d is empty", i)
		}
	}
	return &l, nil
}
