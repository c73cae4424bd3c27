// Package weapon holds the weapon database, the upgrade pool, and the
// per-level behaviour variants resolved when a shot is fired.
package weapon

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ID identifies a weapon or an upgrade card.
type ID string

// Weapon and upgrade identifiers.
const (
	Gun     ID = "gun"
	Bow     ID = "bow"
	Grenade ID = "grenade"
	Molotov ID = "molotov"
	Heal    ID = "heal" // upgrade card only, never equipped
)

// UpgradePool is the set level-up offers are sampled from.
var UpgradePool = []ID{Gun, Bow, Grenade, Molotov, Heal}

//go:embed weapons.yaml
var defaultWeaponsYAML []byte

// Info is display metadata. Gameplay numbers live with the combat code.
type Info struct {
	ID          ID     `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// DB maps ids to display metadata.
type DB struct {
	byID map[ID]Info
}

type dbFile struct {
	Weapons []Info `yaml:"weapons"`
}

// Slot is one inventory entry.
type Slot struct {
	ID    ID
	Level int
}

// DefaultDB returns the embedded weapon database.
func DefaultDB() *DB {
	db, err := ParseDB(defaultWeaponsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded weapons.yaml: %v", err))
	}
	return db
}

// LoadDB reads a weapon database from a YAML file.
func LoadDB(filePath string) (*DB, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapons file: %w", err)
	}
	return ParseDB(data)
}

// ParseDB decodes a weapon database and checks every pool entry is described.
func ParseDB(data []byte) (*DB, error) {
	var f dbFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse weapons YAML: %w", err)
	}

	db := &DB{byID: make(map[ID]Info, len(f.Weapons))}
	for _, w := range f.Weapons {
		if w.ID == "" {
			return nil, fmt.Errorf("invalid weapons config: id cannot be empty")
		}
		if w.Name == "" {
			return nil, fmt.Errorf("invalid weapons config: %q has no name", w.ID)
		}
		db.byID[w.ID] = w
	}
	for _, id := range UpgradePool {
		if _, ok := db.byID[id]; !ok {
			return nil, fmt.Errorf("invalid weapons config: missing entry for %q", id)
		}
	}
	return db, nil
}

// Info returns the metadata for id. Unknown ids fall back to the raw id as name.
func (db *DB) Info(id ID) Info {
	if info, ok := db.byID[id]; ok {
		return info
	}
	return Info{ID: id, Name: string(id)}
}

// Name is shorthand for Info(id).Name.
func (db *DB) Name(id ID) string {
	return db.Info(id).Name
}
