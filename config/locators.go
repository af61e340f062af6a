package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"web_controls/domain/entities"
)

// Locators is a named catalogue of locators, loaded from YAML:
//
//	search:
//	  by: id
//	  value: autocomplete
type Locators map[string]entities.Locator

// LoadLocators reads and validates a locator catalogue
func LoadLocators(path string) (Locators, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locators: %w", err)
	}

	var locators Locators
	if err := yaml.Unmarshal(data, &locators); err != nil {
		return nil, fmt.Errorf("failed to parse locators %s: %w", path, err)
	}

	for name, loc := range locators {
		if !loc.By.Valid() {
			return nil, fmt.Errorf("locator %q: unknown strategy %q", name, loc.By)
		}
		if loc.Value == "" {
			return nil, fmt.Errorf("locator %q: empty value", name)
		}
	}
	return locators, nil
}

// Lookup returns the named locator
func (l Locators) Lookup(name string) (entities.Locator, bool) {
	loc, ok := l[name]
	return loc, ok
}
