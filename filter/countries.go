package filter

import "strings"

// CountryAliases maps a canonical country key to its lowercase aliases.
// The table is built once at startup and never mutated afterwards.
type CountryAliases map[string][]string

// DefaultCountryAliases returns the built-in alias table.
func DefaultCountryAliases() CountryAliases {
	return CountryAliases{
		"sweden": {"sverige", "sweden"},
		"usa":    {"united states", "usa", "us"},
		"spain":  {"españa", "spain", "espanya"},
		"france": {"france"},
	}
}

// Merge returns a copy of the table extended with overrides. Override
// aliases replace the built-in set for the same canonical key.
func (c CountryAliases) Merge(overrides map[string][]string) CountryAliases {
	merged := make(CountryAliases, len(c)+len(overrides))
	for key, aliases := range c {
		merged[key] = aliases
	}
	for key, aliases := range overrides {
		merged[strings.ToLower(key)] = aliases
	}
	return merged
}

// Normalize maps a free-text country name to its canonical key. Unknown
// names pass through lowercased.
func (c CountryAliases) Normalize(name string) string {
	name = strings.ToLower(name)
	for key, aliases := range c {
		for _, a := range aliases {
			if a == name {
				return key
			}
		}
	}
	return name
}

// Aliases returns the alias set for a country name, falling back to the
// lowercased name itself when the country is not in the table.
func (c CountryAliases) Aliases(name string) []string {
	if aliases, ok := c[c.Normalize(name)]; ok {
		return aliases
	}
	return []string{strings.ToLower(name)}
}
