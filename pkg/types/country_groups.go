package types

import (
	"fmt"
	"sort"
	"strings"
)

// CountryGroups maps a group code to the ISO-2 country codes it covers. The
// map is supplied per request and never held as global state.
type CountryGroups map[string][]string

// Normalize upper-cases and trims every code and rejects maps in which a
// country belongs to more than one group, so group-override resolution stays
// deterministic.
func (g CountryGroups) Normalize() (CountryGroups, error) {
	if len(g) == 0 {
		return nil, nil
	}

	normalized := make(CountryGroups, len(g))
	seen := map[string]string{}

	groups := make([]string, 0, len(g))
	for group := range g {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		code := strings.ToUpper(strings.TrimSpace(group))
		if code == "" {
			continue
		}
		var countries []string
		for _, country := range g[group] {
			cc := strings.ToUpper(strings.TrimSpace(country))
			if cc == "" {
				continue
			}
			if owner, ok := seen[cc]; ok && owner != code {
				return nil, fmt.Errorf("country %s belongs to groups %s and %s", cc, owner, code)
			}
			if _, ok := seen[cc]; ok {
				continue
			}
			seen[cc] = code
			countries = append(countries, cc)
		}
		if len(countries) > 0 {
			normalized[code] = countries
		}
	}
	return normalized, nil
}

// Contains reports whether the named group covers the country. Both codes are
// matched case-insensitively.
func (g CountryGroups) Contains(group, country string) bool {
	countries, ok := g[strings.ToUpper(strings.TrimSpace(group))]
	if !ok {
		return false
	}
	for _, cc := range countries {
		if strings.EqualFold(cc, country) {
			return true
		}
	}
	return false
}
