// Package registry holds the static bidirectional country mapping: canonical
// ISO3 codes, display names, and lowercased aliases including demonym forms.
// A Registry is built once at startup and is read-only afterwards, so it is
// safe for unsynchronized concurrent use by every component.
package registry

import (
	"sort"
	"strings"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
)

type Registry struct {
	nameByCode  map[model.CountryCode]string
	codeByAlias map[string]model.CountryCode
	aliases     []string // every key of codeByAlias, longest first
}

// New builds the registry from the static country tables. Full names are
// merged with the alias table; alias entries win on collision so informal
// spellings keep their curated targets.
func New() *Registry {
	r := &Registry{
		nameByCode:  make(map[model.CountryCode]string, len(iso3ToName)),
		codeByAlias: make(map[string]model.CountryCode, len(iso3ToName)+len(countryAliases)),
	}

	for code, name := range iso3ToName {
		r.nameByCode[model.CountryCode(code)] = name
		r.codeByAlias[strings.ToLower(name)] = model.CountryCode(code)
	}
	for alias, code := range countryAliases {
		r.codeByAlias[alias] = model.CountryCode(code)
	}

	r.aliases = make([]string, 0, len(r.codeByAlias))
	for alias := range r.codeByAlias {
		r.aliases = append(r.aliases, alias)
	}
	// Longest first so "united states" is preferred over "states"; ties
	// sorted lexically for deterministic scans.
	sort.Slice(r.aliases, func(i, j int) bool {
		if len(r.aliases[i]) != len(r.aliases[j]) {
			return len(r.aliases[i]) > len(r.aliases[j])
		}
		return r.aliases[i] < r.aliases[j]
	})

	return r
}

// Resolve maps a token to its country code, case-insensitively, across full
// names, informal aliases, and demonym forms. Unknown tokens return ("", false).
func (r *Registry) Resolve(token string) (model.CountryCode, bool) {
	code, ok := r.codeByAlias[strings.ToLower(strings.TrimSpace(token))]
	return code, ok
}

// ResolveCode accepts a 3-letter canonical code in any case.
func (r *Registry) ResolveCode(token string) (model.CountryCode, bool) {
	code := model.CountryCode(strings.ToUpper(strings.TrimSpace(token)))
	if _, ok := r.nameByCode[code]; ok {
		return code, true
	}
	return "", false
}

// NameOf returns the display name for a code, or the code itself when unknown.
func (r *Registry) NameOf(code model.CountryCode) string {
	if name, ok := r.nameByCode[code]; ok {
		return name
	}
	return string(code)
}

// IsDemonym reports whether the surface form is a nationality word. Place
// aliases that merely resolve to a country ("dubai") are not demonyms.
func (r *Registry) IsDemonym(surface string) bool {
	_, ok := knownDemonyms[strings.ToLower(strings.TrimSpace(surface))]
	return ok
}

// Aliases returns every known alias, longest first. The slice is shared and
// must not be modified.
func (r *Registry) Aliases() []string {
	return r.aliases
}

// Len reports the number of canonical countries.
func (r *Registry) Len() int {
	return len(r.nameByCode)
}
