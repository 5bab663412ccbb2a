package entity

import (
	"sort"
	"strings"
)

// Role tags from the fixed vocabulary. Users may carry several at once,
// stored as a comma-separated string on the user record.
const (
	RoleWegewart      = "wegewart"      // worker logging labor/machine hours
	RoleOrtsvorsteher = "ortsvorsteher" // supervisor scoped to one Ortsteil
	RoleVerwaltung    = "verwaltung"    // administration staff, near-admin privilege
	RoleAdmin         = "admin"
)

// RoleInfo describes a role tag for presentation.
type RoleInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// KnownRoles is the role vocabulary with display names.
var KnownRoles = []RoleInfo{
	{Code: RoleWegewart, Name: "Wegewart"},
	{Code: RoleOrtsvorsteher, Name: "Ortsvorsteher"},
	{Code: RoleVerwaltung, Name: "Verwaltung"},
	{Code: RoleAdmin, Name: "Administrator"},
}

// RoleSet is the decoded form of the stored role string.
type RoleSet map[string]struct{}

// ParseRoles is the single decode boundary for the comma-separated role string.
// Tokens are trimmed; unknown tags are kept as opaque values so records written
// by newer versions still resolve. An empty string yields the empty set, which
// is a valid permission-less state, never an error.
func ParseRoles(s string) RoleSet {
	set := RoleSet{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// JoinRoles encodes a list of role tags back into the stored form.
func JoinRoles(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}

// Has reports whether the set contains the given tag.
func (r RoleSet) Has(tag string) bool {
	_, ok := r[tag]
	return ok
}

// HasAny reports whether the set contains at least one of the given tags.
func (r RoleSet) HasAny(tags ...string) bool {
	for _, t := range tags {
		if r.Has(t) {
			return true
		}
	}
	return false
}

// Tags returns the tags in deterministic (sorted) order.
func (r RoleSet) Tags() []string {
	out := make([]string, 0, len(r))
	for t := range r {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// String encodes the set back into the stored comma-separated form.
func (r RoleSet) String() string {
	return strings.Join(r.Tags(), ",")
}
