package models

// BlacklistRules holds the parsed dynamic-window blacklist.
// A window matching any rule is excluded from dynamic-state detection.
type BlacklistRules struct {
	Classes   []string // exact window class matches
	Titles    []string // title substring matches
	Filenames []string // case-insensitive executable name matches, stored lower-case
}

// Empty reports whether no rules are loaded.
func (r *BlacklistRules) Empty() bool {
	return len(r.Classes) == 0 && len(r.Titles) == 0 && len(r.Filenames) == 0
}
