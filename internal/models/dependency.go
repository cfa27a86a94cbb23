package models

// ModulePath is the normalized resource path of one bundled file
type ModulePath string

// DependencyName is a normalized npm-style package name
type DependencyName string

// DependencySet is a collection of unique dependency names
type DependencySet []DependencyName

// Contains reports whether name is in the set
func (s DependencySet) Contains(name DependencyName) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}
