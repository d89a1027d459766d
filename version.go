package physfs

import "fmt"

// Version identifies a release of this library.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// linkedVersion is the version of the facade itself, reported by
// GetLinkedVersion.
var linkedVersion = Version{Major: 1, Minor: 0, Patch: 0}

// GetLinkedVersion returns the version of the library in use.
func GetLinkedVersion() Version {
	return linkedVersion
}
