// meta/meta.go
package meta

// INK_THRESHOLD is the instability level at which a region inks out.
const INK_THRESHOLD = 3

// MAX_BUILDS caps the number of new connection requests per turn.
const MAX_BUILDS = 2

// MAX_BUILDS_PER_TOWN caps new connection requests per source town per turn.
const MAX_BUILDS_PER_TOWN = 1
