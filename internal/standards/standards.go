// Package standards carries the SMACNA and ASHRAE design limits and the
// material data the duct calculators check against. Values are abridged
// from the published tables and identified by edition in the comments;
// they are data, not tunables.
package standards

// Standard identifies the body whose limits a check applies.
type Standard string

const (
	SMACNA Standard = "SMACNA"
	ASHRAE Standard = "ASHRAE"
)

// DuctClass identifies the system side a duct serves.
type DuctClass string

const (
	ClassSupply  DuctClass = "supply"
	ClassReturn  DuctClass = "return"
	ClassExhaust DuctClass = "exhaust"
)

// DuctType identifies the duct cross-section shape.
type DuctType string

const (
	Round       DuctType = "round"
	Rectangular DuctType = "rectangular"
)

// ValidDuctType reports whether dt names a supported shape.
func ValidDuctType(dt DuctType) bool {
	return dt == Round || dt == Rectangular
}

// ValidDuctClass reports whether dc names a supported system side.
func ValidDuctClass(dc DuctClass) bool {
	return dc == ClassSupply || dc == ClassReturn || dc == ClassExhaust
}
