package avatars

// Element is one of the four fixed visual categories assigned to members.
type Element string

// The four elements.
const (
	ElementEarth Element = "earth"
	ElementWater Element = "water"
	ElementFire  Element = "fire"
	ElementAir   Element = "air"
)

// Elements lists the elements in assignment order. The order is load-bearing:
// an identifier's element is Elements[HashSeed(id) mod 4], so reordering this
// slice reassigns every existing member.
var Elements = []Element{ElementEarth, ElementWater, ElementFire, ElementAir}

// ValidElement reports whether s names one of the four elements.
func ValidElement(s string) bool {
	switch Element(s) {
	case ElementEarth, ElementWater, ElementFire, ElementAir:
		return true
	}
	return false
}

// ElementForUser deterministically assigns an element to an identifier.
// Empty identifiers get the earth fallback rather than an error.
func ElementForUser(idOrSeed string) Element {
	if idOrSeed == "" {
		return ElementEarth
	}
	return Elements[HashSeed(idOrSeed)%int64(len(Elements))]
}
