package components

import "github.com/yohamta/donburi"

// ContactPair is an unordered pair of entities whose boxes overlap.
type ContactPair struct {
	A, B donburi.Entity
}

// NewContactPair orders the two entities so the pair is stable regardless
// of argument order.
func NewContactPair(a, b donburi.Entity) ContactPair {
	if a > b {
		a, b = b, a
	}
	return ContactPair{A: a, B: b}
}

// ContactsData remembers which pairs overlapped on the previous tick so
// collision effects fire only when contact begins.
type ContactsData struct {
	Touching map[ContactPair]bool
}

var Contacts = donburi.NewComponentType[ContactsData]()
