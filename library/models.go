package library

// Item is a catalog entry. ID is meant to be unique but the catalog only
// enforces that when built with WithUniqueIDs.
type Item struct {
	ID        string
	Title     string
	Author    string
	Available bool
}

// NewItem returns an item that is available for checkout.
func NewItem(title, author, id string) *Item {
	return &Item{ID: id, Title: title, Author: author, Available: true}
}

// Actor is a registered member who can hold items.
type Actor struct {
	ID        int
	Name      string
	HeldItems []string // borrow order
}

// NewActor returns an actor holding nothing.
func NewActor(name string, id int) *Actor {
	return &Actor{ID: id, Name: name}
}

// AttachItem records itemID as held. Duplicates are not checked.
func (a *Actor) AttachItem(itemID string) {
	a.HeldItems = append(a.HeldItems, itemID)
}

// DetachItem drops the first occurrence of itemID and reports whether there
// was one.
func (a *Actor) DetachItem(itemID string) bool {
	for i, id := range a.HeldItems {
		if id == itemID {
			a.HeldItems = append(a.HeldItems[:i], a.HeldItems[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Actor) clone() Actor {
	c := *a
	c.HeldItems = append([]string(nil), a.HeldItems...)
	return c
}
