package library

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Catalog owns the items and actors of one library and coordinates
// circulation between them. Lookups are first-match linear scans in insertion
// order. A single mutex guards both collections, so checkout and checkin
// always observe a consistent view.
type Catalog struct {
	mu     sync.Mutex
	items  []*Item
	actors []*Actor

	log    *zap.Logger
	strict bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for circulation events.
func WithLogger(log *zap.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUniqueIDs makes AddItem and AddActor reject ids already in use.
func WithUniqueIDs() Option {
	return func(c *Catalog) { c.strict = true }
}

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ------------------ Items ------------------

// AddItem appends an available item. Ids are not checked unless the catalog
// was built with WithUniqueIDs.
func (c *Catalog) AddItem(title, author, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.strict && c.findItem(id) != nil {
		c.log.Debug("Item rejected", zap.String("item_id", id), zap.Error(ErrDuplicateID))
		return fmt.Errorf("%w: item %q", ErrDuplicateID, id)
	}
	c.items = append(c.items, NewItem(title, author, id))
	c.log.Debug("Item added", zap.String("item_id", id), zap.String("title", title))
	return nil
}

// RemoveItem erases the first item with the given id.
func (c *Catalog) RemoveItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.log.Debug("Item removed", zap.String("item_id", id))
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrItemNotFound, id)
}

// SearchItems returns, in catalog order, every item whose title or author
// contains keyword or whose id equals it. Matching is case-sensitive.
func (c *Catalog) SearchItems(keyword string) []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	var found []Item
	for _, it := range c.items {
		if matches(it, keyword) {
			found = append(found, *it)
		}
	}
	return found
}

func matches(it *Item, keyword string) bool {
	return strings.Contains(it.Title, keyword) ||
		strings.Contains(it.Author, keyword) ||
		it.ID == keyword
}

// WriteSearch writes one SearchLine per match to w and returns how many
// lines were written.
func (c *Catalog) WriteSearch(w io.Writer, keyword string) (int, error) {
	found := c.SearchItems(keyword)
	for i := range found {
		if _, err := fmt.Fprintln(w, SearchLine(&found[i])); err != nil {
			return i, err
		}
	}
	return len(found), nil
}

// Item returns a copy of the first item with the given id.
func (c *Catalog) Item(id string) (Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it := c.findItem(id)
	if it == nil {
		return Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	return *it, nil
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, *it)
	}
	return out
}

func (c *Catalog) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// ------------------ Actors ------------------

// AddActor appends an actor holding nothing.
func (c *Catalog) AddActor(name string, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.strict && c.findActor(id) != nil {
		c.log.Debug("Member rejected", zap.Int("member_id", id), zap.Error(ErrDuplicateID))
		return fmt.Errorf("%w: member %d", ErrDuplicateID, id)
	}
	c.actors = append(c.actors, NewActor(name, id))
	c.log.Debug("Member added", zap.Int("member_id", id), zap.String("name", name))
	return nil
}

// Actor returns a copy of the first actor with the given id.
func (c *Catalog) Actor(id int) (Actor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a := c.findActor(id)
	if a == nil {
		return Actor{}, fmt.Errorf("%w: %d", ErrActorNotFound, id)
	}
	return a.clone(), nil
}

// Actors returns a copy of every actor in catalog order.
func (c *Catalog) Actors() []Actor {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Actor, 0, len(c.actors))
	for _, a := range c.actors {
		out = append(out, a.clone())
	}
	return out
}

func (c *Catalog) ActorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.actors)
}

// ------------------ Circulation ------------------

// Checkout lends the first available item with itemID to the actor. On any
// error the catalog is left untouched.
func (c *Catalog) Checkout(actorID int, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var item *Item
	for _, it := range c.items {
		if it.ID == itemID && it.Available {
			item = it
			break
		}
	}
	if item == nil {
		err := fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
		if c.findItem(itemID) != nil {
			err = fmt.Errorf("%w: %q", ErrItemUnavailable, itemID)
		}
		c.log.Debug("Checkout refused", zap.Int("member_id", actorID), zap.String("item_id", itemID), zap.Error(err))
		return err
	}

	actor := c.findActor(actorID)
	if actor == nil {
		err := fmt.Errorf("%w: %d", ErrActorNotFound, actorID)
		c.log.Debug("Checkout refused", zap.Int("member_id", actorID), zap.String("item_id", itemID), zap.Error(err))
		return err
	}

	actor.AttachItem(itemID)
	item.Available = false
	c.log.Debug("Item checked out", zap.Int("member_id", actorID), zap.String("item_id", itemID))
	return nil
}

// Checkin returns itemID on behalf of the actor.
//
// An unknown actor leaves the catalog untouched. Otherwise each actor with
// actorID, in catalog order, has the item detached until the first item with
// itemID is found and marked available. That happens even when the actor
// never held it; ErrItemNotHeld reports that case after the fact. When no
// item has itemID, every actor sharing actorID has been detached from it.
func (c *Catalog) Checkin(actorID int, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var seen, held bool
	for _, actor := range c.actors {
		if actor.ID != actorID {
			continue
		}
		seen = true
		held = actor.DetachItem(itemID)

		item := c.findItem(itemID)
		if item == nil {
			continue
		}
		item.Available = true

		if !held {
			c.log.Debug("Item marked available but was not held",
				zap.Int("member_id", actorID), zap.String("item_id", itemID))
			return fmt.Errorf("%w: member %d, item %q", ErrItemNotHeld, actorID, itemID)
		}
		c.log.Debug("Item checked in", zap.Int("member_id", actorID), zap.String("item_id", itemID))
		return nil
	}

	if !seen {
		err := fmt.Errorf("%w: %d", ErrActorNotFound, actorID)
		c.log.Debug("Checkin refused", zap.Int("member_id", actorID), zap.String("item_id", itemID), zap.Error(err))
		return err
	}
	c.log.Debug("Checkin without item", zap.Int("member_id", actorID), zap.String("item_id", itemID), zap.Bool("held", held))
	return fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
}

// ------------------ Lookups (caller holds mu) ------------------

func (c *Catalog) findItem(id string) *Item {
	for _, it := range c.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

func (c *Catalog) findActor(id int) *Actor {
	for _, a := range c.actors {
		if a.ID == id {
			return a
		}
	}
	return nil
}
