package library

import (
	"fmt"
	"io"
)

// SelfCheck runs one add, borrow, return, remove cycle against c, which must
// be empty, and reports the first post-condition that does not hold. On
// success it writes a single confirmation line to w.
func SelfCheck(c *Catalog, w io.Writer) error {
	const (
		title    = "Test Book"
		author   = "Test Author"
		itemID   = "11111"
		name     = "Test User"
		memberID = 101
	)

	if n := c.ItemCount(); n != 0 {
		return fmt.Errorf("self-check needs an empty catalog, found %d item(s)", n)
	}

	if err := c.AddItem(title, author, itemID); err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	if n := c.ItemCount(); n != 1 {
		return fmt.Errorf("after add item: want 1 item, got %d", n)
	}

	if err := c.AddActor(name, memberID); err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	if n := c.ActorCount(); n != 1 {
		return fmt.Errorf("after add member: want 1 member, got %d", n)
	}

	if err := c.Checkout(memberID, itemID); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	if err := expectAvailable(c, itemID, false); err != nil {
		return fmt.Errorf("after checkout: %w", err)
	}

	if err := c.Checkin(memberID, itemID); err != nil {
		return fmt.Errorf("checkin: %w", err)
	}
	if err := expectAvailable(c, itemID, true); err != nil {
		return fmt.Errorf("after checkin: %w", err)
	}

	if err := c.RemoveItem(itemID); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	if n := c.ItemCount(); n != 0 {
		return fmt.Errorf("after remove item: want 0 items, got %d", n)
	}

	_, err := fmt.Fprintln(w, "All tests passed successfully!")
	return err
}

func expectAvailable(c *Catalog, itemID string, want bool) error {
	it, err := c.Item(itemID)
	if err != nil {
		return err
	}
	if it.Available != want {
		return fmt.Errorf("item %q available=%t, want %t", itemID, it.Available, want)
	}
	return nil
}
