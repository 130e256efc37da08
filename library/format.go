package library

import (
	"fmt"
	"strings"
)

// SearchLine renders a search hit the way search output prints it.
func SearchLine(it *Item) string {
	return fmt.Sprintf("Title: %s, Author: %s, bookId: %s", it.Title, it.Author, it.ID)
}

const itemRow = "%-12s %-30s %-25s %s"

// ItemHeader is the column header matching PrettyItem rows.
func ItemHeader() string {
	return fmt.Sprintf(itemRow, "ID", "Title", "Author", "Available")
}

// PrettyItem formats an item for lists.
func PrettyItem(it *Item) string {
	return fmt.Sprintf(itemRow, TruncateString(it.ID, 12), TruncateString(it.Title, 30), TruncateString(it.Author, 25), yesNo(it.Available))
}

// PrettyActor formats an actor for lists.
func PrettyActor(a *Actor) string {
	held := "None"
	if len(a.HeldItems) > 0 {
		held = strings.Join(a.HeldItems, ", ")
	}
	return fmt.Sprintf("%-5d %-30s %s", a.ID, TruncateString(a.Name, 30), held)
}

// TruncateString shortens s to maxLen bytes, marking the cut with "...".
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
