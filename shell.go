package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"library-catalog/library"

	"golang.org/x/term"
)

// shell is the line-oriented session behind the shell command. Prompts are
// only printed when input comes from a terminal so that piped scripts produce
// clean output.
type shell struct {
	sc          *bufio.Scanner
	out         io.Writer
	cat         *library.Catalog
	interactive bool
}

func newShell(in io.Reader, out io.Writer, cat *library.Catalog) *shell {
	return &shell{
		sc:          bufio.NewScanner(in),
		out:         out,
		cat:         cat,
		interactive: isTerminal(in),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s *shell) run() error {
	if s.interactive {
		fmt.Fprintln(s.out, "Welcome to the Library Catalog!")
		fmt.Fprintln(s.out, "Available commands:")
		fmt.Fprintln(s.out, "  Books: add book, remove book, list books, search book")
		fmt.Fprintln(s.out, "  Members: add member, list members")
		fmt.Fprintln(s.out, "  Circulation: checkout, return")
		fmt.Fprintln(s.out, "  System: exit")
	}

	for {
		s.prompt("\n> ")
		if !s.sc.Scan() {
			break
		}
		cmd := strings.TrimSpace(s.sc.Text())

		switch cmd {
		case "":
		case "add book":
			s.handleAddBook()
		case "remove book":
			s.handleRemoveBook()
		case "list books":
			s.handleListBooks()
		case "search book":
			s.handleSearchBooks()
		case "add member":
			s.handleAddMember()
		case "list members":
			s.handleListMembers()
		case "checkout":
			s.handleCheckout()
		case "return":
			s.handleReturn()
		case "exit":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Unknown command. Type one of the available commands listed above.")
		}
	}
	return s.sc.Err()
}

func (s *shell) prompt(p string) {
	if s.interactive {
		fmt.Fprint(s.out, p)
	}
}

// field prompts for and reads one trimmed line; ok is false at end of input.
func (s *shell) field(label string) (string, bool) {
	s.prompt(label + ": ")
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

func (s *shell) memberID() (int, bool) {
	raw, ok := s.field("Member ID")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid member ID: %s\n", raw)
		return 0, false
	}
	return id, true
}

func (s *shell) handleAddBook() {
	title, ok := s.field("Title")
	if !ok {
		return
	}
	author, ok := s.field("Author")
	if !ok {
		return
	}
	id, ok := s.field("Book ID")
	if !ok {
		return
	}

	if err := s.cat.AddItem(title, author, id); err != nil {
		fmt.Fprintf(s.out, "Error adding book: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added book '%s' with ID %s\n", title, id)
}

func (s *shell) handleRemoveBook() {
	id, ok := s.field("Book ID")
	if !ok {
		return
	}
	if err := s.cat.RemoveItem(id); err != nil {
		fmt.Fprintf(s.out, "Error removing book: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Removed book %s\n", id)
}

func (s *shell) handleListBooks() {
	items := s.cat.Items()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No books in library.")
		return
	}

	fmt.Fprintln(s.out, library.ItemHeader())
	fmt.Fprintln(s.out, strings.Repeat("-", 80))
	for i := range items {
		fmt.Fprintln(s.out, library.PrettyItem(&items[i]))
	}
}

func (s *shell) handleSearchBooks() {
	query, ok := s.field("Query")
	if !ok {
		return
	}
	n, err := s.cat.WriteSearch(s.out, query)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if n == 0 {
		fmt.Fprintf(s.out, "No books found matching '%s'.\n", query)
	}
}

func (s *shell) handleAddMember() {
	name, ok := s.field("Name")
	if !ok {
		return
	}
	id, ok := s.memberID()
	if !ok {
		return
	}

	if err := s.cat.AddActor(name, id); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added member '%s' with ID %d\n", name, id)
}

func (s *shell) handleListMembers() {
	actors := s.cat.Actors()
	if len(actors) == 0 {
		fmt.Fprintln(s.out, "No members registered.")
		return
	}

	fmt.Fprintf(s.out, "%-5s %-30s %s\n", "ID", "Name", "Borrowed")
	fmt.Fprintln(s.out, strings.Repeat("-", 55))
	for i := range actors {
		fmt.Fprintln(s.out, library.PrettyActor(&actors[i]))
	}
}

func (s *shell) handleCheckout() {
	bookID, ok := s.field("Book ID")
	if !ok {
		return
	}
	memberID, ok := s.memberID()
	if !ok {
		return
	}

	if err := s.cat.Checkout(memberID, bookID); err != nil {
		fmt.Fprintf(s.out, "Error checking out book: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Book %s checked out to member %d\n", bookID, memberID)
}

func (s *shell) handleReturn() {
	bookID, ok := s.field("Book ID")
	if !ok {
		return
	}
	memberID, ok := s.memberID()
	if !ok {
		return
	}

	err := s.cat.Checkin(memberID, bookID)
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "Book %s returned by member %d\n", bookID, memberID)
	case errors.Is(err, library.ErrItemNotHeld):
		// The book is available again regardless.
		fmt.Fprintf(s.out, "Warning: %v. Book %s is now available\n", err, bookID)
	default:
		fmt.Fprintf(s.out, "Error returning book: %v\n", err)
	}
}
