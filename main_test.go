package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"library-catalog/library"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, cat *library.Catalog, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, newShell(in, &out, cat).run())
	return out.String()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{}, args...)) // nil would fall back to os.Args
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestShellCirculation(t *testing.T) {
	cat := library.NewCatalog()
	out := runShell(t, cat,
		"add book", "Dune", "Frank Herbert", "d-1",
		"add member", "Alice", "7",
		"checkout", "d-1", "7",
		"checkout", "d-1", "7",
		"return", "d-1", "7",
		"remove book", "d-1",
		"remove book", "d-1",
		"exit",
	)

	assert.Contains(t, out, "Added book 'Dune' with ID d-1")
	assert.Contains(t, out, "Added member 'Alice' with ID 7")
	assert.Contains(t, out, "Book d-1 checked out to member 7")
	assert.Contains(t, out, "Error checking out book: item already checked out")
	assert.Contains(t, out, "Book d-1 returned by member 7")
	assert.Contains(t, out, "Removed book d-1")
	assert.Contains(t, out, "Error removing book: item not found")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
	assert.Zero(t, cat.ItemCount())
}

func TestShellSearch(t *testing.T) {
	cat := library.NewCatalog()
	require.NoError(t, cat.AddItem("Animal Farm", "George Orwell", "af"))
	require.NoError(t, cat.AddItem("Emma", "Jane Austen", "e-1"))

	out := runShell(t, cat, "search book", "Orwell", "search book", "Tolstoy")
	assert.Equal(t,
		"Title: Animal Farm, Author: George Orwell, bookId: af\nNo books found matching 'Tolstoy'.\n",
		out)
}

func TestShellReturnNotHeld(t *testing.T) {
	cat := library.NewCatalog()
	require.NoError(t, cat.AddItem("Dune", "Frank Herbert", "d-1"))
	require.NoError(t, cat.AddActor("Alice", 7))
	require.NoError(t, cat.AddActor("Bob", 8))
	require.NoError(t, cat.Checkout(7, "d-1"))

	out := runShell(t, cat, "return", "d-1", "8")
	assert.Contains(t, out, "Warning: item not held by member")

	it, err := cat.Item("d-1")
	require.NoError(t, err)
	assert.True(t, it.Available)
}

func TestShellLists(t *testing.T) {
	cat := library.NewCatalog()
	out := runShell(t, cat, "list books", "list members")
	assert.Equal(t, "No books in library.\nNo members registered.\n", out)

	require.NoError(t, cat.AddItem("Dune", "Frank Herbert", "d-1"))
	require.NoError(t, cat.AddActor("Alice", 7))
	require.NoError(t, cat.Checkout(7, "d-1"))

	out = runShell(t, cat, "list books", "list members")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "d-1")
}

func TestShellBadInput(t *testing.T) {
	cat := library.NewCatalog()
	out := runShell(t, cat, "add member", "Alice", "seven", "dance")
	assert.Contains(t, out, "Invalid member ID: seven")
	assert.Contains(t, out, "Unknown command.")
	assert.Zero(t, cat.ActorCount())
}

func TestRootRunsSelfCheck(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "All tests passed successfully!\n", out)
}

func TestRootStrictFromEnv(t *testing.T) {
	t.Setenv("CATALOG_STRICT_IDS", "true")
	t.Setenv("CATALOG_LOG_LEVEL", "error")

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "All tests passed successfully!")
}

func TestRootBadEnv(t *testing.T) {
	t.Setenv("CATALOG_STRICT_IDS", "maybe")

	_, err := execute(t)
	assert.ErrorContains(t, err, "loading configuration")
}

func TestSearchCommand(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "items:\n  - title: Animal Farm\n    author: George Orwell\n    id: af\n  - title: Emma\n    author: Jane Austen\n    id: e-1\n"
	if err := os.WriteFile(seed, []byte(doc), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	out, err := execute(t, "search", "--seed", seed, "Austen")
	require.NoError(t, err)
	assert.Equal(t, "Title: Emma, Author: Jane Austen, bookId: e-1\n", out)

	_, err = execute(t, "search", "--seed", filepath.Join(t.TempDir(), "none.yaml"), "x")
	assert.ErrorContains(t, err, "load seed")
}

func TestShellCommandWithSeed(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "items:\n  - title: Dune\n    author: Frank Herbert\n    id: d-1\nactors:\n  - name: Alice\n    id: 7\n"
	if err := os.WriteFile(seed, []byte(doc), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{"shell", "--seed", seed})
	cmd.SetIn(strings.NewReader("checkout\nd-1\n7\nexit\n"))
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Book d-1 checked out to member 7")
}
