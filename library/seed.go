package library

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Seed describes a starting catalog: items, members and the loans that are
// outstanding between them.
type Seed struct {
	Items  []SeedItem  `yaml:"items"`
	Actors []SeedActor `yaml:"actors"`
	Loans  []SeedLoan  `yaml:"loans"`
}

type SeedItem struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	ID     string `yaml:"id"` // generated when empty
}

type SeedActor struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

type SeedLoan struct {
	Actor int    `yaml:"actor"`
	Item  string `yaml:"item"`
}

// SeedSummary counts what LoadSeed put into the catalog.
type SeedSummary struct {
	Items  int
	Actors int
	Loans  int
}

// LoadSeed decodes a YAML seed from r and applies it to c: items first, then
// members, then loans through Checkout. It stops at the first failure; what
// was applied before it stays in the catalog.
func LoadSeed(c *Catalog, r io.Reader) (SeedSummary, error) {
	var (
		seed Seed
		sum  SeedSummary
	)
	dec := yaml.NewDecoder(bufio.NewReader(r))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return sum, fmt.Errorf("decode seed: %w", err)
	}

	for i, it := range seed.Items {
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		if err := c.AddItem(it.Title, it.Author, id); err != nil {
			return sum, fmt.Errorf("seed item %d: %w", i, err)
		}
		sum.Items++
	}
	for i, a := range seed.Actors {
		if err := c.AddActor(a.Name, a.ID); err != nil {
			return sum, fmt.Errorf("seed member %d: %w", i, err)
		}
		sum.Actors++
	}
	for i, l := range seed.Loans {
		if err := c.Checkout(l.Actor, l.Item); err != nil {
			return sum, fmt.Errorf("seed loan %d: %w", i, err)
		}
		sum.Loans++
	}
	return sum, nil
}

// LoadSeedFile reads the seed at path (relative paths resolve from cwd).
func LoadSeedFile(c *Catalog, path string) (SeedSummary, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return SeedSummary{}, err
	}
	defer f.Close()
	return LoadSeed(c, f)
}
