// Package catalog holds the static set of career categories and careers and
// the lookups the UI performs against it.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/astroverse/internal/domain"
)

var (
	// ErrUnknownCareer is returned by callers that must turn an absent
	// lookup into an error, such as the non-interactive commands.
	ErrUnknownCareer = errors.New("unknown career")

	ErrDuplicateID = errors.New("duplicate id")
	ErrEmptyField  = errors.New("empty catalog field")
)

// Catalog is an immutable, ordered set of categories.
type Catalog struct {
	categories []domain.Category
}

var defaultCatalog = &Catalog{categories: spaceCareers}

// Default returns the built-in space career catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Validate checks that career ids are unique across all categories and that
// no id, title or description is empty.
func (c *Catalog) Validate() error {
	seenCategories := make(map[domain.CategoryID]bool, len(c.categories))
	seenCareers := make(map[domain.CareerID]domain.CategoryID)
	for _, cat := range c.categories {
		if cat.ID == "" || cat.Title == "" {
			return fmt.Errorf("category %q: %w", cat.ID, ErrEmptyField)
		}
		if seenCategories[cat.ID] {
			return fmt.Errorf("category %q declared twice: %w", cat.ID, ErrDuplicateID)
		}
		seenCategories[cat.ID] = true

		for _, career := range cat.Careers {
			if career.ID == "" || career.Title == "" || career.Description == "" {
				return fmt.Errorf("career %q in %q: %w", career.ID, cat.ID, ErrEmptyField)
			}
			if prev, ok := seenCareers[career.ID]; ok {
				return fmt.Errorf("career %q in %q and %q: %w", career.ID, prev, cat.ID, ErrDuplicateID)
			}
			seenCareers[career.ID] = cat.ID
		}
	}
	return nil
}

// FindCareer returns the career with the given id. The second result is
// false when no category lists it; callers should then render nothing.
func (c *Catalog) FindCareer(id domain.CareerID) (domain.Career, bool) {
	for _, cat := range c.categories {
		for _, career := range cat.Careers {
			if career.ID == id {
				return career, true
			}
		}
	}
	return domain.Career{}, false
}

// Lookup is FindCareer for callers that want an error on absence.
func (c *Catalog) Lookup(id domain.CareerID) (domain.Career, error) {
	career, ok := c.FindCareer(id)
	if !ok {
		return domain.Career{}, fmt.Errorf("%q: %w", id, ErrUnknownCareer)
	}
	return career, nil
}

// ParseCareerID validates a raw string against the catalog.
func (c *Catalog) ParseCareerID(raw string) (domain.CareerID, bool) {
	id := domain.CareerID(strings.TrimSpace(raw))
	if _, ok := c.FindCareer(id); !ok {
		return "", false
	}
	return id, true
}

// CategoryOf returns the category that lists the given career.
func (c *Catalog) CategoryOf(id domain.CareerID) (domain.Category, bool) {
	for _, cat := range c.categories {
		for _, career := range cat.Careers {
			if career.ID == id {
				return cloneCategory(cat), true
			}
		}
	}
	return domain.Category{}, false
}

// Categories returns a copy of the categories in listing order.
func (c *Catalog) Categories() []domain.Category {
	return cloneCategories(c.categories)
}

// Careers returns every career, flattened in listing order.
func (c *Catalog) Careers() []domain.Career {
	var out []domain.Career
	for _, cat := range c.categories {
		out = append(out, cat.Careers...)
	}
	return out
}

// Filter returns the categories whose careers match query, keeping only the
// matching careers. Matching is a case-insensitive substring test against the
// career title, id and description. Empty categories are dropped; an empty
// query returns everything.
func (c *Catalog) Filter(query string) []domain.Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Categories()
	}
	var out []domain.Category
	for _, cat := range c.categories {
		var matched []domain.Career
		for _, career := range cat.Careers {
			if matches(career, q) {
				matched = append(matched, career)
			}
		}
		if len(matched) > 0 {
			out = append(out, domain.Category{ID: cat.ID, Title: cat.Title, Careers: matched})
		}
	}
	return out
}

func matches(career domain.Career, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(career.Title), lowerQuery) ||
		strings.Contains(string(career.ID), lowerQuery) ||
		strings.Contains(strings.ToLower(career.Description), lowerQuery)
}

func cloneCategories(in []domain.Category) []domain.Category {
	out := make([]domain.Category, len(in))
	for i, cat := range in {
		out[i] = cloneCategory(cat)
	}
	return out
}

func cloneCategory(cat domain.Category) domain.Category {
	careers := make([]domain.Career, len(cat.Careers))
	copy(careers, cat.Careers)
	return domain.Category{ID: cat.ID, Title: cat.Title, Careers: careers}
}
