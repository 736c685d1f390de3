package cli

import (
	"github.com/alexanderramin/astroverse/internal/catalog"
	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/charmbracelet/huh"
)

// careerSelect builds a grouped select over every career. Option labels carry
// the category so the flat list still reads by section.
func careerSelect(c *catalog.Catalog, value *domain.CareerID) *huh.Select[domain.CareerID] {
	var opts []huh.Option[domain.CareerID]
	for _, cat := range c.Categories() {
		for _, career := range cat.Careers {
			opts = append(opts, huh.NewOption(cat.Title+" · "+career.Title, career.ID))
		}
	}
	return huh.NewSelect[domain.CareerID]().
		Title("Pick a career").
		Options(opts...).
		Height(12).
		Value(value)
}

// pickCareer runs the career select as a standalone form.
func pickCareer(c *catalog.Catalog) (domain.CareerID, error) {
	var id domain.CareerID
	form := huh.NewForm(huh.NewGroup(careerSelect(c, &id)))
	if err := form.Run(); err != nil {
		return "", err
	}
	return id, nil
}
