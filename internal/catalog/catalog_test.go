package catalog

import (
	"testing"

	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_CategoryOrder(t *testing.T) {
	var ids []domain.CategoryID
	for _, cat := range Default().Categories() {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []domain.CategoryID{
		domain.CategoryScientists,
		domain.CategoryEngineers,
		domain.CategoryOperations,
		domain.CategoryAstronauts,
		domain.CategorySpecialized,
	}, ids)
	assert.Len(t, Default().Careers(), 21)
}

func TestFindCareer_EveryListedIDResolves(t *testing.T) {
	c := Default()
	for _, want := range c.Careers() {
		got, ok := c.FindCareer(want.ID)
		require.True(t, ok, "career %q should resolve", want.ID)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want, got)
	}
}

func TestFindCareer_UnknownIDIsAbsent(t *testing.T) {
	c := Default()
	for _, id := range []domain.CareerID{"", "astronaut", "ASTROPHYSICIST", "space lawyer"} {
		got, ok := c.FindCareer(id)
		assert.False(t, ok, "id %q", id)
		assert.Zero(t, got)
	}
}

func TestLookup_WrapsUnknownCareer(t *testing.T) {
	_, err := Default().Lookup("warp_engineer")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCareer)
	assert.Contains(t, err.Error(), "warp_engineer")

	career, err := Default().Lookup(domain.CareerSpaceLawyer)
	require.NoError(t, err)
	assert.Equal(t, "Space Lawyer", career.Title)
}

func TestParseCareerID(t *testing.T) {
	c := Default()

	id, ok := c.ParseCareerID("  cosmologist ")
	require.True(t, ok)
	assert.Equal(t, domain.CareerCosmologist, id)

	_, ok = c.ParseCareerID("cosmo")
	assert.False(t, ok)
}

func TestCategoryOf(t *testing.T) {
	cat, ok := Default().CategoryOf(domain.CareerSpacecraftCapcom)
	require.True(t, ok)
	assert.Equal(t, "Mission Operations", cat.Title)

	_, ok = Default().CategoryOf("nobody")
	assert.False(t, ok)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	c := Default()
	cats := c.Categories()
	cats[0].Careers[0].Title = "Changed"
	cats[0].Title = "Changed"

	career, ok := c.FindCareer(domain.CareerAstrophysicist)
	require.True(t, ok)
	assert.Equal(t, "Astrophysicist", career.Title)
	assert.Equal(t, "Scientists", c.Categories()[0].Title)
}

func TestFilter(t *testing.T) {
	c := Default()

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Equal(t, c.Categories(), c.Filter("  "))
	})

	t.Run("matches title case-insensitively and keeps grouping", func(t *testing.T) {
		got := c.Filter("ENGINEER")
		require.Len(t, got, 2)
		assert.Equal(t, domain.CategoryEngineers, got[0].ID)
		assert.Len(t, got[0].Careers, 5)
		assert.Equal(t, domain.CategorySpecialized, got[1].ID)
		require.Len(t, got[1].Careers, 1)
		assert.Equal(t, domain.CareerAIEngineer, got[1].Careers[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		got := c.Filter("treaties")
		require.Len(t, got, 1)
		assert.Equal(t, domain.CareerSpaceLawyer, got[0].Careers[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Filter("zzz"))
	})
}

func TestValidate_RejectsDuplicateCareerAcrossCategories(t *testing.T) {
	c := &Catalog{categories: []domain.Category{
		{ID: "a", Title: "A", Careers: []domain.Career{{ID: "x", Title: "X", Description: "x"}}},
		{ID: "b", Title: "B", Careers: []domain.Career{{ID: "x", Title: "X again", Description: "x"}}},
	}}
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestValidate_RejectsEmptyFields(t *testing.T) {
	c := &Catalog{categories: []domain.Category{
		{ID: "a", Title: "A", Careers: []domain.Career{{ID: "x", Title: "X"}}},
	}}
	assert.ErrorIs(t, c.Validate(), ErrEmptyField)

	c = &Catalog{categories: []domain.Category{{ID: "", Title: "A"}}}
	assert.ErrorIs(t, c.Validate(), ErrEmptyField)
}
