package roadmap

import (
	"testing"

	"github.com/alexanderramin/astroverse/internal/catalog"
	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantTitles = []string{
	"High School",
	"Undergraduate Degree",
	"Graduate Degree",
	"Doctorate (PhD)",
	"Post-Doctoral",
	"Career Path",
}

func assertShape(t *testing.T, stages []domain.RoadmapStage) {
	t.Helper()
	require.Len(t, stages, 6)
	for i, s := range stages {
		assert.Equal(t, domain.Stage(i+1), s.Ordinal)
		assert.Equal(t, wantTitles[i], s.Title)
		assert.NotEmpty(t, s.Content, "stage %d", i+1)
	}
}

func TestGenerate_ShapeForEveryCatalogCareer(t *testing.T) {
	for _, career := range catalog.Default().Careers() {
		t.Run(string(career.ID), func(t *testing.T) {
			assertShape(t, Generate(career.ID))
		})
	}
}

func TestGenerate_ShapeForUnknownIDs(t *testing.T) {
	for _, id := range []domain.CareerID{"", "warp_engineer", "Astrophysicist"} {
		stages := Generate(id)
		assertShape(t, stages)
		for _, s := range stages {
			assert.Equal(t, Default().Text(s.Ordinal), s.Content)
		}
	}
}

func TestGenerate_OverrideContent(t *testing.T) {
	for _, id := range []domain.CareerID{
		domain.CareerAstrophysicist,
		domain.CareerCosmologist,
		domain.CareerAstrobiologist,
	} {
		t.Run(string(id), func(t *testing.T) {
			require.True(t, HasOverride(id))
			specific := ContentFor(id)
			for _, s := range Generate(id) {
				assert.Equal(t, specific.Text(s.Ordinal), s.Content)
				assert.NotEqual(t, Default().Text(s.Ordinal), s.Content)
			}
		})
	}
}

func TestGenerate_DefaultContent(t *testing.T) {
	for _, id := range []domain.CareerID{domain.CareerMechanicalEngineer, domain.CareerSpaceLawyer} {
		t.Run(string(id), func(t *testing.T) {
			assert.False(t, HasOverride(id))
			want := []domain.RoadmapStage{
				{Ordinal: 1, Title: "High School", Content: Default().HighSchool},
				{Ordinal: 2, Title: "Undergraduate Degree", Content: Default().Undergraduate},
				{Ordinal: 3, Title: "Graduate Degree", Content: Default().Graduate},
				{Ordinal: 4, Title: "Doctorate (PhD)", Content: Default().Doctorate},
				{Ordinal: 5, Title: "Post-Doctoral", Content: Default().Postdoctoral},
				{Ordinal: 6, Title: "Career Path", Content: Default().Career},
			}
			if diff := cmp.Diff(want, Generate(id)); diff != "" {
				t.Errorf("Generate(%q) mismatch (-want +got):\n%s", id, diff)
			}
		})
	}
}

func TestGenerate_OnlyThreeOverrides(t *testing.T) {
	var overridden []domain.CareerID
	for _, career := range catalog.Default().Careers() {
		if HasOverride(career.ID) {
			overridden = append(overridden, career.ID)
		}
	}
	assert.ElementsMatch(t, []domain.CareerID{
		domain.CareerAstrophysicist,
		domain.CareerCosmologist,
		domain.CareerAstrobiologist,
	}, overridden)
}

func TestGenerate_ReturnsFreshSlice(t *testing.T) {
	first := Generate(domain.CareerCosmologist)
	first[0].Content = "mutated"
	assert.NotEqual(t, "mutated", Generate(domain.CareerCosmologist)[0].Content)
}

func TestStageFor(t *testing.T) {
	stage, ok := StageFor(domain.CareerCosmologist, domain.StageGraduate)
	require.True(t, ok)
	assert.Equal(t, "Graduate Degree", stage.Title)
	assert.Contains(t, stage.Content, "cosmic microwave background")

	for _, bad := range []domain.Stage{0, 7, -3} {
		_, ok := StageFor(domain.CareerCosmologist, bad)
		assert.False(t, ok, "ordinal %d", bad)
	}
}

func TestLookupStage(t *testing.T) {
	_, err := LookupStage(domain.CareerSpaceLawyer, 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStage)

	stage, err := LookupStage(domain.CareerSpaceLawyer, domain.StageCareer)
	require.NoError(t, err)
	assert.Equal(t, Default().Career, stage.Content)
}
