package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

func testDirectory() ScreenMap {
	return ScreenMap{
		1: {ID: 1, Type: model.ScreenTypeMenuBoard, LocationID: 10},
		2: {ID: 2, Type: model.ScreenTypeMenuBoard, LocationID: 10},
		3: {ID: 3, Type: model.ScreenTypeEmployeeBoard, LocationID: 20},
	}
}

func TestScopesOverlap(t *testing.T) {
	dir := testDirectory()

	tests := []struct {
		name string
		a, b model.Scope
		want bool
	}{
		{
			"global overlaps everything",
			model.WildcardScope{},
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard}},
			true,
		},
		{
			"two globals overlap",
			model.WildcardScope{},
			model.WildcardScope{},
			true,
		},
		{
			"disjoint screen types do not overlap",
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard}},
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeEmployeeBoard}},
			false,
		},
		{
			"same type different locations do not overlap",
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard}, LocationIDs: []int{10}},
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard}, LocationIDs: []int{20}},
			false,
		},
		{
			"location-only scope overlaps any type there",
			model.AudienceScope{LocationIDs: []int{10}},
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypePromoBoard}, LocationIDs: []int{10, 30}},
			true,
		},
		{
			"missing location constraint counts as all locations",
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard}},
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard}, LocationIDs: []int{20}},
			true,
		},
		{
			"same specific screen overlaps",
			model.ScreenScope{ScreenID: 1},
			model.ScreenScope{ScreenID: 1},
			true,
		},
		{
			"different specific screens never overlap even with shared type",
			model.ScreenScope{ScreenID: 1},
			model.ScreenScope{ScreenID: 2},
			false,
		},
		{
			"specific screen resolves against audience",
			model.ScreenScope{ScreenID: 1},
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard}, LocationIDs: []int{10}},
			true,
		},
		{
			"specific screen in wrong location misses audience",
			model.ScreenScope{ScreenID: 3},
			model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeEmployeeBoard}, LocationIDs: []int{10}},
			false,
		},
		{
			"specific screen overlaps global",
			model.ScreenScope{ScreenID: 2},
			model.WildcardScope{},
			true,
		},
		{
			"unknown screen resolves to nothing",
			model.ScreenScope{ScreenID: 99},
			model.WildcardScope{},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScopesOverlap(tc.a, tc.b, dir))
			assert.Equal(t, tc.want, ScopesOverlap(tc.b, tc.a, dir))
		})
	}
}

func TestScheduleScopeDerivation(t *testing.T) {
	screenID := 7

	s := model.Schedule{ScreenID: &screenID}
	assert.Equal(t, model.ScreenScope{ScreenID: 7}, s.Scope())

	s = model.Schedule{TargetScreenTypes: model.ScreenTypeList{model.ScreenTypeMenuBoard}}
	assert.IsType(t, model.AudienceScope{}, s.Scope())

	s = model.Schedule{TargetLocations: model.IntList{10}}
	assert.IsType(t, model.AudienceScope{}, s.Scope())

	s = model.Schedule{}
	assert.Equal(t, model.WildcardScope{}, s.Scope())
}

func TestScopeMatchesScreen(t *testing.T) {
	screen := ScreenInfo{ID: 1, Type: model.ScreenTypeMenuBoard, LocationID: 10}

	assert.True(t, ScopeMatchesScreen(model.WildcardScope{}, screen))
	assert.True(t, ScopeMatchesScreen(model.ScreenScope{ScreenID: 1}, screen))
	assert.False(t, ScopeMatchesScreen(model.ScreenScope{ScreenID: 2}, screen))
	assert.True(t, ScopeMatchesScreen(model.AudienceScope{LocationIDs: []int{10}}, screen))
	assert.True(t, ScopeMatchesScreen(model.AudienceScope{ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard}}, screen))
	assert.False(t, ScopeMatchesScreen(model.AudienceScope{
		ScreenTypes: []model.ScreenType{model.ScreenTypeMenuBoard},
		LocationIDs: []int{20},
	}, screen))
}
