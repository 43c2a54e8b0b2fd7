package scheduling

import (
	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

// ScreenInfo is the subset of a screen the matcher needs: its type and where
// it hangs in the hierarchy.
type ScreenInfo struct {
	ID         int
	Type       model.ScreenType
	LocationID int
}

// ScreenDirectory resolves screen IDs referenced by specific-screen scopes.
// Callers back it with the same snapshot the schedules were loaded from so a
// whole resolution pass sees one consistent view.
type ScreenDirectory interface {
	Screen(id int) (ScreenInfo, bool)
}

// ScreenMap is a ScreenDirectory over an in-memory snapshot.
type ScreenMap map[int]ScreenInfo

func (m ScreenMap) Screen(id int) (ScreenInfo, bool) {
	s, ok := m[id]
	return s, ok
}

// audience is a scope resolved to its effective target sets. Empty Types
// means all screen types, empty Locations means all locations; wildcard
// matches everything.
type audience struct {
	wildcard  bool
	types     []model.ScreenType
	locations []int
}

// ScopesOverlap reports whether two schedule scopes can address at least one
// common screen. When both scopes name a concrete screen the test degrades
// to exact ID equality: two different specific screens never overlap, even
// if they share a type. A specific-screen scope whose screen is missing from
// the directory resolves to nothing and overlaps nothing.
func ScopesOverlap(a, b model.Scope, dir ScreenDirectory) bool {
	if sa, ok := a.(model.ScreenScope); ok {
		if sb, ok := b.(model.ScreenScope); ok {
			return sa.ScreenID == sb.ScreenID
		}
	}

	ea, ok := resolveAudience(a, dir)
	if !ok {
		return false
	}
	eb, ok := resolveAudience(b, dir)
	if !ok {
		return false
	}

	if ea.wildcard || eb.wildcard {
		return true
	}

	typesOverlap := len(ea.types) == 0 || len(eb.types) == 0 || screenTypesIntersect(ea.types, eb.types)
	locationsOverlap := len(ea.locations) == 0 || len(eb.locations) == 0 || intsIntersect(ea.locations, eb.locations)
	return typesOverlap && locationsOverlap
}

// ScopeMatchesScreen reports whether a scope addresses one concrete screen.
func ScopeMatchesScreen(s model.Scope, screen ScreenInfo) bool {
	switch v := s.(type) {
	case model.ScreenScope:
		return v.ScreenID == screen.ID
	case model.WildcardScope:
		return true
	case model.AudienceScope:
		if len(v.ScreenTypes) > 0 && !screenTypesIntersect(v.ScreenTypes, []model.ScreenType{screen.Type}) {
			return false
		}
		if len(v.LocationIDs) > 0 && !intsIntersect(v.LocationIDs, []int{screen.LocationID}) {
			return false
		}
		return true
	default:
		return false
	}
}

func resolveAudience(s model.Scope, dir ScreenDirectory) (audience, bool) {
	switch v := s.(type) {
	case model.WildcardScope:
		return audience{wildcard: true}, true
	case model.AudienceScope:
		return audience{types: v.ScreenTypes, locations: v.LocationIDs}, true
	case model.ScreenScope:
		info, ok := dir.Screen(v.ScreenID)
		if !ok {
			return audience{}, false
		}
		return audience{
			types:     []model.ScreenType{info.Type},
			locations: []int{info.LocationID},
		}, true
	default:
		return audience{}, false
	}
}

func screenTypesIntersect(a, b []model.ScreenType) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func intsIntersect(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
