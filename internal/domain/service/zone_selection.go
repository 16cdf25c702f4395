package service

import (
	"fmt"

	"github.com/kroue/AlertX/internal/domain/model"
)

// ZoneSelection two-level zone → path selection.
//
// A selected zone implies all of its paths without copying them into the explicit
// path set. Deselecting a zone purges every path of that zone from the explicit set,
// including paths that were picked before the zone was selected.
type ZoneSelection struct {
	zones         []model.Zone
	zoneIndex     map[string]int
	pathZone      map[string]string
	selectedZones map[string]struct{}
	selectedPaths map[string]struct{}
}

// NewZoneSelection builds a selection over immutable reference zones.
// Zone ids and path names must be unique.
func NewZoneSelection(zones []model.Zone) (*ZoneSelection, error) {
	s := &ZoneSelection{
		zones:         make([]model.Zone, len(zones)),
		zoneIndex:     make(map[string]int, len(zones)),
		pathZone:      make(map[string]string),
		selectedZones: make(map[string]struct{}),
		selectedPaths: make(map[string]struct{}),
	}

	for i, z := range zones {
		if z.ID == "" {
			return nil, fmt.Errorf("zone at index %d has no id", i)
		}
		if _, dup := s.zoneIndex[z.ID]; dup {
			return nil, fmt.Errorf("duplicate zone id: %s", z.ID)
		}
		paths := make([]string, len(z.Paths))
		copy(paths, z.Paths)
		for _, p := range paths {
			if owner, dup := s.pathZone[p]; dup {
				return nil, fmt.Errorf("path %q belongs to both %s and %s", p, owner, z.ID)
			}
			s.pathZone[p] = z.ID
		}
		z.Paths = paths
		s.zones[i] = z
		s.zoneIndex[z.ID] = i
	}

	return s, nil
}

// Zones reference data in display order
func (s *ZoneSelection) Zones() []model.Zone {
	out := make([]model.Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

// ToggleZone flips a zone. Returns false for unknown ids.
func (s *ZoneSelection) ToggleZone(zoneID string) bool {
	idx, ok := s.zoneIndex[zoneID]
	if !ok {
		return false
	}

	if _, selected := s.selectedZones[zoneID]; selected {
		delete(s.selectedZones, zoneID)
		for _, p := range s.zones[idx].Paths {
			delete(s.selectedPaths, p)
		}
		return true
	}

	s.selectedZones[zoneID] = struct{}{}
	return true
}

// TogglePath flips an explicit path pick. Ignored while the parent zone is selected
// and for unknown paths.
func (s *ZoneSelection) TogglePath(path string) bool {
	zoneID, ok := s.pathZone[path]
	if !ok {
		return false
	}
	if _, zoneSelected := s.selectedZones[zoneID]; zoneSelected {
		return false
	}

	if _, selected := s.selectedPaths[path]; selected {
		delete(s.selectedPaths, path)
	} else {
		s.selectedPaths[path] = struct{}{}
	}
	return true
}

// ClearSelections empties both sets
func (s *ZoneSelection) ClearSelections() {
	s.selectedZones = make(map[string]struct{})
	s.selectedPaths = make(map[string]struct{})
}

func (s *ZoneSelection) IsZoneSelected(zoneID string) bool {
	_, ok := s.selectedZones[zoneID]
	return ok
}

// IsPathSelected reports effective membership: explicit pick or selected parent zone
func (s *ZoneSelection) IsPathSelected(path string) bool {
	if _, ok := s.selectedPaths[path]; ok {
		return true
	}
	zoneID, ok := s.pathZone[path]
	return ok && s.IsZoneSelected(zoneID)
}

// SelectedZones selected zone ids in reference order
func (s *ZoneSelection) SelectedZones() []string {
	out := []string{}
	for _, z := range s.zones {
		if s.IsZoneSelected(z.ID) {
			out = append(out, z.ID)
		}
	}
	return out
}

// SelectedPaths explicit path picks in reference order
func (s *ZoneSelection) SelectedPaths() []string {
	out := []string{}
	for _, z := range s.zones {
		for _, p := range z.Paths {
			if _, ok := s.selectedPaths[p]; ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// ExplicitPathCount number of explicit picks inside a zone (the "N paths" badge)
func (s *ZoneSelection) ExplicitPathCount(zoneID string) int {
	idx, ok := s.zoneIndex[zoneID]
	if !ok {
		return 0
	}
	n := 0
	for _, p := range s.zones[idx].Paths {
		if _, ok := s.selectedPaths[p]; ok {
			n++
		}
	}
	return n
}

// State snapshot of the raw selection sets
func (s *ZoneSelection) State() model.SelectionState {
	return model.SelectionState{
		SelectedZones: s.SelectedZones(),
		SelectedPaths: s.SelectedPaths(),
	}
}

// Effective selected zones, every path they cover, and explicit paths of unselected zones
func (s *ZoneSelection) Effective() model.EffectiveSelection {
	eff := model.EffectiveSelection{Zones: []string{}, Paths: []string{}}
	for _, z := range s.zones {
		zoneSelected := s.IsZoneSelected(z.ID)
		if zoneSelected {
			eff.Zones = append(eff.Zones, z.ID)
		}
		for _, p := range z.Paths {
			if _, ok := s.selectedPaths[p]; zoneSelected || ok {
				eff.Paths = append(eff.Paths, p)
			}
		}
	}
	return eff
}

// UncoveredPaths explicit picks whose zone is not selected
func (s *ZoneSelection) UncoveredPaths() []string {
	out := []string{}
	for _, z := range s.zones {
		if s.IsZoneSelected(z.ID) {
			continue
		}
		for _, p := range z.Paths {
			if _, ok := s.selectedPaths[p]; ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// TargetNames display names: selected zone names, then uncovered explicit paths
func (s *ZoneSelection) TargetNames() []string {
	names := []string{}
	for _, z := range s.zones {
		if s.IsZoneSelected(z.ID) {
			names = append(names, z.Name)
		}
	}
	return append(names, s.UncoveredPaths()...)
}
