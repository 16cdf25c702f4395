package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kroue/AlertX/internal/domain/model"
)

var ErrUnknownKind = errors.New("unknown alert kind")

// PreviewPolicy decides whether a manual message edit survives a dependency change
type PreviewPolicy int

const (
	// PreviewUnlessEdited recomputes the message only while it has not been edited by hand
	PreviewUnlessEdited PreviewPolicy = iota
	// PreviewAlwaysRecompute overwrites manual edits on every kind or selection change
	PreviewAlwaysRecompute
)

const noZonesSelected = "No zones selected"

// ComposerOption configures an AlertComposer
type ComposerOption func(*AlertComposer)

// WithPreviewPolicy overrides the default PreviewUnlessEdited policy
func WithPreviewPolicy(p PreviewPolicy) ComposerOption {
	return func(c *AlertComposer) { c.policy = p }
}

// AlertComposer kind, custom kinds and message of one broadcast screen.
// Selection changes must go through the composer so the preview stays derived.
type AlertComposer struct {
	class       model.AlertClassConfig
	selection   *ZoneSelection
	policy      PreviewPolicy
	kind        string
	customKinds []string
	message     string
	dirty       bool
}

// NewAlertComposer creates a composer whose message starts as the preview
func NewAlertComposer(class model.AlertClassConfig, selection *ZoneSelection, opts ...ComposerOption) *AlertComposer {
	c := &AlertComposer{
		class:       class,
		selection:   selection,
		policy:      PreviewUnlessEdited,
		kind:        class.InitialKind,
		customKinds: []string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.message = c.Preview()
	return c
}

func (c *AlertComposer) Class() model.AlertClassConfig { return c.class }
func (c *AlertComposer) Selection() *ZoneSelection      { return c.selection }
func (c *AlertComposer) Kind() string                   { return c.kind }
func (c *AlertComposer) Message() string                { return c.message }
func (c *AlertComposer) Dirty() bool                    { return c.dirty }
func (c *AlertComposer) Cap() int                       { return c.class.MessageCap }

// Kinds default kinds followed by custom kinds
func (c *AlertComposer) Kinds() []string {
	out := make([]string, 0, len(c.class.DefaultKinds)+len(c.customKinds))
	out = append(out, c.class.DefaultKinds...)
	return append(out, c.customKinds...)
}

func (c *AlertComposer) CustomKinds() []string {
	out := make([]string, len(c.customKinds))
	copy(out, c.customKinds)
	return out
}

func (c *AlertComposer) hasKind(kind string) bool {
	for _, k := range c.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// SetKind selects a default or custom kind
func (c *AlertComposer) SetKind(kind string) error {
	if !c.hasKind(kind) {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if kind == c.kind {
		return nil
	}
	c.kind = kind
	c.recompute()
	return nil
}

// AddCustomKind appends a trimmed, not yet known kind. Exact, case-sensitive matching.
func (c *AlertComposer) AddCustomKind(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || c.hasKind(name) {
		return false
	}
	c.customKinds = append(c.customKinds, name)
	return true
}

// RemoveCustomKind drops a custom kind. The current kind is left untouched even when
// it is the removed value.
func (c *AlertComposer) RemoveCustomKind(name string) bool {
	for i, k := range c.customKinds {
		if k == name {
			c.customKinds = append(c.customKinds[:i], c.customKinds[i+1:]...)
			return true
		}
	}
	return false
}

// SetMessage records a manual edit
func (c *AlertComposer) SetMessage(msg string) {
	c.message = msg
	c.dirty = true
}

// ClearMessage empties the message. Counts as a manual edit
func (c *AlertComposer) ClearMessage() {
	c.SetMessage("")
}

// ResetPreview drops manual edits and restores the derived message
func (c *AlertComposer) ResetPreview() {
	c.dirty = false
	c.message = c.Preview()
}

func (c *AlertComposer) ToggleZone(zoneID string) bool {
	changed := c.selection.ToggleZone(zoneID)
	if changed {
		c.recompute()
	}
	return changed
}

// TogglePath is a no-op for zone-only classes so the message never names an untargeted path
func (c *AlertComposer) TogglePath(path string) bool {
	if !c.PathsTargetable() {
		return false
	}
	changed := c.selection.TogglePath(path)
	if changed {
		c.recompute()
	}
	return changed
}

// PathsTargetable reports whether the class sends to individual paths
func (c *AlertComposer) PathsTargetable() bool {
	return c.class.Targeting != model.TargetZones
}

func (c *AlertComposer) ClearSelections() {
	before := c.selection.Effective()
	c.selection.ClearSelections()
	if !before.Empty() {
		c.recompute()
	}
}

func (c *AlertComposer) recompute() {
	if c.dirty && c.policy == PreviewUnlessEdited {
		return
	}
	c.message = c.Preview()
	c.dirty = false
}

// Preview the derived message for the current kind and selection
func (c *AlertComposer) Preview() string {
	targets := noZonesSelected
	if names := c.selection.TargetNames(); len(names) > 0 {
		targets = strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s WARNING for: %s. Evacuate immediately.", strings.ToUpper(c.kind), targets)
}

// Summary short banner used on the warning screen
func (c *AlertComposer) Summary() string {
	zones := len(c.selection.SelectedZones())
	paths := len(c.selection.SelectedPaths())
	kind := strings.ToUpper(c.kind)
	if zones+paths == 0 {
		return kind + " - No areas selected"
	}
	return fmt.Sprintf("%s - Affecting %d %s and %d %s", kind, zones, plural(zones, "zone"), paths, plural(paths, "path"))
}

// MessageLength length in characters
func (c *AlertComposer) MessageLength() int {
	return utf8.RuneCountInString(c.message)
}

// OverCap reports whether the message exceeds the class cap. Display only
func (c *AlertComposer) OverCap() bool {
	return c.MessageLength() > c.class.MessageCap
}

// Draft snapshots the composition together with the given map points.
// Zone-only classes never carry paths.
func (c *AlertComposer) Draft(points []model.Point) model.AlertDraft {
	if points == nil {
		points = []model.Point{}
	}
	paths := []string{}
	if c.PathsTargetable() {
		paths = c.selection.UncoveredPaths()
	}
	return model.AlertDraft{
		Class:       c.class.Name,
		Targeting:   c.class.Targeting,
		Kind:        c.kind,
		CustomKinds: c.CustomKinds(),
		Message:     c.message,
		MessageCap:  c.class.MessageCap,
		Zones:       c.selection.SelectedZones(),
		Paths:       paths,
		Points:      points,
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
