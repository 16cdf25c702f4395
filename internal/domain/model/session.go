package model

// CreateSessionRequest opens a composer session for one broadcast screen
type CreateSessionRequest struct {
	Class   string    `json:"class" binding:"required"`
	MapID   string    `json:"map_id"`
	Surface PointKind `json:"surface"`
}

type TogglePathRequest struct {
	Path string `json:"path" binding:"required"`
}

type SetKindRequest struct {
	Kind string `json:"kind" binding:"required"`
}

type AddCustomKindRequest struct {
	Name string `json:"name"`
}

type SetMessageRequest struct {
	Message string `json:"message"`
}

// ImageClickRequest a raw pointer click and the rendered image rectangle
type ImageClickRequest struct {
	ClientX float64  `json:"client_x"`
	ClientY float64  `json:"client_y"`
	Rect    RectJSON `json:"rect"`
}

type RectJSON struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type GeoClickRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SaveBoundaryRequest struct {
	Points []Point `json:"points"`
}

// BoundaryResponse boundary read result; Boundary is nil when no usable cache entry exists
type BoundaryResponse struct {
	Boundary *Boundary `json:"boundary"`
	Outcome  string    `json:"outcome"`
}

// AddPointResponse Added is false when the click fell outside the image
type AddPointResponse struct {
	Added  bool    `json:"added"`
	Point  *Point  `json:"point,omitempty"`
	Points []Point `json:"points"`
}

// Issue an inline validation message
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SessionView everything a broadcast screen renders
type SessionView struct {
	ID            string             `json:"id"`
	Class         string             `json:"class"`
	MapID         string             `json:"map_id"`
	Surface       PointKind          `json:"surface"`
	Zones         []Zone             `json:"zones"`
	Kind          string             `json:"kind"`
	Kinds         []string           `json:"kinds"`
	CustomKinds   []string           `json:"custom_kinds"`
	Message       string             `json:"message"`
	MessageDirty  bool               `json:"message_dirty"`
	Preview       string             `json:"preview"`
	Summary       string             `json:"summary"`
	MessageLength int                `json:"message_length"`
	MessageCap    int                `json:"message_cap"`
	OverCap       bool               `json:"over_cap"`
	Selection     SelectionState     `json:"selection"`
	Effective     EffectiveSelection `json:"effective"`
	PathCounts    map[string]int     `json:"path_counts"` // explicit picks per zone id
	Points        []Point            `json:"points"`
	CanSubmit     bool               `json:"can_submit"`
	Issues        []Issue            `json:"issues"`
}
