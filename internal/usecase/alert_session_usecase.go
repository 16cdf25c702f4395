package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
	"github.com/kroue/AlertX/internal/domain/service"
)

const defaultMapID = "brgy26"

var (
	ErrUnknownClass    = errors.New("unknown alert class")
	ErrUnknownSurface  = errors.New("unknown map surface")
	ErrSurfaceMismatch = errors.New("click does not match the session's map surface")
)

type AlertSessionUseCase interface {
	// CreateSession opens a broadcast screen with its own selection, composer and annotations
	CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.SessionView, error)
	GetSession(ctx context.Context, id string) (*model.SessionView, error)
	CloseSession(ctx context.Context, id string) error

	ToggleZone(ctx context.Context, id, zoneID string) (*model.SessionView, error)
	TogglePath(ctx context.Context, id, path string) (*model.SessionView, error)
	ClearSelections(ctx context.Context, id string) (*model.SessionView, error)

	SetKind(ctx context.Context, id, kind string) (*model.SessionView, error)
	AddCustomKind(ctx context.Context, id, name string) (*model.SessionView, error)
	RemoveCustomKind(ctx context.Context, id, name string) (*model.SessionView, error)

	SetMessage(ctx context.Context, id, message string) (*model.SessionView, error)
	ClearMessage(ctx context.Context, id string) (*model.SessionView, error)
	ResetMessage(ctx context.Context, id string) (*model.SessionView, error)

	AddImageClick(ctx context.Context, id string, req *model.ImageClickRequest) (*model.AddPointResponse, error)
	AddGeoClick(ctx context.Context, id string, req *model.GeoClickRequest) (*model.AddPointResponse, error)
	ClearPoints(ctx context.Context, id string) (*model.SessionView, error)

	SaveBoundary(ctx context.Context, id string, points []model.Point) (*model.BoundaryResponse, error)
	LoadBoundary(ctx context.Context, id string) (*model.BoundaryResponse, error)
	ClearBoundary(ctx context.Context, id string) (*model.BoundaryResponse, error)

	// Submit dispatches the current draft. Map points are cleared after a successful send.
	Submit(ctx context.Context, id string) (*model.AlertRecord, error)

	// EvictIdleSessions drops sessions unused for longer than the idle timeout
	EvictIdleSessions(ctx context.Context) int

	// RunEvictor evicts idle sessions every interval until ctx is done
	RunEvictor(ctx context.Context, interval time.Duration)
}

type alertSessionUseCaseImpl struct {
	zonesRepo repository.ZonesRepository
	cache     repository.KeyValueCache
	gate      *service.SubmissionGate
	policy    service.PreviewPolicy
	sessions  *sessionStore
}

// NewAlertSessionUseCase idleTimeout <= 0 keeps sessions until they are closed
func NewAlertSessionUseCase(
	zonesRepo repository.ZonesRepository,
	cache repository.KeyValueCache,
	gate *service.SubmissionGate,
	policy service.PreviewPolicy,
	idleTimeout time.Duration,
) AlertSessionUseCase {
	return &alertSessionUseCaseImpl{
		zonesRepo: zonesRepo,
		cache:     cache,
		gate:      gate,
		policy:    policy,
		sessions:  newSessionStore(idleTimeout),
	}
}

func (u *alertSessionUseCaseImpl) CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.SessionView, error) {
	class, ok := model.GetAlertClass(req.Class)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, req.Class)
	}

	surface := req.Surface
	switch surface {
	case "":
		surface = model.PointFraction
	case model.PointFraction, model.PointGeo:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSurface, surface)
	}

	mapID := req.MapID
	if mapID == "" {
		mapID = defaultMapID
	}

	zones, err := u.zonesRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}
	selection, err := service.NewZoneSelection(zones)
	if err != nil {
		return nil, fmt.Errorf("invalid zone reference data: %w", err)
	}

	u.EvictIdleSessions(ctx)

	sess := &alertSession{
		id:       uuid.New().String(),
		composer: service.NewAlertComposer(class, selection, service.WithPreviewPolicy(u.policy)),
		store:    service.NewAnnotationStore(mapID, surface, u.cache),
	}
	u.sessions.put(sess)

	log.Printf("🚀 Session opened: %s (%s, map %s, %s surface)", sess.id, class.Name, mapID, surface)
	return buildView(sess), nil
}

func (u *alertSessionUseCaseImpl) GetSession(ctx context.Context, id string) (*model.SessionView, error) {
	return u.view(id, func(*alertSession) error { return nil })
}

func (u *alertSessionUseCaseImpl) CloseSession(ctx context.Context, id string) error {
	if !u.sessions.remove(id) {
		return ErrSessionNotFound
	}
	log.Printf("✅ Session closed: %s", id)
	return nil
}

func (u *alertSessionUseCaseImpl) ToggleZone(ctx context.Context, id, zoneID string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.composer.ToggleZone(zoneID)
		return nil
	})
}

func (u *alertSessionUseCaseImpl) TogglePath(ctx context.Context, id, path string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.composer.TogglePath(path)
		return nil
	})
}

func (u *alertSessionUseCaseImpl) ClearSelections(ctx context.Context, id string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.composer.ClearSelections()
		return nil
	})
}

func (u *alertSessionUseCaseImpl) SetKind(ctx context.Context, id, kind string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		return s.composer.SetKind(kind)
	})
}

func (u *alertSessionUseCaseImpl) AddCustomKind(ctx context.Context, id, name string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.composer.AddCustomKind(name)
		return nil
	})
}

func (u *alertSessionUseCaseImpl) RemoveCustomKind(ctx context.Context, id, name string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.composer.RemoveCustomKind(name)
		return nil
	})
}

func (u *alertSessionUseCaseImpl) SetMessage(ctx context.Context, id, message string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.composer.SetMessage(message)
		return nil
	})
}

func (u *alertSessionUseCaseImpl) ClearMessage(ctx context.Context, id string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.composer.ClearMessage()
		return nil
	})
}

func (u *alertSessionUseCaseImpl) ResetMessage(ctx context.Context, id string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.composer.ResetPreview()
		return nil
	})
}

func (u *alertSessionUseCaseImpl) AddImageClick(ctx context.Context, id string, req *model.ImageClickRequest) (*model.AddPointResponse, error) {
	sess, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.store.Surface() != model.PointFraction {
		return nil, ErrSurfaceMismatch
	}

	p, ok := service.NormalizeImageClick(
		service.PointerEvent{ClientX: req.ClientX, ClientY: req.ClientY},
		service.SurfaceRect{Left: req.Rect.Left, Top: req.Rect.Top, Width: req.Rect.Width, Height: req.Rect.Height},
	)
	resp := &model.AddPointResponse{Added: ok}
	if ok {
		sess.store.AddPoint(p)
		resp.Point = &p
	}
	resp.Points = sess.store.Points()
	return resp, nil
}

func (u *alertSessionUseCaseImpl) AddGeoClick(ctx context.Context, id string, req *model.GeoClickRequest) (*model.AddPointResponse, error) {
	sess, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.store.Surface() != model.PointGeo {
		return nil, ErrSurfaceMismatch
	}

	p := service.NormalizeGeoClick(req.Lat, req.Lng)
	sess.store.AddPoint(p)
	return &model.AddPointResponse{Added: true, Point: &p, Points: sess.store.Points()}, nil
}

func (u *alertSessionUseCaseImpl) ClearPoints(ctx context.Context, id string) (*model.SessionView, error) {
	return u.view(id, func(s *alertSession) error {
		s.store.ClearPoints()
		return nil
	})
}

func (u *alertSessionUseCaseImpl) SaveBoundary(ctx context.Context, id string, points []model.Point) (*model.BoundaryResponse, error) {
	sess, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	outcome, err := sess.store.SaveBoundary(ctx, points)
	if err != nil {
		return nil, err
	}
	resp := &model.BoundaryResponse{Outcome: string(outcome)}
	if outcome == service.CacheOK {
		resp.Boundary = &model.Boundary{
			MapID:  sess.store.MapID(),
			Kind:   sess.store.Surface(),
			Points: append([]model.Point{}, points...),
		}
	}
	return resp, nil
}

func (u *alertSessionUseCaseImpl) LoadBoundary(ctx context.Context, id string) (*model.BoundaryResponse, error) {
	sess, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	boundary, outcome := sess.store.LoadBoundary(ctx)
	return &model.BoundaryResponse{Boundary: boundary, Outcome: string(outcome)}, nil
}

func (u *alertSessionUseCaseImpl) ClearBoundary(ctx context.Context, id string) (*model.BoundaryResponse, error) {
	sess, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	outcome := sess.store.ClearBoundary(ctx)
	return &model.BoundaryResponse{Outcome: string(outcome)}, nil
}

func (u *alertSessionUseCaseImpl) Submit(ctx context.Context, id string) (*model.AlertRecord, error) {
	sess, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	draft := sess.composer.Draft(sess.store.Points())
	record, err := u.gate.Dispatch(ctx, draft)
	if err != nil {
		return nil, err
	}

	sess.store.ClearPoints()
	return record, nil
}

func (u *alertSessionUseCaseImpl) EvictIdleSessions(ctx context.Context) int {
	evicted := u.sessions.sweep()
	if len(evicted) > 0 {
		log.Printf("⚠️ Evicted %d idle sessions", len(evicted))
	}
	return len(evicted)
}

func (u *alertSessionUseCaseImpl) RunEvictor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.EvictIdleSessions(ctx)
		}
	}
}

// view runs op under the session lock and renders the resulting state
func (u *alertSessionUseCaseImpl) view(id string, op func(*alertSession) error) (*model.SessionView, error) {
	sess, err := u.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := op(sess); err != nil {
		return nil, err
	}
	return buildView(sess), nil
}

func buildView(s *alertSession) *model.SessionView {
	c := s.composer
	sel := c.Selection()
	points := s.store.Points()
	draft := c.Draft(points)

	zones := sel.Zones()
	pathCounts := make(map[string]int, len(zones))
	for _, z := range zones {
		pathCounts[z.ID] = sel.ExplicitPathCount(z.ID)
	}

	issues := []model.Issue{}
	for _, v := range service.ValidateDraft(draft) {
		issues = append(issues, model.Issue{Field: v.Field, Message: v.Message})
	}

	return &model.SessionView{
		ID:            s.id,
		Class:         c.Class().Name,
		MapID:         s.store.MapID(),
		Surface:       s.store.Surface(),
		Zones:         zones,
		Kind:          c.Kind(),
		Kinds:         c.Kinds(),
		CustomKinds:   c.CustomKinds(),
		Message:       c.Message(),
		MessageDirty:  c.Dirty(),
		Preview:       c.Preview(),
		Summary:       c.Summary(),
		MessageLength: c.MessageLength(),
		MessageCap:    c.Cap(),
		OverCap:       c.OverCap(),
		Selection:     sel.State(),
		Effective:     sel.Effective(),
		PathCounts:    pathCounts,
		Points:        points,
		CanSubmit:     len(issues) == 0,
		Issues:        issues,
	}
}
