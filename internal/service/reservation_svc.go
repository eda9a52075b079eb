package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
)

type ReservationStore interface {
	CreateNoOverlap(ctx context.Context, res *domain.Reservation) error
	ByID(ctx context.Context, id uint) (*domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

type CourtStore interface {
	Create(ctx context.Context, c *domain.Court) error
	ByID(ctx context.Context, id uint) (*domain.Court, error)
	List(ctx context.Context) ([]domain.Court, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.Court, error)
	Delete(ctx context.Context, id uint) error
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type ReservationSvc struct {
	reservations ReservationStore
	courts       CourtStore
	events       EventPublisher
	log          *zap.Logger
	now          func() time.Time
}

func NewReservationSvc(r ReservationStore, c CourtStore, ev EventPublisher, log *zap.Logger) *ReservationSvc {
	return &ReservationSvc{reservations: r, courts: c, events: ev, log: log, now: time.Now}
}

// Create validates in order: time range, past start, court existence, overlap.
// The first failing check wins. Price is computed here and frozen.
func (s *ReservationSvc) Create(ctx context.Context, userID, courtID uint, start, end time.Time) (*domain.Reservation, error) {
	start, end = start.UTC(), end.UTC()
	if !end.After(start) {
		return nil, domain.ErrInvalidTimeRange
	}
	if start.Before(s.now()) {
		return nil, domain.ErrPastStart
	}
	court, err := s.courts.ByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	res := &domain.Reservation{
		UserID:     userID,
		CourtID:    courtID,
		StartTime:  start,
		EndTime:    end,
		TotalPrice: end.Sub(start).Hours() * court.Price,
	}
	if err := s.reservations.CreateNoOverlap(ctx, res); err != nil {
		return nil, err
	}
	s.publish(ctx, "reservation.created", res)
	return res, nil
}

// List returns every reservation for admins, only the caller's otherwise.
func (s *ReservationSvc) List(ctx context.Context, userID uint, isAdmin bool) ([]domain.Reservation, error) {
	if isAdmin {
		return s.reservations.ListAll(ctx)
	}
	return s.reservations.ListByUser(ctx, userID)
}

func (s *ReservationSvc) Cancel(ctx context.Context, id, userID uint, isAdmin bool) error {
	res, err := s.reservations.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && res.UserID != userID {
		return domain.ErrNotReservationOwner
	}
	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "reservation.cancelled", res)
	return nil
}

// publish failures never fail the request.
func (s *ReservationSvc) publish(ctx context.Context, key string, res *domain.Reservation) {
	err := s.events.PublishJSON(ctx, key, map[string]any{
		"reservation_id": res.ID,
		"user_id":        res.UserID,
		"court_id":       res.CourtID,
		"start":          res.StartTime.Unix(),
		"end":            res.EndTime.Unix(),
		"total_price":    res.TotalPrice,
	})
	if err != nil {
		s.log.Warn("publish event", zap.String("key", key), zap.Error(err))
	}
}
