package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
	"github.com/iggarsaudev/reservas-padel/internal/service"
	"github.com/iggarsaudev/reservas-padel/pkg/auth"
)

type memReservations struct {
	items  map[uint]*domain.Reservation
	nextID uint
}

func (m *memReservations) CreateNoOverlap(ctx context.Context, res *domain.Reservation) error {
	for _, r := range m.items {
		if r.CourtID == res.CourtID && r.Overlaps(res.StartTime, res.EndTime) {
			return domain.ErrTimeSlotTaken
		}
	}
	m.nextID++
	res.ID = m.nextID
	cp := *res
	m.items[res.ID] = &cp
	return nil
}

func (m *memReservations) ByID(ctx context.Context, id uint) (*domain.Reservation, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memReservations) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	out := []domain.Reservation{}
	for _, r := range m.items {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memReservations) ListByUser(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	out := []domain.Reservation{}
	for _, r := range m.items {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReservations) Delete(ctx context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrReservationNotFound
	}
	delete(m.items, id)
	return nil
}

type memCourts struct {
	items  map[uint]*domain.Court
	nextID uint
}

func (m *memCourts) Create(ctx context.Context, c *domain.Court) error {
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCourts) ByID(ctx context.Context, id uint) (*domain.Court, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, domain.ErrCourtNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCourts) List(ctx context.Context) ([]domain.Court, error) {
	out := []domain.Court{}
	for _, c := range m.items {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCourts) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.Court, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, domain.ErrCourtNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "type":
			c.Type = domain.CourtType(v.(string))
		case "surface":
			c.Surface = domain.Surface(v.(string))
		case "price":
			c.Price = v.(float64)
		case "is_available":
			c.IsAvailable = v.(bool)
		}
	}
	cp := *c
	return &cp, nil
}

func (m *memCourts) Delete(ctx context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrCourtNotFound
	}
	delete(m.items, id)
	return nil
}

type memUsers struct {
	items  map[uint]*domain.User
	nextID uint
}

func (m *memUsers) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range m.items {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

func (m *memUsers) ByID(ctx context.Context, id uint) (*domain.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) List(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range m.items {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "surnames":
			u.Surnames = v.(string)
		case "email":
			u.Email = v.(string)
		case "password":
			u.Password = v.(string)
		case "role":
			u.Role = domain.Role(v.(string))
		case "avatar":
			u.Avatar = v.(string)
		}
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Delete(ctx context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.items, id)
	return nil
}

type nopPublisher struct{}

func (nopPublisher) PublishJSON(ctx context.Context, key string, v any) error { return nil }

// testEnv wires the full router onto in-memory stores.
type testEnv struct {
	router       *gin.Engine
	tokens       *auth.Manager
	users        *memUsers
	courts       *memCourts
	reservations *memReservations
}

func newTestEnv() *testEnv {
	log := zap.NewNop()
	tokens := auth.NewManager("test-secret", time.Hour)
	users := &memUsers{items: map[uint]*domain.User{}}
	courts := &memCourts{items: map[uint]*domain.Court{}}
	reservations := &memReservations{items: map[uint]*domain.Reservation{}}

	router := NewRouter(
		log,
		tokens,
		NewAuthHandler(service.NewAuthSvc(users, tokens), log),
		NewUserHandler(service.NewUserSvc(users), log),
		NewCourtHandler(service.NewCourtSvc(courts), log),
		NewReservationHandler(service.NewReservationSvc(reservations, courts, nopPublisher{}, log), log),
	)
	return &testEnv{
		router:       router,
		tokens:       tokens,
		users:        users,
		courts:       courts,
		reservations: reservations,
	}
}
