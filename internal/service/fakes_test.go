package service

import (
	"context"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
)

type fakeReservationStore struct {
	items  map[uint]*domain.Reservation
	nextID uint
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{items: map[uint]*domain.Reservation{}}
}

func (f *fakeReservationStore) CreateNoOverlap(ctx context.Context, res *domain.Reservation) error {
	for _, r := range f.items {
		if r.CourtID == res.CourtID && r.Overlaps(res.StartTime, res.EndTime) {
			return domain.ErrTimeSlotTaken
		}
	}
	f.nextID++
	res.ID = f.nextID
	cp := *res
	f.items[res.ID] = &cp
	return nil
}

func (f *fakeReservationStore) ByID(ctx context.Context, id uint) (*domain.Reservation, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservationStore) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.items {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReservationStore) ListByUser(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.items {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) Delete(ctx context.Context, id uint) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrReservationNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeCourtStore struct {
	items  map[uint]*domain.Court
	nextID uint
}

func newFakeCourtStore() *fakeCourtStore {
	return &fakeCourtStore{items: map[uint]*domain.Court{}}
}

func (f *fakeCourtStore) Create(ctx context.Context, c *domain.Court) error {
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCourtStore) ByID(ctx context.Context, id uint) (*domain.Court, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrCourtNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourtStore) List(ctx context.Context) ([]domain.Court, error) {
	var out []domain.Court
	for _, c := range f.items {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCourtStore) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.Court, error) {
	c, ok := f.items[id]
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

func (f *fakeCourtStore) Delete(ctx context.Context, id uint) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrCourtNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeUserStore struct {
	items  map[uint]*domain.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{items: map[uint]*domain.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range f.items {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) ByID(ctx context.Context, id uint) (*domain.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserStore) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.items {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.User, error) {
	u, ok := f.items[id]
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

func (f *fakeUserStore) Delete(ctx context.Context, id uint) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.items, id)
	return nil
}

type capturingPublisher struct {
	keys []string
	err  error
}

func (p *capturingPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	p.keys = append(p.keys, key)
	return p.err
}
