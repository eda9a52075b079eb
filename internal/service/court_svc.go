package service

import (
	"context"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
)

type CourtSvc struct{ courts CourtStore }

func NewCourtSvc(courts CourtStore) *CourtSvc { return &CourtSvc{courts: courts} }

type CreateCourtInput struct {
	Name        string
	Type        string
	Surface     string
	Price       float64
	IsAvailable *bool
}

type UpdateCourtInput struct {
	Name        *string
	Type        *string
	Surface     *string
	Price       *float64
	IsAvailable *bool
}

func (s *CourtSvc) Create(ctx context.Context, in CreateCourtInput) (*domain.Court, error) {
	if in.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	c := &domain.Court{
		Name:        in.Name,
		Type:        domain.CourtType(in.Type),
		Surface:     domain.Surface(in.Surface),
		Price:       in.Price,
		IsAvailable: true,
	}
	if c.Type == "" {
		c.Type = domain.CourtIndoor
	}
	if c.Surface == "" {
		c.Surface = domain.SurfaceCristal
	}
	if in.IsAvailable != nil {
		c.IsAvailable = *in.IsAvailable
	}
	if err := s.courts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CourtSvc) List(ctx context.Context) ([]domain.Court, error) {
	return s.courts.List(ctx)
}

func (s *CourtSvc) GetByID(ctx context.Context, id uint) (*domain.Court, error) {
	return s.courts.ByID(ctx, id)
}

func (s *CourtSvc) Update(ctx context.Context, id uint, in UpdateCourtInput) (*domain.Court, error) {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Type != nil {
		fields["type"] = *in.Type
	}
	if in.Surface != nil {
		fields["surface"] = *in.Surface
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		fields["price"] = *in.Price
	}
	if in.IsAvailable != nil {
		fields["is_available"] = *in.IsAvailable
	}
	if len(fields) == 0 {
		return s.courts.ByID(ctx, id)
	}
	return s.courts.UpdateFields(ctx, id, fields)
}

func (s *CourtSvc) Delete(ctx context.Context, id uint) error {
	return s.courts.Delete(ctx, id)
}
