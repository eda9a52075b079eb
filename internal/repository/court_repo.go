package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
)

type CourtRepo struct{ db *gorm.DB }

func NewCourtRepo(db *gorm.DB) *CourtRepo {
	return &CourtRepo{db: db}
}

func (r *CourtRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Court{})
}

func (r *CourtRepo) Create(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtRepo) ByID(ctx context.Context, id uint) (*domain.Court, error) {
	var c domain.Court
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CourtRepo) List(ctx context.Context) ([]domain.Court, error) {
	var out []domain.Court
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFields is a partial update; a map is used so false/zero values
// (e.g. isAvailable=false) still persist.
func (r *CourtRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.Court, error) {
	res := r.db.WithContext(ctx).Model(&domain.Court{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrCourtNotFound
	}
	return r.ByID(ctx, id)
}

func (r *CourtRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Court{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourtNotFound
	}
	return nil
}
