package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
)

// Postgres SQLSTATE for exclusion_violation.
const exclusionViolation = "23P01"

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// Migrate also installs a gist exclusion constraint over (court_id, time range).
// The pre-check in CreateNoOverlap narrows the race window; this constraint is
// the authoritative arbiter when two commits race.
func (r *ReservationRepo) Migrate() error {
	if err := r.db.AutoMigrate(&domain.Reservation{}); err != nil {
		return err
	}
	if err := r.db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	return r.db.Exec(`
		DO $$ BEGIN
			ALTER TABLE reservations ADD CONSTRAINT reservations_no_overlap
				EXCLUDE USING gist (court_id WITH =, tstzrange(start_time, end_time) WITH &&);
		EXCEPTION WHEN duplicate_table OR duplicate_object THEN NULL;
		END $$`).Error
}

// CreateNoOverlap admits the reservation inside a transaction that locks any
// candidate overlapping rows first. Either the pre-check or the exclusion
// constraint losing the race surfaces as ErrTimeSlotTaken.
func (r *ReservationRepo) CreateNoOverlap(ctx context.Context, res *domain.Reservation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Reservation
		err := tx.Model(&domain.Reservation{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("court_id = ?", res.CourtID).
			Where("start_time < ? AND end_time > ?", res.EndTime, res.StartTime).
			Take(&existing).Error
		if err == nil {
			return domain.ErrTimeSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(res).Error; err != nil {
			return err
		}
		return tx.Preload("Court").Preload("User").First(res, res.ID).Error
	})
	if isExclusionViolation(err) {
		return domain.ErrTimeSlotTaken
	}
	return err
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == exclusionViolation
}

func (r *ReservationRepo) ByID(ctx context.Context, id uint) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepo) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Preload("Court").Preload("User").
		Order("start_time DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Preload("Court").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Reservation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}
