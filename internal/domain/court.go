package domain

import "time"

type CourtType string

const (
	CourtIndoor  CourtType = "INDOOR"
	CourtOutdoor CourtType = "OUTDOOR"
)

type Surface string

const (
	SurfaceMuro    Surface = "MURO"
	SurfaceCristal Surface = "CRISTAL"
)

type Court struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Type        CourtType `gorm:"default:INDOOR" json:"type"`
	Surface     Surface   `gorm:"default:CRISTAL" json:"surface"`
	Price       float64   `json:"price"` // per hour
	IsAvailable bool      `gorm:"default:true" json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
