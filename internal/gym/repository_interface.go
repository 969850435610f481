package gym

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type GymRepository interface {
	GetGymByID(ctx context.Context, id int) (*Gym, error)
	GetAllGyms(ctx context.Context) ([]Gym, error)
	SlotOccupancy(ctx context.Context, gymID int, date time.Time, timeSlot string) (int, error)
	IncrementVisitsTx(ctx context.Context, tx *sqlx.Tx, gymID, n int) error
}
