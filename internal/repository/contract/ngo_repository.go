package contract

import (
	"context"

	"github.com/Shravansapate/legislate-voice-aid/internal/entity"
)

type NgoRepository interface {
	CreateBulk(ctx context.Context, ngos []*entity.Ngo) error
	FindAll(ctx context.Context) ([]*entity.Ngo, error)
	FindByRegion(ctx context.Context, region string) ([]*entity.Ngo, error)
	Count(ctx context.Context) (int64, error)
}
