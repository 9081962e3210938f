package implementation

import (
	"context"

	"github.com/Shravansapate/legislate-voice-aid/internal/entity"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/contract"

	"gorm.io/gorm"
)

type NgoRepositoryImpl struct {
	db *gorm.DB
}

func NewNgoRepository(db *gorm.DB) contract.NgoRepository {
	return &NgoRepositoryImpl{db: db}
}

func (r *NgoRepositoryImpl) CreateBulk(ctx context.Context, ngos []*entity.Ngo) error {
	if len(ngos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(ngos).Error
}

func (r *NgoRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Ngo, error) {
	var ngos []*entity.Ngo
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

func (r *NgoRepositoryImpl) FindByRegion(ctx context.Context, region string) ([]*entity.Ngo, error) {
	var ngos []*entity.Ngo
	if err := r.db.WithContext(ctx).Where("region = ?", region).Order("name ASC").Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

func (r *NgoRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Ngo{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
