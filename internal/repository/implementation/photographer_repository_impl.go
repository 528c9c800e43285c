package implementation

import (
	"context"
	"errors"

	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/mapper"
	"photo-portfolio-be/internal/model"
	"photo-portfolio-be/internal/repository/contract"
	"photo-portfolio-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PhotographerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PhotographerMapper
}

func NewPhotographerRepository(db *gorm.DB) contract.PhotographerRepository {
	return &PhotographerRepositoryImpl{
		db:     db,
		mapper: mapper.NewPhotographerMapper(),
	}
}

func (r *PhotographerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PhotographerRepositoryImpl) Create(ctx context.Context, photographer *entity.Photographer) error {
	m := r.mapper.ToModel(photographer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*photographer = *r.mapper.ToEntity(m)
	return nil
}

func (r *PhotographerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Photographer, error) {
	var m model.Photographer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PhotographerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Photographer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
