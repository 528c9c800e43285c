package implementation

import (
	"context"

	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/mapper"
	"photo-portfolio-be/internal/model"
	"photo-portfolio-be/internal/repository/contract"
	"photo-portfolio-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ShotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShotMapper
}

func NewShotRepository(db *gorm.DB) contract.ShotRepository {
	return &ShotRepositoryImpl{
		db:     db,
		mapper: mapper.NewShotMapper(),
	}
}

func (r *ShotRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShotRepositoryImpl) Create(ctx context.Context, shot *entity.Shot) error {
	m := r.mapper.ToModel(shot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*shot = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shot, error) {
	var models []*model.Shot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ShotRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Shot{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
