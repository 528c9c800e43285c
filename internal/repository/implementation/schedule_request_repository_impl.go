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

type ScheduleRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScheduleRequestMapper
}

func NewScheduleRequestRepository(db *gorm.DB) contract.ScheduleRequestRepository {
	return &ScheduleRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewScheduleRequestMapper(),
	}
}

func (r *ScheduleRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScheduleRequestRepositoryImpl) Create(ctx context.Context, request *entity.ScheduleRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScheduleRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScheduleRequest, error) {
	var models []*model.ScheduleRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ScheduleRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ScheduleRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
