package contract

import (
	"context"

	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/repository/specification"
)

type ScheduleRequestRepository interface {
	Create(ctx context.Context, request *entity.ScheduleRequest) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScheduleRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
