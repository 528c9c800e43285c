package contract

import (
	"context"

	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/repository/specification"
)

type ShotRepository interface {
	Create(ctx context.Context, shot *entity.Shot) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shot, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
