package contract

import (
	"context"

	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/repository/specification"
)

type PhotographerRepository interface {
	Create(ctx context.Context, photographer *entity.Photographer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Photographer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
