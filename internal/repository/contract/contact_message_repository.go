package contract

import (
	"context"

	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/repository/specification"
)

// ContactMessageRepository is append-only: submissions are never updated or
// deleted by the application.
type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
