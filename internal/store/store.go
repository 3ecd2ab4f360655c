package store

import (
	"context"
	"errors"

	"product-catalog/internal/models"
)

// ErrNotFound is returned when no product matches the requested ID.
var ErrNotFound = errors.New("product not found")

// ProductStore is the persistence contract for the catalog. Implementations
// assign IDs on Create and report missing rows with ErrNotFound.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	Find(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]models.Product, error)
	FindByName(ctx context.Context, name string) ([]models.Product, error)
	FindByCategory(ctx context.Context, category models.Category) ([]models.Product, error)
	FindByAvailability(ctx context.Context, available bool) ([]models.Product, error)
}
