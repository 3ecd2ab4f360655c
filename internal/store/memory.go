package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"product-catalog/internal/models"
)

// MemoryStore keeps products in an in-process map. It backs the test suite
// and runs the service when no database is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make(map[string]models.Product)}
}

func (s *MemoryStore) Create(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = primitive.NewObjectID().Hex()
	s.products[product.ID] = *product
	s.order = append(s.order, product.ID)
	return nil
}

func (s *MemoryStore) Find(_ context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (s *MemoryStore) Update(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return ErrNotFound
	}
	s.products[product.ID] = *product
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) All(_ context.Context) ([]models.Product, error) {
	return s.filter(func(models.Product) bool { return true }), nil
}

func (s *MemoryStore) FindByName(_ context.Context, name string) ([]models.Product, error) {
	return s.filter(func(p models.Product) bool { return p.Name == name }), nil
}

func (s *MemoryStore) FindByCategory(_ context.Context, category models.Category) ([]models.Product, error) {
	return s.filter(func(p models.Product) bool { return p.Category == category }), nil
}

func (s *MemoryStore) FindByAvailability(_ context.Context, available bool) ([]models.Product, error) {
	return s.filter(func(p models.Product) bool { return p.Available == available }), nil
}

// filter returns matching products in insertion order.
func (s *MemoryStore) filter(match func(models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var products []models.Product
	for _, id := range s.order {
		if p := s.products[id]; match(p) {
			products = append(products, p)
		}
	}
	return products
}
