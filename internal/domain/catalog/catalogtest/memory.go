// Package catalogtest fornece implementações em memória dos
// repositórios do catálogo para uso em testes.
package catalogtest

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/nassaupro/marketplace-api/internal/models"
)

// ======================================================
// Categories
// ======================================================

type CategoryRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]models.Category

	// SaveErr / DeleteErr forçam falhas de persistência
	SaveErr   error
	DeleteErr error
}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{items: make(map[uint]models.Category)}
}

func (r *CategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Category, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *CategoryRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	return ok, nil
}

func (r *CategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.items {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *CategoryRepo) HasAny(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items) > 0, nil
}

func (r *CategoryRepo) Save(ctx context.Context, category *models.Category) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == 0 {
		r.seq++
		category.ID = r.seq
	}
	r.items[category.ID] = *category
	return nil
}

func (r *CategoryRepo) DeleteByID(ctx context.Context, id uint) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *CategoryRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// ======================================================
// Clients
// ======================================================

type ClientRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]models.Client

	SaveErr   error
	DeleteErr error
}

func NewClientRepo() *ClientRepo {
	return &ClientRepo{items: make(map[uint]models.Client)}
}

func (r *ClientRepo) FindAll(ctx context.Context) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Client, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ClientRepo) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *ClientRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	return ok, nil
}

func (r *ClientRepo) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.items {
		if c.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *ClientRepo) HasAny(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items) > 0, nil
}

func (r *ClientRepo) Save(ctx context.Context, client *models.Client) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if client.ID == 0 {
		r.seq++
		client.ID = r.seq
	}
	r.items[client.ID] = *client
	return nil
}

func (r *ClientRepo) DeleteByID(ctx context.Context, id uint) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *ClientRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// ======================================================
// Services
// ======================================================

type ServiceRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]models.Service

	SaveErr   error
	DeleteErr error
}

func NewServiceRepo() *ServiceRepo {
	return &ServiceRepo{items: make(map[uint]models.Service)}
}

func (r *ServiceRepo) FindAll(ctx context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Service, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ServiceRepo) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *ServiceRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	return ok, nil
}

func (r *ServiceRepo) Save(ctx context.Context, service *models.Service) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == 0 {
		r.seq++
		service.ID = r.seq
	}
	r.items[service.ID] = *service
	return nil
}

func (r *ServiceRepo) DeleteByID(ctx context.Context, id uint) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *ServiceRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
