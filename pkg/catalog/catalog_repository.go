package catalog

import (
	"context"
	"sort"

	"github.com/TimSparing/Food-Tracker/entities"
	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		CreateBasic(ctx context.Context, food *entities.BasicFood) error
		SaveBasic(ctx context.Context, food *entities.BasicFood) error
		FindBasicByName(ctx context.Context, name string) (*entities.BasicFood, error)
		CreateComposite(ctx context.Context, food *entities.CompositeFood) error
		SaveComposite(ctx context.Context, food *entities.CompositeFood) error
		FindCompositeByName(ctx context.Context, name string) (*entities.CompositeFood, error)
		ListNames(ctx context.Context) ([]string, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateBasic(ctx context.Context, food *entities.BasicFood) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *catalogRepository) SaveBasic(ctx context.Context, food *entities.BasicFood) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *catalogRepository) FindBasicByName(ctx context.Context, name string) (*entities.BasicFood, error) {
	var food entities.BasicFood
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *catalogRepository) CreateComposite(ctx context.Context, food *entities.CompositeFood) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *catalogRepository) SaveComposite(ctx context.Context, food *entities.CompositeFood) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *catalogRepository) FindCompositeByName(ctx context.Context, name string) (*entities.CompositeFood, error) {
	var food entities.CompositeFood
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *catalogRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&entities.BasicFood{}).Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	var compositeNames []string
	if err := r.db.WithContext(ctx).Model(&entities.CompositeFood{}).Pluck("name", &compositeNames).Error; err != nil {
		return nil, err
	}
	names = append(names, compositeNames...)
	sort.Strings(names)
	return names, nil
}
