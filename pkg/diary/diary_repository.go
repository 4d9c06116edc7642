package diary

import (
	"context"
	"errors"

	"github.com/TimSparing/Food-Tracker/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DiaryRepository interface {
		Get(ctx context.Context, date string) (*entities.DailyRecord, error)
		Mutate(ctx context.Context, date string, fn func(record *entities.DailyRecord)) error
		ListAll(ctx context.Context) ([]entities.DailyRecord, error)
	}

	diaryRepository struct {
		db *gorm.DB
	}
)

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (r *diaryRepository) Get(ctx context.Context, date string) (*entities.DailyRecord, error) {
	var record entities.DailyRecord
	if err := r.db.WithContext(ctx).Where("date = ?", date).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Mutate runs a read-merge-write cycle for one date inside a single
// transaction, so a crash mid-update can never leave a half-merged record.
// fn receives the stored record, or a fresh one if the date has none yet.
func (r *diaryRepository) Mutate(ctx context.Context, date string, fn func(record *entities.DailyRecord)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record entities.DailyRecord
		err := tx.Where("date = ?", date).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = entities.DailyRecord{ID: uuid.New(), Date: date}
		} else if err != nil {
			return err
		}

		fn(&record)

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			UpdateAll: true,
		}).Create(&record).Error
	})
}

func (r *diaryRepository) ListAll(ctx context.Context) ([]entities.DailyRecord, error) {
	var records []entities.DailyRecord
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
