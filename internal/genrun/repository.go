package genrun

import (
	"errors"

	"gorm.io/gorm"
)

type RunRepository interface {
	Create(run *Run) error
	Update(run *Run) error
	AddRows(rows []*RunRow) error
	GetByID(id string) (*Run, error)
	List() ([]*Run, error)
}

type runRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) Create(run *Run) error {
	return r.db.Create(run).Error
}

func (r *runRepository) Update(run *Run) error {
	return r.db.Save(run).Error
}

func (r *runRepository) AddRows(rows []*RunRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *runRepository) GetByID(id string) (*Run, error) {
	var run Run
	if err := r.db.Preload("Rows").First(&run, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *runRepository) List() ([]*Run, error) {
	var runs []*Run
	if err := r.db.Order("created_at DESC").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
