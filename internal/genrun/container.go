package genrun

import (
	"github.com/btw-edu/pembahasan-lambda/internal/pembahasan"
	"github.com/btw-edu/pembahasan-lambda/internal/sheets"
	"gorm.io/gorm"
)

type GenRunContainer struct {
	Handler *Handler
}

func NewGenRunContainer(db *gorm.DB, sheetsSvc sheets.Service, pembahasanSvc pembahasan.Service) *GenRunContainer {
	repo := NewRepository(db)
	service := NewService(repo, sheetsSvc, pembahasanSvc)
	handler := NewHandler(service)

	return &GenRunContainer{
		Handler: handler,
	}
}
