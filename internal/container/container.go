package container

import (
	"context"
	"log"
	"os"

	"github.com/btw-edu/pembahasan-lambda/internal/auth"
	"github.com/btw-edu/pembahasan-lambda/internal/config"
	"github.com/btw-edu/pembahasan-lambda/internal/genrun"
	"github.com/btw-edu/pembahasan-lambda/internal/pembahasan"
	"github.com/btw-edu/pembahasan-lambda/internal/sheets"
)

type Container struct {
	AuthHandler         *auth.Handler
	PembahasanContainer *pembahasan.PembahasanContainer
	GenRunContainer     *genrun.GenRunContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	pembahasanContainer, err := pembahasan.NewPembahasanContainer(ctx)
	if err != nil {
		log.Fatalf("failed to init Gemini provider: %v", err)
	}

	sheetsService, err := sheets.NewSheetsService(ctx)
	if err != nil {
		log.Fatalf("failed to init Sheets client: %v", err)
	}

	genRunContainer := genrun.NewGenRunContainer(config.DB, sheetsService, pembahasanContainer.Service)

	return &Container{
		AuthHandler:         auth.NewHandler(),
		PembahasanContainer: pembahasanContainer,
		GenRunContainer:     genRunContainer,
	}
}
