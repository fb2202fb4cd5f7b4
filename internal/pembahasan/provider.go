package pembahasan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/btw-edu/pembahasan-lambda/internal/config"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// RawDiagnosticLimit membatasi panjang balasan mentah yang disimpan untuk
// keperluan diagnostik.
const RawDiagnosticLimit = 4000

type Provider interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat klien Gemini: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

// SendPrompt meminta balasan JSON dari model. Bila konfigurasi mode JSON
// ditolak, permintaan diulang sekali tanpa konfigurasi.
func (p *geminiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		MaxOutputTokens:  2048,
	}

	result, err := p.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), cfg)
	if err != nil {
		log.WithError(err).Warn("mode JSON ditolak, mengulang tanpa konfigurasi")
		result, err = p.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
		if err != nil {
			log.WithError(err).Error("gagal menghasilkan konten dari Gemini")
			return "", fmt.Errorf("gagal menghasilkan konten: %w", err)
		}
	}

	raw := strings.TrimSpace(result.Text())
	if raw == "" {
		return "", errors.New("respons kosong dari model")
	}
	return raw, nil
}
