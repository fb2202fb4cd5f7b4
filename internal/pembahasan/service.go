package pembahasan

import (
	"context"
	"errors"

	"github.com/btw-edu/pembahasan-lambda/internal/category"
	"github.com/btw-edu/pembahasan-lambda/internal/config"
	"github.com/btw-edu/pembahasan-lambda/internal/inference"
	"github.com/btw-edu/pembahasan-lambda/internal/prompt"
	"github.com/btw-edu/pembahasan-lambda/internal/question"
)

// ErrNoCorrectAnswer menandakan data sumber tidak memberi petunjuk jawaban
// benar sehingga baris harus dilewati.
var ErrNoCorrectAnswer = errors.New("tidak menemukan jawaban benar pada data sumber")

type Service interface {
	Generate(ctx context.Context, row question.Row) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// Generate menjalankan pipeline lengkap untuk satu baris: klasifikasi
// varian, inferensi jawaban benar, pembangunan prompt, pemanggilan model,
// parse balasan, dan perakitan dokumen pembahasan.
func (s *service) Generate(ctx context.Context, row question.Row) (string, error) {
	log := config.WithContext(ctx).WithField("soal", row.DisplayLabel())

	variant, err := category.Classify(row.Category, row.SubCategory)
	if err != nil {
		return "", err
	}

	options := question.BuildOptions(row)
	correct := inference.CorrectIndices(row, options)
	pctx := prompt.Build(row, options, correct, variant)

	orderedCorrect := inference.OrderByScore(pctx.CorrectIndices, options)
	orderedIncorrect := inference.OrderByScore(pctx.IncorrectIndices, options)

	if len(orderedCorrect) == 0 {
		return "", ErrNoCorrectAnswer
	}

	raw, err := s.provider.SendPrompt(ctx, pctx.Prompt)
	if err != nil {
		return "", err
	}

	parsed, err := ParseResponse(StripCodeFence(raw))
	if err != nil {
		var unparseable *UnparseableError
		if errors.As(err, &unparseable) {
			unparseable.Raw = TruncateText(unparseable.Raw, RawDiagnosticLimit)
		}
		return "", err
	}

	// Varian numerik butuh minimal empat paragraf berbeda. Satu percobaan
	// ulang dengan prompt yang dipertegas; bila tetap gagal, balasan pertama
	// dipakai apa adanya.
	if variant == category.VariantNumericTIU && !HasSufficientNumericDetail(parsed) {
		log.Warn("detail numerik kurang, mencoba ulang dengan prompt dipertegas")
		retryPrompt := prompt.AmendInsufficientDetail(pctx.Prompt, MinNumericParagraphs)
		if retryRaw, retryErr := s.provider.SendPrompt(ctx, retryPrompt); retryErr == nil {
			if retryParsed, parseErr := ParseResponse(StripCodeFence(retryRaw)); parseErr == nil {
				parsed = retryParsed
			}
		}
	}

	doc := Assemble(AssembleInput{
		Parsed:           parsed,
		Options:          options,
		CorrectIndices:   orderedCorrect,
		IncorrectIndices: orderedIncorrect,
		Variant:          variant,
		IncludeScores:    category.IncludeScores(row.Category),
		QuestionSummary:  pctx.QuestionSummary,
	})

	log.Infof("pembahasan dirakit dengan %d fragmen", len(doc.Fragments))
	return doc.Text(), nil
}
