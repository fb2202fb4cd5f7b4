package category

import (
	"strings"

	"github.com/btw-edu/pembahasan-lambda/internal/question"
)

// Variant adalah salah satu dari lima gaya template pembahasan.
type Variant string

const (
	VariantNumericTIU     Variant = "TIU_NUMERIK"
	VariantVerbalSilogime Variant = "TIU_VERBAL_SILOGISME"
	VariantVerbalAnalogi  Variant = "TIU_VERBAL_ANALOGI"
	VariantVerbalAnalitis Variant = "TIU_VERBAL_ANALITIS"
	VariantDefault        Variant = "DEFAULT"
)

// ExcludedError menandai baris yang tidak boleh diproses sama sekali
// berdasarkan subkategorinya.
type ExcludedError struct {
	Reason string
}

func (e *ExcludedError) Error() string {
	return e.Reason
}

// Classify memilih varian template dari kategori dan subkategori baris.
// Deterministik; satu-satunya kegagalan adalah subkategori yang dikecualikan.
func Classify(categoryValue, subCategoryValue string) (Variant, error) {
	categoryNorm := question.NormalizeLabel(categoryValue)
	if categoryNorm != "tiu" {
		return VariantDefault, nil
	}

	subNorm := question.NormalizeLabel(subCategoryValue)
	switch {
	case strings.HasPrefix(subNorm, "figural"):
		return "", &ExcludedError{Reason: "subkategori TIU figural di-skip."}
	case strings.HasPrefix(subNorm, "numerik deret"):
		return "", &ExcludedError{Reason: "subkategori TIU numerik deret di-skip."}
	case strings.HasPrefix(subNorm, "numerik"):
		return VariantNumericTIU, nil
	case subNorm == "verbal silogisme":
		return VariantVerbalSilogime, nil
	case subNorm == "verbal analogi":
		return VariantVerbalAnalogi, nil
	case subNorm == "verbal analitis":
		return VariantVerbalAnalitis, nil
	default:
		return VariantDefault, nil
	}
}

// OmitIncorrect melaporkan apakah varian menekan seluruh bagian opsi salah.
func OmitIncorrect(v Variant) bool {
	return v == VariantNumericTIU
}

// IncludeScores melaporkan apakah label opsi diberi akhiran skor. Hanya
// kategori TKP yang opsinya berbobot.
func IncludeScores(categoryValue string) bool {
	return question.NormalizeLabel(categoryValue) == "tkp"
}
