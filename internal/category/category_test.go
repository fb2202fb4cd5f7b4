package category_test

import (
	"errors"
	"testing"

	"github.com/btw-edu/pembahasan-lambda/internal/category"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		category    string
		subCategory string
		want        category.Variant
	}{
		{"NumerikDasar", "TIU", "Numerik Dasar", category.VariantNumericTIU},
		{"NumerikSoalCerita", "tiu", "numerik soal cerita", category.VariantNumericTIU},
		{"VerbalSilogisme", "TIU", "Verbal Silogisme", category.VariantVerbalSilogime},
		{"VerbalAnalogi", "TIU", "Verbal Analogi", category.VariantVerbalAnalogi},
		{"VerbalAnalitis", "TIU", " Verbal  Analitis ", category.VariantVerbalAnalitis},
		{"VerbalLain", "TIU", "Verbal Lainnya", category.VariantDefault},
		{"NonTIU", "TWK", "Numerik", category.VariantDefault},
		{"TKP", "TKP", "", category.VariantDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := category.Classify(tc.category, tc.subCategory)
			if err != nil {
				t.Fatalf("Classify mengembalikan error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Classify(%q, %q) = %q, harapan %q", tc.category, tc.subCategory, got, tc.want)
			}
		})
	}
}

func TestClassifyExcluded(t *testing.T) {
	t.Run("Figural", func(t *testing.T) {
		_, err := category.Classify("TIU", "Figural")
		var excluded *category.ExcludedError
		if !errors.As(err, &excluded) {
			t.Fatalf("harapan ExcludedError, hasil %v", err)
		}
		if excluded.Reason != "subkategori TIU figural di-skip." {
			t.Errorf("alasan skip = %q", excluded.Reason)
		}
	})

	t.Run("NumerikDeret", func(t *testing.T) {
		_, err := category.Classify("TIU", "Numerik Deret Angka")
		var excluded *category.ExcludedError
		if !errors.As(err, &excluded) {
			t.Fatalf("harapan ExcludedError, hasil %v", err)
		}
	})

	t.Run("FiguralNonTIUNotExcluded", func(t *testing.T) {
		got, err := category.Classify("TWK", "Figural")
		if err != nil || got != category.VariantDefault {
			t.Errorf("Classify = %q, %v; harapan DEFAULT tanpa error", got, err)
		}
	})
}

func TestIncludeScores(t *testing.T) {
	if !category.IncludeScores(" TKP ") {
		t.Error("TKP seharusnya menyertakan skor")
	}
	if category.IncludeScores("TIU") {
		t.Error("TIU seharusnya tanpa skor")
	}
}

func TestOmitIncorrect(t *testing.T) {
	if !category.OmitIncorrect(category.VariantNumericTIU) {
		t.Error("TIU numerik seharusnya tanpa bagian opsi salah")
	}
	if category.OmitIncorrect(category.VariantDefault) {
		t.Error("varian default seharusnya menjelaskan opsi salah")
	}
}
