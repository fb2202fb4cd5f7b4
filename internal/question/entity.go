package question

// OptionSlots adalah jumlah slot opsi tetap (A-E) pada setiap soal.
const OptionSlots = 5

// Row adalah satu baris soal pilihan ganda dari worksheet sumber.
// Kolom yang tidak ada pada sheet menjadi string kosong.
type Row struct {
	No                string `json:"no"`
	ID                string `json:"id"`
	Category          string `json:"category"`
	SubCategory       string `json:"sub_category"`
	Program           string `json:"program"`
	Question          string `json:"question"`
	AnswerHeaderTrue  string `json:"answer_header_true"`
	OptionNumber      string `json:"option_number"`
	OptionNumberScore string `json:"option_number_score"`
	Explanation       string `json:"explanation"`
	ExplanationAI     string `json:"explanation_ai"`
	Tags              string `json:"tags"`
	QuestionKeyword   string `json:"question_keyword"`

	OptionTexts  [OptionSlots]string `json:"option_texts"`
	OptionScores [OptionSlots]string `json:"option_scores"`
}

// ExplanationColumn adalah kolom hasil yang ditulis kembali ke sheet.
const ExplanationColumn = "explanation_ai"

var optionTextColumns = [OptionSlots]string{
	"option_a_text",
	"option_b_text",
	"option_c_text",
	"option_d_text",
	"option_e_text",
}

var optionScoreColumns = [OptionSlots]string{
	"option_a_score",
	"option_b_score",
	"option_c_score",
	"option_d_score",
	"option_e_score",
}

// RowFromRecord membangun Row dari satu record worksheet (header -> nilai sel).
func RowFromRecord(record map[string]string) Row {
	row := Row{
		No:                record["no"],
		ID:                record["id"],
		Category:          record["category"],
		SubCategory:       record["sub_category"],
		Program:           record["program"],
		Question:          record["question"],
		AnswerHeaderTrue:  record["answer_header_true"],
		OptionNumber:      record["option_number"],
		OptionNumberScore: record["option_number_score"],
		Explanation:       record["explanation"],
		ExplanationAI:     record[ExplanationColumn],
		Tags:              record["tags"],
		QuestionKeyword:   record["question_keyword"],
	}
	for i := 0; i < OptionSlots; i++ {
		row.OptionTexts[i] = record[optionTextColumns[i]]
		row.OptionScores[i] = record[optionScoreColumns[i]]
	}
	return row
}

// DisplayLabel mengembalikan label baris untuk pelaporan (nomor soal bila ada).
func (r Row) DisplayLabel() string {
	if r.No != "" {
		return r.No
	}
	return r.ID
}
