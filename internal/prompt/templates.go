package prompt

import "github.com/btw-edu/pembahasan-lambda/internal/category"

const (
	// TableStyle dan TableCellStyle dipakai pada template verbal analitis dan
	// divalidasi lagi oleh perakit dokumen.
	TableStyle     = "border-collapse:collapse; table-layout:auto; width:50%"
	TableCellStyle = "text-align:center; white-space:nowrap"
)

// variantTemplate memegang contoh format wajib, kalimat pembuka gaya bahasa,
// dan aturan tambahan khusus untuk satu varian.
type variantTemplate struct {
	format string
	intro  string
	rules  string
}

var templates = map[category.Variant]variantTemplate{
	category.VariantNumericTIU: {
		format: "<p style=\"text-align:justify\"><strong>Jawaban yang tepat: ...</strong></p>\n" +
			"<p style=\"text-align:justify\">Penjelasan naratif dengan line break...</p>",
		intro: "Gunakan gaya bahasa formal, edukatif, dan jelas dengan langkah penyelesaian yang runtut.",
		rules: "\n- Khusus TIU subkategori Numerik, fokus pada jawaban yang tepat saja. " +
			"Isi `incorrect_reasons` dengan objek kosong {} dan jangan memberikan alasan opsi salah.\n" +
			"- Jelaskan langkah demi langkah secara naratif dengan gaya formal dan edukatif.\n" +
			"- Setiap elemen `detail_paragraphs` adalah satu paragraf terpisah.\n" +
			"- Pisahkan kalimat penjelasan dan rumus ke paragraf terpisah (rumus berdiri sendiri di paragraf sendiri).\n" +
			"- Jangan gunakan `<br />`, `<ol>`, `<ul>`, atau tag `<p>` di dalam `detail_paragraphs`.\n" +
			"- Boleh menggunakan tag `<strong>` dan `<em>` untuk penekanan sederhana di dalam paragraf.\n" +
			"- Hindari label seperti 'Langkah 1/2/3' dan jangan gunakan <ol>/<ul>.\n" +
			"- Isi `correct_summary` hanya dengan jawaban yang tepat tanpa penjelasan tambahan.\n" +
			"- Gunakan MathTeX inline dengan pembungkus `\\( ... \\)` untuk rumus di dalam kalimat.\n" +
			"- Jangan menuliskan tag `<span class=\"math-tex\">` karena sistem akan membungkus otomatis.\n" +
			"- Jika ada rumus umum, tulis kalimat '... dihitung dengan rumus' lalu tampilkan rumus, " +
			"lanjutkan dengan paragraf 'Substitusikan nilainya:', 'Hitung selisihnya:', " +
			"'Sederhanakan pecahan:', dan tutup dengan paragraf kesimpulan.\n" +
			"- Pastikan JSON valid dengan meng-escape backslash sebagai `\\\\` di dalam string JSON.",
	},
	category.VariantVerbalSilogime: {
		format: "<p style=\"text-align:justify\"><strong>Jawaban yang tepat: ...</strong></p>\n" +
			"<p style=\"text-align:justify\">Premis:</p>\n" +
			"<p style=\"text-align:justify\">Simbol logika:</p>\n" +
			"<p style=\"text-align:justify\">Proses penarikan kesimpulan:</p>\n" +
			"<p style=\"text-align:justify\">Kesimpulan akhir:</p>\n" +
			"<p style=\"text-align:justify\"><strong>Jawaban yang kurang tepat:</strong></p>\n" +
			"<p style=\"text-align:justify\">- <strong>Opsi salah 1:</strong> alasan singkat...</p>",
		intro: "Pembahasan harus jelas, terstruktur, dan mudah dimengerti dengan penjelasan singkat " +
			"menggunakan konsep silogisme.",
		rules: "\n- Jelaskan jawaban secara singkat dan terstruktur menggunakan konsep silogisme.\n" +
			"- Identifikasi seluruh premis (premis mayor, minor, tambahan jika ada) dan jelaskan " +
			"masing-masing dalam kalimat sehari-hari.\n" +
			"- Representasikan setiap premis ke dalam simbol logika (P, Q, R, dst) sebagai rumus bantu " +
			"dan jelaskan makna setiap simbol.\n" +
			"- Jelaskan proses penarikan kesimpulan secara bertahap dan naratif, tekankan hubungan logis " +
			"antar premis serta batasan kesimpulan.\n" +
			"- Akhiri dengan kesimpulan akhir yang eksplisit dan mudah dipahami.\n" +
			"- Gunakan bahasa sederhana, logis, edukatif; hindari simbol logika formal tanpa penjelasan konsep.\n" +
			"- Bagi `detail_paragraphs` menjadi 4 paragraf: premis, simbol, proses, kesimpulan.",
	},
	category.VariantVerbalAnalogi: {
		format: "<p style=\"text-align:justify\"><strong>Jawaban yang tepat: ...</strong></p>\n" +
			"<p style=\"text-align:justify\"><strong>Alasan:</strong></p>\n" +
			"<p style=\"text-align:justify\"><strong>1. Poin alasan pertama:</strong> penjelasan...</p>\n" +
			"<p style=\"text-align:justify\"><strong>2. Poin alasan kedua:</strong> penjelasan...</p>\n" +
			"<p style=\"text-align:justify\"><strong>3. Poin alasan ketiga:</strong> penjelasan...</p>\n" +
			"<p style=\"text-align:justify\"><strong>Jawaban yang kurang tepat:</strong></p>\n" +
			"<p style=\"text-align:justify\">- <strong>Opsi salah 1:</strong> alasan singkat...</p>",
		intro: "Pembahasan harus jelas dan mudah dimengerti. Berikan alasan jawaban benar dalam " +
			"2-3 poin terstruktur.",
		rules: "\n- Buat paragraf kedua berisi '<strong>Alasan:</strong>'.\n" +
			"- Sampaikan 2-3 poin alasan sebagai paragraf terpisah dengan format " +
			"`<strong>1. ...:</strong> penjelasan...`, lanjut ke poin 2 dan 3.\n" +
			"- Setiap poin alasan harus menjelaskan hubungan inti analogi secara ringkas dan jelas.",
	},
	category.VariantVerbalAnalitis: {
		format: "<p style=\"text-align:justify\"><strong>Jawaban yang tepat: ...</strong></p>\n" +
			"<p style=\"text-align:justify\">Paragraf penjelasan runtut...</p>\n" +
			"<p style=\"text-align:justify\">Paragraf penjelasan lanjutan...</p>\n" +
			"<table border=\"1\" cellpadding=\"0\" cellspacing=\"0\" style=\"" + TableStyle + "\">...</table>\n" +
			"<p style=\"text-align:justify\">Kalimat ringkasan setelah tabel...</p>\n" +
			"<p style=\"text-align:justify\"><strong>Jawaban yang kurang tepat:</strong></p>\n" +
			"<p style=\"text-align:justify\">- <strong>Opsi salah 1:</strong> alasan singkat...</p>",
		intro: "Pembahasan harus jelas, runtut, dan mudah dimengerti dengan penjelasan naratif " +
			"tanpa bullet atau numbering.",
		rules: "\n- Gunakan paragraf naratif tanpa bullet/numbering; jangan gunakan <ol>, <ul>, " +
			"atau awalan 1/2/3.\n" +
			"- Jelaskan penempatan jadwal atau urutan secara bertahap dalam 3-5 paragraf.\n" +
			"- Jika memungkinkan, sertakan tabel jadwal dalam `table_html` (boleh string kosong jika tidak ada).\n" +
			"- Gunakan tabel HTML dengan style table ` " + TableStyle + " ` dan setiap <td> memakai " +
			"style `" + TableCellStyle + "` serta `border=\"1\" cellpadding=\"0\" cellspacing=\"0\"`.\n" +
			"- Isi `detail_paragraphs` tetap berupa teks polos tanpa tag HTML.\n" +
			"- `table_html` hanya berisi markup tabel (tanpa tag <p>).",
	},
	category.VariantDefault: {
		format: "<p style=\"text-align:justify\"><strong>Jawaban yang tepat: ...</strong></p>\n" +
			"<p style=\"text-align:justify\">Paragraf penjelasan lanjutan...</p>\n" +
			"<p style=\"text-align:justify\"><strong>Jawaban yang kurang tepat:</strong></p>\n" +
			"<p style=\"text-align:justify\">- <strong>Opsi salah 1:</strong> alasan singkat...</p>\n" +
			"<p style=\"text-align:justify\">- <strong>Opsi salah 2:</strong> alasan singkat...</p>",
		intro: "Pembahasan harus jelas dan mudah dimengerti. Jelaskan alasan jawaban benar secara menyeluruh " +
			"(minimal 3 kalimat) dan uraikan mengapa tiap opsi salah tidak memenuhi kriteria.",
		rules: "",
	},
}

// incorrectRules hanya ditambahkan ketika varian menjelaskan opsi salah.
const incorrectRules = "\n- Tambahkan paragraf khusus dengan teks 'Jawaban yang kurang tepat:' (bold) setelah penjelasan jawaban benar.\n" +
	"- Tambahkan paragraf terpisah untuk setiap opsi salah dengan format '- <strong>...:</strong> penjelasan...'. " +
	"Teks sebelum titik dua HARUS persis menyalin isi opsi tanpa perubahan atau sinonim. " +
	"Setiap alasan minimal dua kalimat yang jelas.\n" +
	"- Setelah titik dua pada opsi salah, lanjutkan kalimat dengan huruf kecil kecuali untuk nama diri atau kata 'Anda'. " +
	"Hindari mengawali dengan kata 'adalah'.\n" +
	"- Jangan menulis ulang opsi yang benar di bagian opsi salah.\n" +
	"- Nilai dalam `incorrect_reasons` adalah penjelasan mendalam (minimal dua kalimat) untuk tiap opsi salah tanpa menyalin ulang teks opsi.\n" +
	"- Nilai `correct_summary` hanya berisi penjelasan singkat (tanpa kembali menuliskan frasa 'Jawaban yang tepat'). " +
	"Jika tidak ada penjelasan tambahan, kosongkan string tersebut.\n" +
	"- Gunakan style 'text-align:justify' pada setiap tag <p> dan <strong> untuk penekanan."
