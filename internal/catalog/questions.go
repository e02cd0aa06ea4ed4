package catalog

import "panduan-karier/internal/domain/riasec"

// Question is one Likert statement of the bank. Ids are stable; the category
// tag drives score aggregation.
type Question struct {
	ID       int
	Text     string
	Category riasec.Category
}

// Bank bundles the questions with the normalization metadata the scoring core
// needs for whichever variant is in use.
type Bank struct {
	Mode      string
	Questions []Question
	Bounds    riasec.Bank
}

const (
	ModeFull  = "full"
	ModeQuick = "quick"
)

var questions = []Question{
	// Realistic (R)
	{ID: 1, Text: "Saya suka bekerja dengan peralatan atau mesin.", Category: riasec.Realistic},
	{ID: 2, Text: "Saya suka memperbaiki barang-barang elektronik.", Category: riasec.Realistic},
	{ID: 3, Text: "Saya lebih suka bekerja di luar ruangan daripada di dalam kantor.", Category: riasec.Realistic},
	{ID: 4, Text: "Saya senang membangun atau merakit sesuatu.", Category: riasec.Realistic},
	{ID: 5, Text: "Saya tertarik pada bidang otomotif atau konstruksi.", Category: riasec.Realistic},
	{ID: 6, Text: "Saya menikmati aktivitas fisik yang menantang.", Category: riasec.Realistic},
	{ID: 7, Text: "Saya lebih suka praktik langsung daripada membaca teori.", Category: riasec.Realistic},
	{ID: 8, Text: "Saya senang berkebun atau merawat tanaman dan hewan.", Category: riasec.Realistic},
	{ID: 9, Text: "Saya cepat memahami cara kerja sebuah alat baru.", Category: riasec.Realistic},
	{ID: 10, Text: "Saya suka pekerjaan yang hasilnya bisa dilihat dan disentuh.", Category: riasec.Realistic},
	{ID: 11, Text: "Saya nyaman menggunakan perkakas seperti obeng, gergaji, atau solder.", Category: riasec.Realistic},
	{ID: 12, Text: "Saya tertarik mengikuti pelatihan keterampilan teknis.", Category: riasec.Realistic},
	{ID: 13, Text: "Saya senang memasak atau membuat sesuatu di dapur.", Category: riasec.Realistic},
	{ID: 14, Text: "Saya lebih memilih tugas lapangan daripada tugas administratif.", Category: riasec.Realistic},
	{ID: 15, Text: "Saya menikmati merawat atau memodifikasi kendaraan.", Category: riasec.Realistic},

	// Investigative (I)
	{ID: 16, Text: "Saya senang memecahkan masalah yang rumit dan analitis.", Category: riasec.Investigative},
	{ID: 17, Text: "Saya menikmati melakukan penelitian untuk menemukan fakta baru.", Category: riasec.Investigative},
	{ID: 18, Text: "Saya tertarik pada mata pelajaran sains dan matematika.", Category: riasec.Investigative},
	{ID: 19, Text: "Saya suka membaca artikel ilmiah atau buku non-fiksi.", Category: riasec.Investigative},
	{ID: 20, Text: "Saya sering bertanya 'mengapa' tentang cara kerja sesuatu.", Category: riasec.Investigative},
	{ID: 21, Text: "Saya senang menganalisis data untuk menemukan pola.", Category: riasec.Investigative},
	{ID: 22, Text: "Saya suka bereksperimen untuk menguji sebuah dugaan.", Category: riasec.Investigative},
	{ID: 23, Text: "Saya menikmati teka-teki logika atau permainan strategi.", Category: riasec.Investigative},
	{ID: 24, Text: "Saya lebih percaya bukti daripada pendapat.", Category: riasec.Investigative},
	{ID: 25, Text: "Saya betah belajar sendiri tentang topik yang membuat saya penasaran.", Category: riasec.Investigative},
	{ID: 26, Text: "Saya suka mengikuti perkembangan teknologi dan penemuan baru.", Category: riasec.Investigative},
	{ID: 27, Text: "Saya menikmati pelajaran laboratorium di sekolah.", Category: riasec.Investigative},
	{ID: 28, Text: "Saya senang membandingkan beberapa sumber sebelum menarik kesimpulan.", Category: riasec.Investigative},
	{ID: 29, Text: "Saya tertarik memahami perilaku manusia secara ilmiah.", Category: riasec.Investigative},
	{ID: 30, Text: "Saya teliti memeriksa sebuah jawaban sebelum menganggapnya benar.", Category: riasec.Investigative},

	// Artistic (A)
	{ID: 31, Text: "Saya memiliki imajinasi yang kuat.", Category: riasec.Artistic},
	{ID: 32, Text: "Saya menikmati kegiatan seperti melukis, menulis, atau bermain musik.", Category: riasec.Artistic},
	{ID: 33, Text: "Saya suka mencari cara baru untuk mengekspresikan ide.", Category: riasec.Artistic},
	{ID: 34, Text: "Saya tidak suka pekerjaan dengan aturan yang terlalu kaku.", Category: riasec.Artistic},
	{ID: 35, Text: "Saya menghargai keindahan dalam seni dan desain.", Category: riasec.Artistic},
	{ID: 36, Text: "Saya sering mencoret-coret atau membuat sketsa saat melamun.", Category: riasec.Artistic},
	{ID: 37, Text: "Saya senang menonton film atau pertunjukan lalu membahas maknanya.", Category: riasec.Artistic},
	{ID: 38, Text: "Saya suka menulis cerita, puisi, atau lirik lagu.", Category: riasec.Artistic},
	{ID: 39, Text: "Saya tertarik memadukan warna, bentuk, atau suara menjadi karya baru.", Category: riasec.Artistic},
	{ID: 40, Text: "Saya merasa bebas ketika mengerjakan proyek tanpa format baku.", Category: riasec.Artistic},
	{ID: 41, Text: "Saya suka mendekorasi ruangan atau menata tampilan sesuatu.", Category: riasec.Artistic},
	{ID: 42, Text: "Saya menikmati bermain peran atau tampil di atas panggung.", Category: riasec.Artistic},
	{ID: 43, Text: "Saya senang memotret atau membuat video kreatif.", Category: riasec.Artistic},
	{ID: 44, Text: "Saya mudah mendapatkan ide-ide yang tidak biasa.", Category: riasec.Artistic},
	{ID: 45, Text: "Saya lebih suka membuat sesuatu yang orisinal daripada meniru contoh.", Category: riasec.Artistic},

	// Social (S)
	{ID: 46, Text: "Saya suka membantu atau mengajar orang lain.", Category: riasec.Social},
	{ID: 47, Text: "Saya pandai mendengarkan dan memahami perasaan orang lain.", Category: riasec.Social},
	{ID: 48, Text: "Saya senang bekerja dalam tim untuk mencapai tujuan bersama.", Category: riasec.Social},
	{ID: 49, Text: "Saya tertarik pada pekerjaan sosial atau konseling.", Category: riasec.Social},
	{ID: 50, Text: "Saya merasa puas ketika bisa membuat perbedaan dalam kehidupan seseorang.", Category: riasec.Social},
	{ID: 51, Text: "Teman-teman sering curhat atau meminta saran kepada saya.", Category: riasec.Social},
	{ID: 52, Text: "Saya sabar menjelaskan sesuatu sampai orang lain paham.", Category: riasec.Social},
	{ID: 53, Text: "Saya senang mengikuti kegiatan sukarela atau bakti sosial.", Category: riasec.Social},
	{ID: 54, Text: "Saya mudah akrab dengan orang yang baru saya kenal.", Category: riasec.Social},
	{ID: 55, Text: "Saya peka ketika suasana hati seseorang berubah.", Category: riasec.Social},
	{ID: 56, Text: "Saya suka menengahi teman yang sedang berselisih.", Category: riasec.Social},
	{ID: 57, Text: "Saya menikmati merawat orang yang sedang sakit atau kesulitan.", Category: riasec.Social},
	{ID: 58, Text: "Saya senang membimbing adik kelas atau anggota baru.", Category: riasec.Social},
	{ID: 59, Text: "Saya lebih suka bekerja bersama orang daripada bekerja sendirian.", Category: riasec.Social},
	{ID: 60, Text: "Saya berusaha membuat semua orang merasa diterima dalam kelompok.", Category: riasec.Social},

	// Enterprising (E)
	{ID: 61, Text: "Saya suka memimpin sebuah tim atau proyek.", Category: riasec.Enterprising},
	{ID: 62, Text: "Saya pandai meyakinkan atau bernegosiasi dengan orang lain.", Category: riasec.Enterprising},
	{ID: 63, Text: "Saya tertarik untuk memulai bisnis saya sendiri suatu hari nanti.", Category: riasec.Enterprising},
	{ID: 64, Text: "Saya berani mengambil risiko untuk mendapatkan keuntungan.", Category: riasec.Enterprising},
	{ID: 65, Text: "Saya suka berbicara di depan umum atau presentasi.", Category: riasec.Enterprising},
	{ID: 66, Text: "Saya senang berjualan atau menawarkan sesuatu kepada orang lain.", Category: riasec.Enterprising},
	{ID: 67, Text: "Saya menikmati persaingan dan ingin menjadi yang terbaik.", Category: riasec.Enterprising},
	{ID: 68, Text: "Saya sering menjadi orang yang mengambil keputusan dalam kelompok.", Category: riasec.Enterprising},
	{ID: 69, Text: "Saya suka merencanakan acara dan mengajak orang terlibat.", Category: riasec.Enterprising},
	{ID: 70, Text: "Saya percaya diri menyampaikan pendapat di depan banyak orang.", Category: riasec.Enterprising},
	{ID: 71, Text: "Saya tertarik mempelajari strategi pemasaran dan penjualan.", Category: riasec.Enterprising},
	{ID: 72, Text: "Saya senang memotivasi orang lain untuk mencapai target.", Category: riasec.Enterprising},
	{ID: 73, Text: "Saya suka mencari peluang baru yang bisa menghasilkan.", Category: riasec.Enterprising},
	{ID: 74, Text: "Saya bersedia maju pertama ketika dibutuhkan seorang juru bicara.", Category: riasec.Enterprising},
	{ID: 75, Text: "Saya menikmati mengatur pembagian tugas dalam sebuah kegiatan.", Category: riasec.Enterprising},

	// Conventional (C)
	{ID: 76, Text: "Saya suka bekerja dengan data dan angka secara teratur.", Category: riasec.Conventional},
	{ID: 77, Text: "Saya orang yang rapi, terorganisir, dan teliti.", Category: riasec.Conventional},
	{ID: 78, Text: "Saya lebih suka mengikuti instruksi yang jelas daripada membuat aturan sendiri.", Category: riasec.Conventional},
	{ID: 79, Text: "Saya menikmati tugas-tugas yang membutuhkan ketelitian, seperti akuntansi atau manajemen data.", Category: riasec.Conventional},
	{ID: 80, Text: "Saya merasa nyaman dengan rutinitas dan pekerjaan yang terstruktur.", Category: riasec.Conventional},
	{ID: 81, Text: "Saya suka membuat daftar tugas dan mencentangnya satu per satu.", Category: riasec.Conventional},
	{ID: 82, Text: "Saya senang mengarsipkan berkas atau merapikan catatan.", Category: riasec.Conventional},
	{ID: 83, Text: "Saya selalu memeriksa ulang pekerjaan saya sebelum menyerahkannya.", Category: riasec.Conventional},
	{ID: 84, Text: "Saya nyaman mengelola anggaran atau mencatat pengeluaran.", Category: riasec.Conventional},
	{ID: 85, Text: "Saya suka membuat jadwal dan menaatinya.", Category: riasec.Conventional},
	{ID: 86, Text: "Saya menikmati mengisi formulir atau tabel dengan lengkap dan benar.", Category: riasec.Conventional},
	{ID: 87, Text: "Saya terganggu melihat data yang berantakan atau tidak konsisten.", Category: riasec.Conventional},
	{ID: 88, Text: "Saya senang bekerja dengan prosedur yang sudah terbukti berjalan.", Category: riasec.Conventional},
	{ID: 89, Text: "Saya telaten mengerjakan tugas berulang yang menuntut ketepatan.", Category: riasec.Conventional},
	{ID: 90, Text: "Saya suka memastikan dokumen tersimpan di tempat yang semestinya.", Category: riasec.Conventional},
}

// quickIDs is the 18-question strategic subset: three statements per category
// chosen to cover the spread of each dimension.
var quickIDs = map[int]struct{}{
	1: {}, 4: {}, 10: {},
	16: {}, 18: {}, 21: {},
	31: {}, 32: {}, 45: {},
	46: {}, 47: {}, 53: {},
	61: {}, 63: {}, 65: {},
	76: {}, 77: {}, 85: {},
}

// FullQuestionBank returns the complete 90-question bank.
func FullQuestionBank() Bank {
	out := make([]Question, len(questions))
	copy(out, questions)
	return Bank{Mode: ModeFull, Questions: out, Bounds: riasec.FullBank}
}

// QuickQuestionBank returns the 18-question subset with its compensating
// score bounds.
func QuickQuestionBank() Bank {
	out := make([]Question, 0, len(quickIDs))
	for _, q := range questions {
		if _, ok := quickIDs[q.ID]; ok {
			out = append(out, q)
		}
	}
	return Bank{Mode: ModeQuick, Questions: out, Bounds: riasec.QuickBank}
}
