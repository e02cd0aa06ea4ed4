package seeder

import (
	"context"

	"panduan-karier/internal/database"
)

type CareersSeeder struct{}

func (CareersSeeder) Name() string { return "careers" }

func (CareersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "careers",
		"id", "name", "description", "subcategory", "r", "i", "a", "s", "e", "c", "created_at"); err != nil {
		return err
	}
	return insertCatalogRows(ctx, db, "careers", careerRows)
}

var careerRows = []catalogRow{
	{ID: "DS01", Name: "Ilmuwan Data (Data Scientist)", Subcategory: "Teknologi",
		Description: "Menganalisis data kompleks untuk menemukan tren dan wawasan yang dapat digunakan untuk pengambilan keputusan.",
		R:           2, I: 10, A: 4, S: 4, E: 6, C: 7},
	{ID: "PG01", Name: "Programmer / Software Developer", Subcategory: "Teknologi",
		Description: "Merancang, menulis, dan memelihara kode untuk menciptakan aplikasi perangkat lunak.",
		R:           4, I: 9, A: 5, S: 3, E: 4, C: 8},
	{ID: "DR01", Name: "Dokter Umum", Subcategory: "Kesehatan",
		Description: "Memeriksa, mendiagnosis, dan merawat pasien sebagai lini pertama layanan kesehatan.",
		R:           4, I: 10, A: 2, S: 8, E: 4, C: 6},
	{ID: "NS01", Name: "Perawat", Subcategory: "Kesehatan",
		Description: "Merawat pasien sehari-hari, memantau kondisi, dan mendampingi proses pemulihan.",
		R:           5, I: 6, A: 2, S: 10, E: 3, C: 6},
	{ID: "CH01", Name: "Chef Profesional", Subcategory: "Kuliner & Perhotelan",
		Description: "Memimpin dapur, menciptakan menu, dan memastikan kualitas makanan yang disajikan.",
		R:           8, I: 3, A: 7, S: 5, E: 6, C: 4},
	{ID: "CE02", Name: "Insinyur Sipil", Subcategory: "Teknik & Industri",
		Description: "Merancang dan mengawasi pembangunan infrastruktur agar aman, efisien, dan tahan lama.",
		R:           9, I: 8, A: 3, S: 3, E: 5, C: 7},
	{ID: "EL01", Name: "Teknisi Listrik", Subcategory: "Teknik & Industri",
		Description: "Memasang, merawat, dan memperbaiki instalasi serta peralatan kelistrikan.",
		R:           10, I: 5, A: 2, S: 3, E: 3, C: 5},
	{ID: "GD01", Name: "Desainer Grafis", Subcategory: "Seni & Desain",
		Description: "Menciptakan konsep visual untuk mengkomunikasikan ide yang menginspirasi, menginformasikan, atau memikat konsumen.",
		R:           2, I: 3, A: 10, S: 4, E: 6, C: 5},
	{ID: "UX01", Name: "Desainer UI/UX", Subcategory: "Seni & Desain",
		Description: "Merancang antarmuka dan pengalaman pengguna produk digital agar mudah dan menyenangkan dipakai.",
		R:           2, I: 6, A: 9, S: 5, E: 5, C: 4},
	{ID: "WR01", Name: "Penulis Konten", Subcategory: "Seni & Desain",
		Description: "Menulis artikel, naskah, dan materi kreatif untuk berbagai media dan audiens.",
		R:           1, I: 6, A: 9, S: 5, E: 5, C: 4},
	{ID: "CNS01", Name: "Konselor Sekolah", Subcategory: "Sosial & Pendidikan",
		Description: "Membantu siswa dengan masalah akademik, pribadi, dan sosial, serta membimbing perencanaan karier mereka.",
		R:           1, I: 7, A: 5, S: 10, E: 6, C: 4},
	{ID: "TR01", Name: "Guru", Subcategory: "Sosial & Pendidikan",
		Description: "Merancang dan menyampaikan pembelajaran serta membimbing perkembangan siswa.",
		R:           3, I: 6, A: 5, S: 10, E: 5, C: 5},
	{ID: "ENT01", Name: "Pengusaha (Entrepreneur)", Subcategory: "Bisnis & Manajemen",
		Description: "Membangun dan menjalankan bisnis sendiri, mengambil risiko finansial dengan harapan mendapat keuntungan.",
		R:           4, I: 5, A: 6, S: 6, E: 10, C: 7},
	{ID: "PM01", Name: "Manajer Proyek", Subcategory: "Bisnis & Manajemen",
		Description: "Merencanakan, mengoordinasikan, dan mengawal proyek agar selesai tepat waktu dan sesuai anggaran.",
		R:           4, I: 6, A: 3, S: 7, E: 9, C: 8},
	{ID: "MK02", Name: "Spesialis Pemasaran Digital", Subcategory: "Bisnis & Manajemen",
		Description: "Merancang kampanye daring dan menganalisis performanya untuk menjangkau audiens yang tepat.",
		R:           1, I: 5, A: 7, S: 6, E: 9, C: 5},
	{ID: "ACC01", Name: "Akuntan Publik", Subcategory: "Keuangan",
		Description: "Memeriksa catatan keuangan untuk memastikan akurasi dan kepatuhan terhadap hukum dan peraturan.",
		R:           1, I: 6, A: 2, S: 4, E: 5, C: 10},
	{ID: "AUD01", Name: "Auditor", Subcategory: "Keuangan",
		Description: "Menilai laporan dan proses keuangan organisasi untuk menemukan risiko dan penyimpangan.",
		R:           1, I: 7, A: 2, S: 4, E: 5, C: 10},
	{ID: "FA01", Name: "Analis Keuangan", Subcategory: "Keuangan",
		Description: "Menganalisis data keuangan dan pasar untuk merekomendasikan keputusan investasi.",
		R:           1, I: 8, A: 2, S: 4, E: 6, C: 9},
}
