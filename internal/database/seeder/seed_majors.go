package seeder

import (
	"context"
	"fmt"

	"panduan-karier/internal/database"
)

type catalogRow struct {
	ID          string
	Name        string
	Description string
	Subcategory string
	R, I, A     int
	S, E, C     int
}

type MajorsSeeder struct{}

func (MajorsSeeder) Name() string { return "majors" }

func (MajorsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "majors",
		"id", "name", "description", "subcategory", "r", "i", "a", "s", "e", "c", "created_at"); err != nil {
		return err
	}
	return insertCatalogRows(ctx, db, "majors", majorRows)
}

func insertCatalogRows(ctx context.Context, db database.DB, table string, rows []catalogRow) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, row := range rows {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO `+table+` (id, name, description, subcategory, r, i, a, s, e, c)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (id) DO NOTHING`,
			row.ID, row.Name, row.Description, row.Subcategory,
			row.R, row.I, row.A, row.S, row.E, row.C,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var majorRows = []catalogRow{
	{ID: "CS01", Name: "Ilmu Komputer", Subcategory: "Teknologi",
		Description: "Mempelajari desain dan pengembangan sistem komputasi, perangkat lunak, dan jaringan.",
		R:           4, I: 9, A: 5, S: 3, E: 4, C: 7},
	{ID: "SI01", Name: "Sistem Informasi", Subcategory: "Teknologi",
		Description: "Menjembatani kebutuhan bisnis dan teknologi melalui perancangan sistem informasi organisasi.",
		R:           3, I: 8, A: 4, S: 4, E: 5, C: 8},
	{ID: "MD01", Name: "Kedokteran", Subcategory: "Kesehatan",
		Description: "Mempelajari ilmu medis untuk mendiagnosis, mengobati, dan mencegah penyakit pada manusia.",
		R:           4, I: 9, A: 3, S: 8, E: 4, C: 6},
	{ID: "FM01", Name: "Farmasi", Subcategory: "Kesehatan",
		Description: "Mempelajari formulasi, pembuatan, dan penggunaan obat yang aman dan efektif.",
		R:           4, I: 9, A: 2, S: 5, E: 3, C: 7},
	{ID: "NR01", Name: "Ilmu Keperawatan", Subcategory: "Kesehatan",
		Description: "Mempersiapkan perawat profesional yang merawat pasien secara holistik di berbagai layanan kesehatan.",
		R:           5, I: 6, A: 3, S: 9, E: 4, C: 5},
	{ID: "ME01", Name: "Teknik Mesin", Subcategory: "Teknik",
		Description: "Fokus pada desain, manufaktur, dan pemeliharaan sistem mekanik menggunakan prinsip fisika dan material.",
		R:           9, I: 8, A: 2, S: 2, E: 4, C: 6},
	{ID: "CE01", Name: "Teknik Sipil", Subcategory: "Teknik",
		Description: "Mempelajari perancangan dan pembangunan infrastruktur seperti gedung, jembatan, dan jalan.",
		R:           9, I: 7, A: 3, S: 3, E: 5, C: 6},
	{ID: "DKV01", Name: "Desain Komunikasi Visual", Subcategory: "Seni & Desain",
		Description: "Menggabungkan seni dan teknologi untuk menyampaikan pesan melalui media visual seperti grafis, video, dan web.",
		R:           3, I: 4, A: 9, S: 5, E: 6, C: 4},
	{ID: "AR01", Name: "Arsitektur", Subcategory: "Seni & Desain",
		Description: "Memadukan seni, teknik, dan lingkungan untuk merancang bangunan dan ruang yang fungsional.",
		R:           6, I: 6, A: 9, S: 3, E: 5, C: 5},
	{ID: "SM01", Name: "Seni Musik", Subcategory: "Seni & Desain",
		Description: "Mengembangkan keterampilan komposisi, penampilan, dan produksi musik secara profesional.",
		R:           3, I: 3, A: 10, S: 5, E: 4, C: 2},
	{ID: "PS01", Name: "Psikologi", Subcategory: "Sosial & Humaniora",
		Description: "Mempelajari perilaku dan proses mental manusia, serta penerapannya untuk membantu individu dan kelompok.",
		R:           2, I: 8, A: 5, S: 9, E: 6, C: 4},
	{ID: "KM01", Name: "Ilmu Komunikasi", Subcategory: "Sosial & Humaniora",
		Description: "Mempelajari cara manusia bertukar pesan melalui media, organisasi, dan hubungan antarpribadi.",
		R:           2, I: 5, A: 7, S: 8, E: 7, C: 4},
	{ID: "PD01", Name: "Pendidikan", Subcategory: "Sosial & Humaniora",
		Description: "Mempersiapkan pendidik yang merancang pembelajaran dan membimbing perkembangan peserta didik.",
		R:           3, I: 6, A: 5, S: 9, E: 5, C: 5},
	{ID: "BM01", Name: "Manajemen Bisnis", Subcategory: "Bisnis & Manajemen",
		Description: "Mempelajari cara merencanakan, mengorganisir, dan mengelola sumber daya untuk mencapai tujuan bisnis.",
		R:           2, I: 4, A: 4, S: 6, E: 9, C: 8},
	{ID: "HK01", Name: "Ilmu Hukum", Subcategory: "Bisnis & Manajemen",
		Description: "Mempelajari sistem hukum, perundang-undangan, dan penerapannya dalam masyarakat dan bisnis.",
		R:           2, I: 7, A: 4, S: 6, E: 9, C: 6},
	{ID: "MK01", Name: "Marketing", Subcategory: "Bisnis & Manajemen",
		Description: "Mempelajari strategi memahami pasar, membangun merek, dan memasarkan produk atau jasa.",
		R:           2, I: 4, A: 7, S: 6, E: 9, C: 5},
	{ID: "AC01", Name: "Akuntansi", Subcategory: "Keuangan",
		Description: "Mempelajari pengukuran, pemrosesan, dan komunikasi informasi keuangan suatu entitas bisnis.",
		R:           2, I: 5, A: 2, S: 4, E: 6, C: 9},
	{ID: "MF01", Name: "Manajemen Keuangan", Subcategory: "Keuangan",
		Description: "Mempelajari pengelolaan dana, investasi, dan perencanaan keuangan organisasi.",
		R:           2, I: 6, A: 2, S: 4, E: 7, C: 9},
	{ID: "ST01", Name: "Statistika", Subcategory: "Keuangan",
		Description: "Mempelajari pengumpulan, analisis, dan interpretasi data untuk pengambilan keputusan.",
		R:           2, I: 8, A: 2, S: 3, E: 4, C: 9},
}
