// Package catalog holds the static reference data the scoring core consumes:
// the question bank, per-category display metadata and the motivation
// templates. Everything here is read-only and injected into the core at call
// time; the majors/careers catalog lives in Postgres instead.
package catalog

import "panduan-karier/internal/domain/riasec"

// Detail is the display metadata of one RIASEC category. Names carry a
// parenthetical Indonesian alias the persona builder extracts.
type Detail struct {
	Code        riasec.Category
	Name        string
	Description string
	Keywords    []string
	Careers     []string
	Majors      []string
}

var details = map[riasec.Category]Detail{
	riasec.Realistic: {
		Code:        riasec.Realistic,
		Name:        "Realistic (Si Realistis)",
		Description: "Kamu suka bekerja dengan tangan, peralatan, dan mesin. Kamu menikmati hal-hal yang nyata, praktis, dan menghasilkan sesuatu yang bisa dilihat dan disentuh.",
		Keywords:    []string{"Praktis", "Mekanis", "Atletis", "Alam", "Konkret"},
		Careers:     []string{"Insinyur Mesin", "Pilot", "Chef Profesional", "Ahli Listrik", "Petugas Pemadam Kebakaran", "Atlet"},
		Majors:      []string{"Teknik Mesin", "Teknik Sipil", "Penerbangan", "Ilmu Keolahragaan", "Manajemen Konstruksi", "Agribisnis"},
	},
	riasec.Investigative: {
		Code:        riasec.Investigative,
		Name:        "Investigative (Si Pemikir)",
		Description: "Kamu seorang pemikir yang suka mengamati, belajar, dan memecahkan masalah. Kamu tertarik pada ide, teori, dan bagaimana dunia bekerja. Kamu analitis, penasaran, dan presisi.",
		Keywords:    []string{"Analitis", "Intelektual", "Sains", "Penelitian", "Logis"},
		Careers:     []string{"Ilmuwan Data", "Dokter", "Programmer", "Peneliti", "Analis Keuangan", "Psikolog"},
		Majors:      []string{"Ilmu Komputer", "Kedokteran", "Biologi", "Fisika", "Matematika", "Ekonomi"},
	},
	riasec.Artistic: {
		Code:        riasec.Artistic,
		Name:        "Artistic (Si Kreatif)",
		Description: "Kamu seorang pencipta dengan dunia imajinasi yang kaya. Kamu ekspresif, orisinal, dan suka bekerja dalam situasi yang tidak terstruktur di mana kreativitasmu bisa lepas.",
		Keywords:    []string{"Ekspresif", "Kreatif", "Imajinatif", "Seni", "Inovatif"},
		Careers:     []string{"Desainer Grafis", "Penulis", "Musisi", "Arsitek", "Aktor/Aktris", "Sutradara Film"},
		Majors:      []string{"Desain Komunikasi Visual (DKV)", "Sastra", "Seni Musik", "Arsitektur", "Jurnalistik", "Film dan Televisi"},
	},
	riasec.Social: {
		Code:        riasec.Social,
		Name:        "Social (Si Penolong)",
		Description: "Kamu seorang penolong yang suka bekerja dengan orang lain untuk mencerahkan, membantu, dan melatih. Kamu menikmati interaksi sosial dan peduli pada kesejahteraan orang lain.",
		Keywords:    []string{"Empati", "Sosial", "Kooperatif", "Membantu", "Mengajar"},
		Careers:     []string{"Guru", "Perawat", "Konselor", "Pekerja Sosial", "Manajer HR", "Terapis"},
		Majors:      []string{"Psikologi", "Ilmu Komunikasi", "Pendidikan", "Ilmu Keperawatan", "Sosiologi", "Kesejahteraan Sosial"},
	},
	riasec.Enterprising: {
		Code:        riasec.Enterprising,
		Name:        "Enterprising (Si Pengusaha)",
		Description: "Kamu seorang pengusaha yang suka memimpin, membujuk, dan memengaruhi orang lain untuk mencapai tujuan atau keuntungan. Kamu ambisius, energik, dan percaya diri.",
		Keywords:    []string{"Membujuk", "Ambisius", "Pemimpin", "Bisnis", "Kompetitif"},
		Careers:     []string{"Pengusaha/Startup Founder", "Manajer Penjualan", "Pengacara", "Politisi", "Ahli Pemasaran", "Manajer Proyek"},
		Majors:      []string{"Manajemen Bisnis", "Ilmu Hukum", "Ilmu Politik", "Marketing", "Hubungan Internasional", "Kewirausahaan"},
	},
	riasec.Conventional: {
		Code:        riasec.Conventional,
		Name:        "Conventional (Si Teratur)",
		Description: "Kamu seorang pengatur yang suka bekerja dengan data dan angka dalam lingkungan yang terstruktur. Kamu menghargai ketelitian, keteraturan, dan kejelasan.",
		Keywords:    []string{"Terorganisir", "Teliti", "Data", "Struktur", "Efisien"},
		Careers:     []string{"Akuntan", "Analis Data", "Staf Administrasi", "Ahli Perpajakan", "Auditor", "Developer Back-End"},
		Majors:      []string{"Akuntansi", "Manajemen Keuangan", "Sistem Informasi", "Administrasi Bisnis", "Statistika", "Perpajakan"},
	},
}

// Details returns the per-category display metadata in canonical order.
func Details() []Detail {
	out := make([]Detail, 0, len(riasec.Categories))
	for _, c := range riasec.Categories {
		out = append(out, details[c])
	}
	return out
}

// DisplayNames returns the category→name lookup the persona builder uses.
func DisplayNames() map[riasec.Category]string {
	out := make(map[riasec.Category]string, len(details))
	for c, d := range details {
		out[c] = d.Name
	}
	return out
}
