package catalog

import "panduan-karier/internal/domain/riasec"

// motivations keys are top-two codes in canonical pair order; reversed codes
// resolve through riasec.ResolveMotivation.
var motivations = map[string]string{
	"RI": "Kombinasi antara Realistis dan Investigatif menunjukkan kamu adalah seorang pemecah masalah yang praktis. Kamu tidak hanya suka memahami 'mengapa' sesuatu bekerja, tetapi juga 'bagaimana' membuatnya bekerja lebih baik.",
	"RA": "Kombinasi langka antara si Praktis dan si Kreatif! Kamu memiliki bakat untuk menciptakan hal-hal nyata yang tidak hanya fungsional tetapi juga indah. Tanganmu terampil dan imajinasimu liar.",
	"RS": "Kamu adalah penolong yang tidak takut kotor. Kamu suka membantu orang lain dengan cara yang sangat nyata dan langsung, seperti merawat, membangun, atau melindungi.",
	"RE": "Seorang pemimpin yang praktis. Kamu tidak hanya punya ide bisnis, tapi kamu juga tahu cara membangunnya dari nol dengan tanganmu sendiri.",
	"RC": "Keteraturan dan kepraktisan adalah kekuatanmu. Kamu mampu menciptakan sistem yang efisien dari hal-hal yang nyata dan memastikan semuanya berjalan sesuai rencana.",

	"IA": "Seorang inovator sejati. Pikiran analitismu dipadukan dengan imajinasi kreatifmu membuatmu mampu melihat solusi yang tidak terpikirkan oleh orang lain.",
	"IS": "Kamu adalah 'Dokter' bagi masalah orang lain. Kamu menggunakan kecerdasanmu untuk menganalisis masalah dan kepedulianmu untuk menemukan solusi yang benar-benar membantu mereka.",
	"IE": "Pikiranmu yang tajam dipadukan dengan jiwa pemimpin. Kamu tidak hanya mampu menganalisis pasar, tetapi juga mampu meyakinkan orang lain untuk mengikuti visimu.",
	"IC": "Seorang arsitek informasi. Kamu mampu mengambil data yang rumit dan kompleks lalu menyusunnya menjadi sistem yang logis dan teratur.",

	"AS": "Kamu menggunakan senimu untuk menyentuh hati orang lain. Baik melalui musik, tulisan, atau gambar, tujuan utamamu adalah untuk terhubung dan menginspirasi komunitas.",
	"AE": "Seorang visioner yang bisa menjual mimpinya. Kamu tidak hanya punya ide-ide kreatif, tetapi juga karisma untuk memimpin orang lain dan mewujudkan ide tersebut menjadi kenyataan.",
	"AC": "Kreativitas yang terstruktur. Kamu mampu membawa ide-ide imajinatif ke dalam kerangka yang rapi dan terorganisir, menghasilkan karya yang indah sekaligus fungsional.",

	"SE": "Kamu adalah seorang pemimpin yang inspiratif. Kamu unggul dalam memahami, memotivasi, dan memimpin orang lain menuju tujuan bersama. Kamu membangun tim yang kuat.",
	"SC": "Seorang organisator bagi komunitas. Kamu punya kemampuan luar biasa untuk membantu orang lain dengan menciptakan sistem dan proses yang teratur dan adil.",

	"EC": "Seorang manajer yang handal. Kamu mampu memimpin sebuah proyek atau bisnis dengan efisiensi dan ketelitian yang luar biasa, memastikan semuanya berjalan lancar dan menguntungkan.",

	riasec.MotivationDefaultKey: "Kamu memiliki kombinasi minat yang unik! Ini memberimu fleksibilitas untuk menjelajahi berbagai bidang karier. Mari kita lihat apa yang paling cocok untukmu.",
}

// Motivations returns the narrative templates keyed by top-two code.
func Motivations() map[string]string {
	return motivations
}
