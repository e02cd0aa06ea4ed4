package seeder

func Defaults() []Seeder {
	return []Seeder{
		MajorsSeeder{},
		CareersSeeder{},
	}
}
