package faker

import (
	"fmt"

	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/brianvoe/gofakeit/v6"
)

// locale renders one region's content from a faker stream.
type locale struct {
	name    func(f *gofakeit.Faker) string
	address func(f *gofakeit.Faker) string
	phone   func(f *gofakeit.Faker) string
}

var locales = map[core.Region]locale{
	core.RegionUSA: {
		name: func(f *gofakeit.Faker) string {
			return f.FirstName() + " " + f.LastName()
		},
		address: func(f *gofakeit.Faker) string {
			return fmt.Sprintf("%s, %s, %s", f.Street(), f.City(), "United States")
		},
		phone: func(f *gofakeit.Faker) string {
			return f.Numerify(f.RandomString(usPhoneMasks))
		},
	},
	core.RegionPoland: {
		name: func(f *gofakeit.Faker) string {
			return f.RandomString(polishFirstNames) + " " + f.RandomString(polishLastNames)
		},
		address: func(f *gofakeit.Faker) string {
			street := fmt.Sprintf("ul. %s %d", f.RandomString(polishStreets), f.Number(1, 199))
			if f.Number(0, 1) == 1 {
				street += fmt.Sprintf("/%d", f.Number(1, 80))
			}
			return fmt.Sprintf("%s, %s, %s", street, f.RandomString(polishCities), "Poland")
		},
		phone: func(f *gofakeit.Faker) string {
			return f.Numerify(f.RandomString(polishPhoneMasks))
		},
	},
	core.RegionGeorgia: {
		name: func(f *gofakeit.Faker) string {
			return f.RandomString(georgianFirstNames) + " " + f.RandomString(georgianLastNames)
		},
		address: func(f *gofakeit.Faker) string {
			street := fmt.Sprintf("%d %s", f.Number(1, 150), f.RandomString(georgianStreets))
			return fmt.Sprintf("%s, %s, %s", street, f.RandomString(georgianCities), "Georgia")
		},
		phone: func(f *gofakeit.Faker) string {
			return f.Numerify(f.RandomString(georgianPhoneMasks))
		},
	},
}

var usPhoneMasks = []string{
	"+1 (###) ###-####",
	"+1 ###-###-####",
	"+1 ###.###.####",
}

var polishFirstNames = []string{
	"Anna", "Piotr", "Krzysztof", "Małgorzata", "Łukasz", "Agnieszka",
	"Tomasz", "Katarzyna", "Paweł", "Zofia", "Michał", "Joanna",
	"Jakub", "Magdalena", "Wojciech", "Ewa", "Mateusz", "Barbara",
}

var polishLastNames = []string{
	"Nowak", "Kowalski", "Wiśniewski", "Wójcik", "Kowalczyk", "Kamiński",
	"Lewandowski", "Zieliński", "Szymański", "Woźniak", "Dąbrowski", "Kozłowski",
	"Jankowski", "Mazur", "Krawczyk", "Piotrowski", "Grabowski", "Pawłowski",
}

var polishCities = []string{
	"Warszawa", "Kraków", "Łódź", "Wrocław", "Poznań", "Gdańsk",
	"Szczecin", "Bydgoszcz", "Lublin", "Katowice", "Białystok", "Rzeszów",
}

var polishStreets = []string{
	"Marszałkowska", "Długa", "Piotrkowska", "Floriańska", "Mickiewicza", "Słowackiego",
	"Kościuszki", "Polna", "Lipowa", "Ogrodowa", "Szkolna", "Leśna",
}

var polishPhoneMasks = []string{
	"+48 5## ### ###",
	"+48 6## ### ###",
	"+48 7## ### ###",
	"+48 22 ### ## ##",
}

var georgianFirstNames = []string{
	"Giorgi", "Nino", "Davit", "Tamar", "Levan", "Mariam",
	"Irakli", "Ana", "Luka", "Salome", "Nika", "Ketevan",
	"Zurab", "Eka", "Sandro", "Natia",
}

var georgianLastNames = []string{
	"Beridze", "Kapanadze", "Gelashvili", "Maisuradze", "Giorgadze", "Lomidze",
	"Tsiklauri", "Bolkvadze", "Kvaratskhelia", "Abashidze", "Chikhladze", "Mamaladze",
	"Nozadze", "Jikia", "Khutsishvili", "Japaridze",
}

var georgianCities = []string{
	"Tbilisi", "Batumi", "Kutaisi", "Rustavi", "Zugdidi", "Gori",
	"Poti", "Telavi", "Samtredia", "Khashuri", "Mtskheta", "Borjomi",
}

var georgianStreets = []string{
	"Rustaveli Ave", "Chavchavadze Ave", "Aghmashenebeli Ave", "Pekini St",
	"Vazha-Pshavela Ave", "Kostava St", "Tamar Mepe St", "Gorgasali St",
	"Barnovi St", "Abashidze St", "Paliashvili St", "Leselidze St",
}

var georgianPhoneMasks = []string{
	"+995 5## ## ## ##",
	"+995 32 2## ## ##",
}
