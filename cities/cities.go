// Package cities holds the canonical directory of cities covered by the
// screening program. City codes are the stable identifiers exchanged with
// the upstream pharmacy API; display names are localized.
package cities

import (
	"github.com/hirassa/screening-api/locale"
)

// City maps a stable city code to its localized display names.
type City struct {
	ID   int         `json:"id"`
	Code string      `json:"code"`
	Name locale.Text `json:"name"`
}

var directory = []City{
	{ID: 1, Code: "BEN-SLIMANE", Name: locale.Text{En: "Benslimane", Fr: "Benslimane", Ar: "بن سليمان"}},
	{ID: 2, Code: "BERRECHID", Name: locale.Text{En: "Berrechid", Fr: "Berrechid", Ar: "برشيد"}},
	{ID: 3, Code: "CASABLANCA", Name: locale.Text{En: "Casablanca", Fr: "Casablanca", Ar: "الدار البيضاء"}},
	{ID: 4, Code: "FES", Name: locale.Text{En: "Fez", Fr: "Fès", Ar: "فاس"}},
	{ID: 5, Code: "IMINTANOUT", Name: locale.Text{En: "Imintanout", Fr: "Imintanout", Ar: "إيمنتانوت"}},
	{ID: 6, Code: "KENITRA", Name: locale.Text{En: "Kenitra", Fr: "Kénitra", Ar: "القنيطرة"}},
	{ID: 7, Code: "KHOURIBGA", Name: locale.Text{En: "Khouribga", Fr: "Khouribga", Ar: "خريبكة"}},
	{ID: 8, Code: "LARACHE", Name: locale.Text{En: "Larache", Fr: "Larache", Ar: "العرائش"}},
	{ID: 9, Code: "MARRAKESH", Name: locale.Text{En: "Marrakesh", Fr: "Marrakech", Ar: "مراكش"}},
	{ID: 10, Code: "MEKNES", Name: locale.Text{En: "Meknes", Fr: "Meknès", Ar: "مكناس"}},
	{ID: 11, Code: "MOHAMMEDIA", Name: locale.Text{En: "Mohammedia", Fr: "Mohammédia", Ar: "المحمدية"}},
	{ID: 12, Code: "RABAT", Name: locale.Text{En: "Rabat", Fr: "Rabat", Ar: "الرباط"}},
	{ID: 13, Code: "SALE", Name: locale.Text{En: "Sale", Fr: "Salé", Ar: "سلا"}},
	{ID: 14, Code: "TANGIER", Name: locale.Text{En: "Tangier", Fr: "Tanger", Ar: "طنجة"}},
	{ID: 15, Code: "TEMARA", Name: locale.Text{En: "Temara", Fr: "Témara", Ar: "تمارة"}},
	{ID: 16, Code: "TETOUN", Name: locale.Text{En: "Tetouan", Fr: "Tétouan", Ar: "تطوان"}},
	{ID: 17, Code: "AIN-HARROUDA", Name: locale.Text{En: "Ain Harrouda", Fr: "Ain Harrouda", Ar: "عين حرودة"}},
	{ID: 18, Code: "ARRAHMA", Name: locale.Text{En: "Arrahma", Fr: "Arrahma", Ar: "الرحمة"}},
	{ID: 19, Code: "ASNI", Name: locale.Text{En: "Asni", Fr: "Asni", Ar: "أسني"}},
	{ID: 20, Code: "BENI-YAKHLEF", Name: locale.Text{En: "Beni Yakhlef", Fr: "Beni Yakhlef", Ar: "بني يخلف"}},
	{ID: 21, Code: "LAHBICHAT", Name: locale.Text{En: "Lahbichat", Fr: "Lahbichat", Ar: "لحبيشات"}},
	{ID: 22, Code: "MARTIL", Name: locale.Text{En: "Martil", Fr: "Martil", Ar: "مرتيل"}},
	{ID: 23, Code: "MERS-EL-KHEIR", Name: locale.Text{En: "Mers El Kheir", Fr: "Mers El Kheir", Ar: "مرس الخير"}},
	{ID: 24, Code: "NOUACER", Name: locale.Text{En: "Nouacer", Fr: "Nouacer", Ar: "النواصر"}},
	{ID: 25, Code: "OUAHAT-SIDI-BRAHIM", Name: locale.Text{En: "Ouahat Sidi Brahim", Fr: "Ouahat Sidi Brahim", Ar: "وحات سيدي ابراهيم"}},
	{ID: 26, Code: "OULED-YAHYA", Name: locale.Text{En: "Ouled Yahya", Fr: "Ouled Yahya", Ar: "أولاد يحيى"}},
	{ID: 27, Code: "SEFROU", Name: locale.Text{En: "Sefrou", Fr: "Sefrou", Ar: "صفرو"}},
	{ID: 28, Code: "SIDI-BOUOUTHMAN", Name: locale.Text{En: "Sidi Bououthman", Fr: "Sidi Bououthman", Ar: "سيدي بوعثمان"}},
	{ID: 29, Code: "SIDI-MOUSSA", Name: locale.Text{En: "Sidi Moussa", Fr: "Sidi Moussa", Ar: "سيدي موسى"}},
	{ID: 30, Code: "SIDI-RAHAL", Name: locale.Text{En: "Sidi Rahal", Fr: "Sidi Rahal", Ar: "سيدي رحال"}},
	{ID: 31, Code: "ZENATA", Name: locale.Text{En: "Zenata", Fr: "Zenata", Ar: "زناتة"}},
}

var byCode = func() map[string]City {
	m := make(map[string]City, len(directory))
	for _, c := range directory {
		m[c.Code] = c
	}
	return m
}()

// All returns the directory in declaration order.
func All() []City {
	return directory
}

// Lookup returns the city with the given code.
func Lookup(code string) (City, bool) {
	c, ok := byCode[code]
	return c, ok
}

// DisplayName returns the localized name for a city code. An unknown code
// resolves to the code itself so lists stay renderable.
func DisplayName(code string, l locale.Locale) string {
	c, ok := byCode[code]
	if !ok {
		return code
	}
	return c.Name.In(l)
}

// Count returns the number of cities in the directory.
func Count() int {
	return len(directory)
}
