package models

// Genre is the fixed category a Post belongs to.
type Genre string

const (
	GenreTech           Genre = "Tech"
	GenreEducation      Genre = "Education"
	GenreEntertainment  Genre = "Entertainment"
	GenreRandomThoughts Genre = "Random Thoughts"
)

// Genres lists every genre in menu order.
var Genres = []Genre{GenreTech, GenreEducation, GenreEntertainment, GenreRandomThoughts}

var genreDisplayNames = map[Genre]string{
	GenreTech: "Technology",
}

// Hero images keyed by display name.
var categoryPics = map[string]string{
	"Random Thoughts": "https://images.unsplash.com/photo-1495567720989-cebdbdd97913?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=2070&q=80",
	"Entertainment":   "https://images.unsplash.com/photo-1513346940221-6f673d962e97?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=2070&q=80",
	"Technology":      "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxzZWFyY2h8MTV8fHRlY2h8ZW58MHwwfDB8fA%3D%3D&auto=format&fit=crop&w=800&q=60",
	"Education":       "https://images.unsplash.com/photo-1521587760476-6c12a4b040da?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=2070&q=80",
}

// ParseGenre returns the genre named s, or false if s is not one of Genres.
func ParseGenre(s string) (Genre, bool) {
	for _, g := range Genres {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

func (g Genre) Valid() bool {
	_, ok := ParseGenre(string(g))
	return ok
}

// DisplayName is the heading shown on the category page (Tech -> Technology).
func (g Genre) DisplayName() string {
	if name, ok := genreDisplayNames[g]; ok {
		return name
	}
	return string(g)
}

// HeroImage is the banner picture for the category page.
func (g Genre) HeroImage() string {
	return categoryPics[g.DisplayName()]
}
