package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGenre(t *testing.T) {
	for _, g := range Genres {
		parsed, ok := ParseGenre(string(g))
		assert.True(t, ok, g)
		assert.Equal(t, g, parsed)
	}

	_, ok := ParseGenre("Technology")
	assert.False(t, ok)
	_, ok = ParseGenre("tech")
	assert.False(t, ok)
	assert.False(t, Genre("").Valid())
}

func TestDisplayNameAndHeroImage(t *testing.T) {
	assert.Equal(t, "Technology", GenreTech.DisplayName())
	assert.Equal(t, "Random Thoughts", GenreRandomThoughts.DisplayName())

	for _, g := range Genres {
		assert.NotEmpty(t, g.HeroImage(), g)
	}
	assert.Contains(t, GenreTech.HeroImage(), "photo-1526374965328")
}

func TestUserIsAdmin(t *testing.T) {
	var nobody *User
	assert.False(t, nobody.IsAdmin())
	assert.False(t, (&User{Role: RoleMember}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
