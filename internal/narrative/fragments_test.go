package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixOccupation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"teacher, secondary", "secondary teacher"},
		{"engineer", "engineer"},
		{"nurse, children's", "children's nurse"},
		{"officer, probation", "probation officer"},
		{"teacher,   primary school", "primary school teacher"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FixOccupation(tc.in), "input %q", tc.in)
	}
}

func TestIntrospection(t *testing.T) {
	g := NewGenerator(7)

	t.Run("every fifth day mentions the walker by name", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			thought := g.Introspection(5)
			assert.Contains(t, []string{
				"The vastness of the world makes him feel both insignificant and empowered.",
				g.WalkerName + " recalls the promise he made that set him on this path.",
			}, thought)
		}
	})

	t.Run("other days never use the named thoughts", func(t *testing.T) {
		named := g.WalkerName + " recalls the promise he made that set him on this path."
		for i := 0; i < 50; i++ {
			thought := g.Introspection(3)
			assert.NotEqual(t, named, thought)
			assert.NotEqual(t, "The vastness of the world makes him feel both insignificant and empowered.", thought)
		}
	})
}

func TestWeather(t *testing.T) {
	g := NewGenerator(7)
	for i := 0; i < 20; i++ {
		assert.Contains(t, weatherConditions, g.Weather())
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := NewGenerator(99)
	b := NewGenerator(99)
	assert.Equal(t, a.WalkerName, b.WalkerName)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Weather(), b.Weather())
		assert.Equal(t, a.Introspection(i+1), b.Introspection(i+1))
	}
}

func TestArticle(t *testing.T) {
	assert.Equal(t, "an", article("earnest"))
	assert.Equal(t, "a", article("gruff"))
	assert.Equal(t, "a", article(""))
}

func TestVocabularies(t *testing.T) {
	t.Run("some occupations carry catalog commas", func(t *testing.T) {
		withComma := 0
		for _, o := range occupations {
			if strings.Contains(o, ",") {
				withComma++
			}
		}
		assert.Greater(t, withComma, 0)
		assert.Less(t, withComma, len(occupations))
	})

	t.Run("adjective vocabulary is sizable", func(t *testing.T) {
		assert.GreaterOrEqual(t, len(adjectives), 60)
	})
}
