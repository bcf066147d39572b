package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeTravelEntry(t *testing.T) {
	t.Run("with flavor text", func(t *testing.T) {
		entry := ComposeTravelEntry(12, "Harold", "Millinocket",
			"Clouds gather, hinting at rain.",
			"He asks a local farmer which way to Bend.",
			"Harold feels the town holds its breath.",
			"He ponders the purpose of his journey.",
			7.82)

		assert.True(t, strings.HasPrefix(entry, "Day 12:\n"))
		assert.Contains(t, entry, "Harold arrives in Millinocket.")
		assert.Contains(t, entry, "Harold feels the town holds its breath.\n")
		assert.Contains(t, entry, "Distance covered today: 7.82 miles.\n")
	})

	t.Run("without flavor text", func(t *testing.T) {
		entry := ComposeTravelEntry(3, "Harold", "an unknown place",
			"Fog envelops the path ahead, obscuring his view.",
			"He asks a local grocer which way to Bend.",
			"",
			"The road behind him feels both distant and immediate.",
			5.00)

		assert.NotContains(t, entry, "\n\n\n")
		assert.Contains(t, entry, "arrives in an unknown place")
	})
}

func TestComposeRestEntry(t *testing.T) {
	entry := ComposeRestEntry(8, "Harold", "Bangor",
		"A gentle breeze makes the journey pleasant.",
		"He ponders the purpose of his journey.")

	assert.True(t, strings.HasPrefix(entry, "Day 8:\n"))
	assert.Contains(t, entry, "Harold decides to rest in Bangor.\n")
	assert.Contains(t, entry, "Distance covered today: 0 miles.\n")
	assert.NotContains(t, entry, "arrives in")
}

func TestConclusion(t *testing.T) {
	c := Conclusion(213, "Harold", "Bend, Oregon")
	assert.True(t, strings.HasPrefix(c, "Day 213:\n"))
	assert.Contains(t, c, "the last Blockbuster store in Bend, Oregon")
	assert.Contains(t, c, "begins the long walk home")
}
