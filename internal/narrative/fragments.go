// Package narrative generates the randomized text fragments that make
// up each day's entry: weather, introspection, local encounters, and
// the assembled entries themselves. All randomness flows through a
// seeded generator so runs are reproducible.
package narrative

import (
	"math/rand"
	"strings"
)

// Generator produces narrative fragments for one walker's journey.
type Generator struct {
	rng        *rand.Rand
	WalkerName string

	// Debug appends the ground-truth correct direction to interaction
	// text for diagnostics.
	Debug bool
}

// NewGenerator creates a fragment generator with the given seed. The
// walker's name is drawn from the seed too, so a seed names a journey.
func NewGenerator(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		rng:        rng,
		WalkerName: maleNames[rng.Intn(len(maleNames))],
	}
}

var weatherConditions = []string{
	"The sun beats down relentlessly.",
	"A gentle breeze makes the journey pleasant.",
	"Clouds gather, hinting at rain.",
	"A light drizzle accompanies him.",
	"A storm forces him to seek shelter temporarily.",
	"The crisp air invigorates his steps.",
	"Fog envelops the path ahead, obscuring his view.",
	"Snowflakes begin to fall, covering the ground in white.",
	"The humidity makes each step more taxing.",
	"A rainbow appears after a brief shower.",
}

// Weather returns the day's weather line.
func (g *Generator) Weather() string {
	return weatherConditions[g.rng.Intn(len(weatherConditions))]
}

// introspections holds the walker's thoughts. The last two mention him
// by name and are reserved for every fifth day.
const namedThoughts = 2

func (g *Generator) introspections() []string {
	return []string{
		"He reflects on the distance he's covered and the journey ahead.",
		"The road behind him feels both distant and immediate.",
		"Memories of past conversations linger in his mind.",
		"He ponders the purpose of his journey.",
		"The changing landscapes mirror his shifting thoughts.",
		"Silence accompanies him, yet his mind is loud with contemplation.",
		"Each step feels heavier than the last, but he presses on.",
		"He wonders if the destination will bring the closure he seeks.",
		"The vastness of the world makes him feel both insignificant and empowered.",
		g.WalkerName + " recalls the promise he made that set him on this path.",
	}
}

// Introspection returns the day's introspective thought. Every fifth
// day draws from the thoughts that mention the walker by name.
func (g *Generator) Introspection(day int) string {
	thoughts := g.introspections()
	if day%5 == 0 {
		named := thoughts[len(thoughts)-namedThoughts:]
		return named[g.rng.Intn(len(named))]
	}
	unnamed := thoughts[:len(thoughts)-namedThoughts]
	return unnamed[g.rng.Intn(len(unnamed))]
}

// FixOccupation rewrites a catalog-form occupation ("teacher,
// secondary") into natural order ("secondary teacher"). Occupations
// without a comma pass through unchanged.
func FixOccupation(occupation string) string {
	if !strings.Contains(occupation, ",") {
		return occupation
	}
	parts := strings.Split(occupation, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

// article returns "a" or "an" for a word.
func article(word string) string {
	if word == "" {
		return "a"
	}
	if strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}
