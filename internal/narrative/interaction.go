// Local-encounter generation and the direction-accuracy model. Locals
// give better directions the closer the walker gets; a wrong answer
// sends him walking the wrong way for real.
package narrative

import (
	"fmt"
	"strings"

	"github.com/savetz/longwalk/internal/geo"
)

// Interaction is one local encounter: the narrative text, the compass
// direction the local pointed, and whether it was correct.
type Interaction struct {
	Text      string
	Direction string
	Correct   bool
}

// accuracyBucket pairs a correctness probability with the gesture
// phrasings typical of locals at that stage of the journey.
type accuracyBucket struct {
	accuracy float64
	gestures []string
}

// bucketFor selects the accuracy bucket for a percent-remaining value.
// Far from the destination nobody has heard of it; near the end
// everyone knows the way.
func bucketFor(percentRemaining float64) accuracyBucket {
	switch {
	case percentRemaining > 75:
		return accuracyBucket{0.30, []string{
			"looks confused, pointing",
			"doesn't seem to understand but points toward",
			"tilts their head to the",
			"vaguely points",
		}}
	case percentRemaining > 50:
		return accuracyBucket{0.50, []string{
			"shrugs and motions to the",
			"looks off to the",
			"waves sort of to the",
		}}
	case percentRemaining > 25:
		return accuracyBucket{0.65, []string{
			"looks unsure but points",
			"motions towards the",
			"smiles and gestures",
		}}
	default:
		return accuracyBucket{0.90, []string{
			"self-assuredly points",
			"directs him to the",
		}}
	}
}

// LocalInteraction generates a local character who points the walker
// somewhere. The returned direction is what the walker will actually
// follow, correct or not.
func (g *Generator) LocalInteraction(remaining, total float64, current, dest geo.Coordinate, destName string) Interaction {
	percentRemaining := remaining / total * 100

	correctDirection := geo.CompassLabel(geo.Bearing(current, dest))
	bucket := bucketFor(percentRemaining)

	direction := correctDirection
	correct := true
	if g.rng.Float64() >= bucket.accuracy {
		direction = g.wrongDirection(correctDirection)
		correct = false
	}

	name := g.localName()
	occupation := strings.ToLower(FixOccupation(occupations[g.rng.Intn(len(occupations))]))
	demeanor := adjectives[g.rng.Intn(len(adjectives))]
	gesture := bucket.gestures[g.rng.Intn(len(bucket.gestures))]

	phrases := append([]string{destName}, destinationPhrases...)
	destRef := phrases[g.rng.Intn(len(phrases))]

	text := fmt.Sprintf(
		"He asks a local %s, %s %s person named %s, which way to %s. The %s %s %s.",
		occupation, article(demeanor), demeanor, name, destRef,
		occupation, gesture, direction,
	)
	if g.Debug {
		text += fmt.Sprintf(" [Correct direction: %s]", correctDirection)
	}

	return Interaction{Text: text, Direction: direction, Correct: correct}
}

// wrongDirection picks uniformly among the 15 sectors that are not the
// correct one.
func (g *Generator) wrongDirection(correct string) string {
	others := make([]string, 0, len(geo.Sectors)-1)
	for _, s := range geo.Sectors {
		if s != correct {
			others = append(others, s)
		}
	}
	return others[g.rng.Intn(len(others))]
}

// localName draws a first name for a local of either sex.
func (g *Generator) localName() string {
	if g.rng.Intn(2) == 0 {
		return maleNames[g.rng.Intn(len(maleNames))]
	}
	return femaleNames[g.rng.Intn(len(femaleNames))]
}
