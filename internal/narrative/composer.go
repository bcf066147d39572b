// Daily entry composition. Entries are plain text paragraph blocks,
// assembled from fragments the caller has already generated.
package narrative

import (
	"fmt"
	"strings"
)

// ComposeTravelEntry assembles a travel day's entry. flavor may be
// empty; when present it reads as its own sentence block before the
// introspection.
func ComposeTravelEntry(day int, walker, location, weather, interaction, flavor, introspection string, miles float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d:\n", day)
	fmt.Fprintf(&b, "%s %s arrives in %s. %s\n\n", weather, walker, location, interaction)
	if flavor != "" {
		fmt.Fprintf(&b, "%s\n", flavor)
	}
	fmt.Fprintf(&b, "%s\n", introspection)
	fmt.Fprintf(&b, "Distance covered today: %.2f miles.\n", miles)
	return b.String()
}

// ComposeRestEntry assembles a rest day's entry. No movement, no local
// encounter.
func ComposeRestEntry(day int, walker, location, weather, introspection string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d:\n", day)
	fmt.Fprintf(&b, "%s %s decides to rest in %s.\n", weather, walker, location)
	fmt.Fprintf(&b, "%s\n", introspection)
	b.WriteString("Distance covered today: 0 miles.\n")
	return b.String()
}

// Conclusion is the fixed final entry: the walker reaches the last
// Blockbuster store and returns the tape he has carried the whole way.
func Conclusion(day int, walker, destName string) string {
	return fmt.Sprintf(
		"Day %d:\n"+
			"%s finally arrives at his destination: the last Blockbuster store in %s.\n"+
			"He stands outside the iconic blue and yellow sign, feeling the weight of the journey lift from his shoulders.\n"+
			"From his pocket, he pulls out a weathered videotape—its label faded but still legible. With a sense of ceremony, "+
			"he walks to the return bin and drops the tape inside. The soft clink of the tape hitting the metal feels like "+
			"the final note in a long, unfinished symphony.\n"+
			"For a moment, he lingers. "+
			"With a deep breath, he turns around and begins the long walk home.\n",
		day, walker, destName,
	)
}
