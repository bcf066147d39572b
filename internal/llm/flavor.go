// Arrival flavor text — a short first-impression passage for each place
// the walker reaches. Failures degrade to fixed fallback lines.
package llm

import (
	"fmt"
	"log/slog"
)

// Fallback lines used when the completion call fails. The run never
// aborts over missing flavor text.
const (
	fallbackTimeout = "The details of the location remain a mystery."
	fallbackError   = "Unable to retrieve additional details about this place."
)

// ArrivalFlavor asks the model how the walker might feel arriving at a
// place for the first time. Returns empty string when the client is
// disabled, and a fallback line on timeout or error.
func ArrivalFlavor(client *Client, place, walkerName string) string {
	if !client.Enabled() {
		return ""
	}

	prompt := fmt.Sprintf(
		"Write a maximum of 25 words about how a walking traveler might feel "+
			"about visiting %s for the first time. Write in third person, referring "+
			"to the walker as %s or he. Write no other commentary about this task. "+
			"Do not describe your thought process or steps.",
		place, walkerName,
	)

	text, err := client.Complete(prompt, 200)
	if err != nil {
		if isTimeout(err) {
			slog.Warn("flavor query timed out", "place", place)
			return fallbackTimeout
		}
		slog.Warn("flavor query failed", "place", place, "error", err)
		return fallbackError
	}
	return text
}
