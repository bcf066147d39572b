// Package journey runs the day-by-day walk simulation: position,
// remaining distance, rest scheduling, and entry writing. One Walk is
// one novel.
package journey

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/savetz/longwalk/internal/geo"
	"github.com/savetz/longwalk/internal/geocode"
	"github.com/savetz/longwalk/internal/narrative"
	"github.com/savetz/longwalk/internal/persistence"
	"github.com/savetz/longwalk/internal/terrain"
)

// Config holds the journey parameters.
type Config struct {
	StartPlace string
	EndPlace   string

	DailyMin float64 // miles walked per day, lower bound
	DailyMax float64 // miles walked per day, upper bound

	// ArrivalThreshold is the remaining distance in miles below which
	// the walker has arrived.
	ArrivalThreshold float64

	// StepDelay is slept after each simulated day to respect external
	// rate limits.
	StepDelay time.Duration

	// MaxDays aborts a run that has not arrived after this many days.
	// Zero means no limit.
	MaxDays int

	Seed int64
}

// DefaultConfig returns the canonical walk: Caribou, Maine to the last
// Blockbuster store in Bend, Oregon.
func DefaultConfig() Config {
	return Config{
		StartPlace:       "Caribou, Maine",
		EndPlace:         "Bend, Oregon",
		DailyMin:         5,
		DailyMax:         9,
		ArrivalThreshold: 0.2,
		StepDelay:        time.Second,
	}
}

// WalkState is the mutable per-day state, owned exclusively by the
// walk loop.
type WalkState struct {
	Current    geo.Coordinate
	Day        int
	TotalMiles float64
	Remaining  float64
	LastRest   int

	// DaysWithoutProgress counts consecutive days the walker got no
	// closer. Tracked and logged only; nothing consults it yet.
	DaysWithoutProgress int
}

// FlavorFunc produces optional arrival flavor text for a place. Empty
// string means none available.
type FlavorFunc func(place, walker string) string

// Walk drives one journey from start to destination.
type Walk struct {
	// Optional collaborators, set before Run.
	Flavor  FlavorFunc
	Terrain *terrain.Field // offline flavor fallback
	Log     *persistence.DB
	RunID   string

	State WalkState

	cfg      Config
	geocoder geocode.Geocoder
	gen      *narrative.Generator
	novel    *Novel
	rng      *rand.Rand
}

// New creates a Walk. The generator and the walk's own rng are seeded
// independently so narrative draws never shift movement draws.
func New(cfg Config, gc geocode.Geocoder, gen *narrative.Generator, novel *Novel) *Walk {
	return &Walk{
		cfg:      cfg,
		geocoder: gc,
		gen:      gen,
		novel:    novel,
		rng:      rand.New(rand.NewSource(cfg.Seed + 100)),
	}
}

// Run executes the journey until arrival. The only fatal errors are
// unresolvable start/end places and novel write failures; external
// lookup failures degrade inside their gateways.
func (w *Walk) Run() error {
	start, err := w.geocoder.Locate(w.cfg.StartPlace)
	if err != nil {
		return fmt.Errorf("resolve start: %w", err)
	}
	end, err := w.geocoder.Locate(w.cfg.EndPlace)
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}

	total := geo.Distance(start, end)
	w.State = WalkState{
		Current:    start,
		Day:        1,
		TotalMiles: total,
		Remaining:  total,
	}

	slog.Info("journey begins",
		"walker", w.gen.WalkerName,
		"from", w.cfg.StartPlace,
		"to", w.cfg.EndPlace,
		"total_miles", fmt.Sprintf("%.2f", total),
	)

	if w.Log != nil {
		if err := w.Log.CreateRun(persistence.Run{
			ID:         w.RunID,
			Walker:     w.gen.WalkerName,
			StartPlace: w.cfg.StartPlace,
			EndPlace:   w.cfg.EndPlace,
			TotalMiles: total,
		}); err != nil {
			slog.Warn("travel log unavailable", "error", err)
			w.Log = nil
		}
	}

	for w.State.Remaining > w.cfg.ArrivalThreshold {
		if w.cfg.MaxDays > 0 && w.State.Day > w.cfg.MaxDays {
			return fmt.Errorf("no arrival after %d days (%.2f miles remaining)",
				w.cfg.MaxDays, w.State.Remaining)
		}

		if w.restToday() {
			if err := w.restDay(); err != nil {
				return err
			}
		} else {
			if err := w.travelDay(end); err != nil {
				return err
			}
		}

		w.State.Day++

		if w.cfg.StepDelay > 0 {
			time.Sleep(w.cfg.StepDelay)
		}
	}

	conclusion := narrative.Conclusion(w.State.Day, w.gen.WalkerName, w.cfg.EndPlace)
	if err := w.novel.WriteEntry(conclusion); err != nil {
		return err
	}

	if w.Log != nil {
		if err := w.Log.CompleteRun(w.RunID, w.State.Day); err != nil {
			slog.Warn("travel log complete failed", "error", err)
		}
	}

	slog.Info("journey complete", "days", w.State.Day,
		"remaining_miles", fmt.Sprintf("%.2f", w.State.Remaining))
	return nil
}

// restToday decides whether the walker rests. Rest is only possible
// after the first week and at least seven days since the last rest,
// with a 10% chance on eligible days.
func (w *Walk) restToday() bool {
	if w.State.Day <= 7 {
		return false
	}
	if w.State.Day-w.State.LastRest < 7 {
		return false
	}
	return w.rng.Float64() < 0.1
}

// restDay writes a rest entry at the unchanged position.
func (w *Walk) restDay() error {
	s := &w.State
	s.LastRest = s.Day

	location := w.geocoder.PlaceName(s.Current)
	entry := narrative.ComposeRestEntry(s.Day, w.gen.WalkerName, location,
		w.gen.Weather(), w.gen.Introspection(s.Day))

	slog.Info("rest day", "day", s.Day, "location", location,
		"remaining_miles", fmt.Sprintf("%.2f", s.Remaining))

	return w.writeEntry(entry, location, 0, true)
}

// travelDay moves the walker along whatever direction a local gave,
// then re-resolves position, place, and remaining distance.
func (w *Walk) travelDay(end geo.Coordinate) error {
	s := &w.State
	previous := s.Remaining

	daily := w.cfg.DailyMin + w.rng.Float64()*(w.cfg.DailyMax-w.cfg.DailyMin)

	in := w.gen.LocalInteraction(s.Remaining, s.TotalMiles, s.Current, end, w.cfg.EndPlace)

	// Close enough to finish today, and pointed the right way: walk
	// exactly the remaining distance instead of overshooting.
	if s.Remaining <= daily && in.Correct {
		daily = s.Remaining
	}

	bearing, ok := geo.SectorBearing(in.Direction)
	if !ok {
		return fmt.Errorf("unknown compass direction %q", in.Direction)
	}

	next := geo.Project(s.Current, bearing, daily)
	location := w.geocoder.PlaceName(next)

	flavor := ""
	if w.Flavor != nil {
		flavor = w.Flavor(location, w.gen.WalkerName)
	}
	if flavor == "" && w.Terrain != nil {
		flavor = w.Terrain.Describe(next)
	}

	entry := narrative.ComposeTravelEntry(s.Day, w.gen.WalkerName, location,
		w.gen.Weather(), in.Text, flavor, w.gen.Introspection(s.Day), daily)

	s.Current = next
	s.Remaining = geo.Distance(next, end)
	if s.Remaining >= previous {
		s.DaysWithoutProgress++
	} else {
		s.DaysWithoutProgress = 0
	}

	if err := w.writeEntry(entry, location, daily, false); err != nil {
		return err
	}

	slog.Info("travel day",
		"day", s.Day,
		"location", location,
		"miles", fmt.Sprintf("%.2f", daily),
		"direction", in.Direction,
		"correct", in.Correct,
		"remaining_miles", fmt.Sprintf("%.2f", s.Remaining),
		"days_without_progress", s.DaysWithoutProgress,
	)
	return nil
}

// writeEntry appends the entry to the novel (fatal on failure) and to
// the travel log (best effort).
func (w *Walk) writeEntry(text, location string, miles float64, rest bool) error {
	if err := w.novel.WriteEntry(text); err != nil {
		return err
	}

	if w.Log != nil {
		err := w.Log.RecordEntry(persistence.Entry{
			RunID:     w.RunID,
			Day:       w.State.Day,
			Location:  location,
			Lat:       w.State.Current.Lat,
			Lon:       w.State.Current.Lon,
			Miles:     miles,
			Remaining: w.State.Remaining,
			Rest:      rest,
			Text:      text,
		})
		if err != nil {
			slog.Warn("travel log write failed", "day", w.State.Day, "error", err)
		}
	}
	return nil
}
