// Package terrain derives landscape descriptions from coordinates using
// layered simplex noise. The same seed always describes the same ground,
// so a walker passing back through a region sees consistent country.
package terrain

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/savetz/longwalk/internal/geo"
)

// Field samples relief and ground-cover noise layers at geographic
// coordinates.
type Field struct {
	relief opensimplex.Noise
	cover  opensimplex.Noise
}

// NewField creates a terrain field from a seed.
func NewField(seed int64) *Field {
	return &Field{
		relief: opensimplex.NewNormalized(seed),
		cover:  opensimplex.NewNormalized(seed + 1),
	}
}

var reliefPhrases = []string{
	"flat, open country",
	"gently rolling land",
	"a stretch of low hills",
	"steep, broken ground",
}

var coverPhrases = []string{
	"bare and windswept",
	"covered in dry grass",
	"dotted with stands of trees",
	"thick with woods",
}

// Describe returns a short landscape sentence for a coordinate.
func (f *Field) Describe(c geo.Coordinate) string {
	r := octaveNoise(f.relief, c.Lon, c.Lat, 3, 0.15, 0.5)
	g := octaveNoise(f.cover, c.Lon, c.Lat, 3, 0.3, 0.5)

	relief := reliefPhrases[bucket(r, len(reliefPhrases))]
	cover := coverPhrases[bucket(g, len(coverPhrases))]

	return fmt.Sprintf("The road here crosses %s, %s.", relief, cover)
}

// bucket maps a normalized noise value in [0,1] to an index in [0,n).
func bucket(v float64, n int) int {
	idx := int(v * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// octaveNoise layers multiple frequencies of simplex noise.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
