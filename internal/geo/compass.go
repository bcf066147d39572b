// 16-point compass rose: sector names, bearing lookup, and
// nearest-sector labeling with wraparound at 0°/360°.
package geo

// Sectors lists the 16 compass sectors in clockwise order starting at
// north. Sector i covers the bearing 22.5*i degrees.
var Sectors = []string{
	"north", "north-northeast", "northeast", "east-northeast",
	"east", "east-southeast", "southeast", "south-southeast",
	"south", "south-southwest", "southwest", "west-southwest",
	"west", "west-northwest", "northwest", "north-northwest",
}

const sectorWidth = 360.0 / 16

// CompassLabel maps a bearing in degrees to the nearest compass sector.
// Bearings outside [0, 360) are wrapped.
func CompassLabel(bearing float64) string {
	b := bearing
	for b < 0 {
		b += 360
	}
	// Shift by half a sector so division rounds to the nearest sector,
	// wrapping 348.75°–360° back onto north.
	idx := int((b+sectorWidth/2)/sectorWidth) % len(Sectors)
	return Sectors[idx]
}

// SectorBearing returns the bearing in degrees for a named compass
// sector. The second return is false for unknown names.
func SectorBearing(name string) (float64, bool) {
	for i, s := range Sectors {
		if s == name {
			return float64(i) * sectorWidth, true
		}
	}
	return 0, false
}
