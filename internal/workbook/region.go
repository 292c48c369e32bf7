package workbook

import "fmt"

// RegionSpec describes the fixed layout of one sheet in the workbook.
// The sheets carry multi-row, human formatted headers, so columns are
// addressed by position and given canonical names here.
type RegionSpec struct {
	Sheet     string
	HeaderRow int      // 0-based index of the column header row; data follows it
	Columns   []int    // 0-based column positions; the first one holds the date
	Names     []string // canonical names, one per entry in Columns
}

// Canonical column names
const (
	ColDate           = "date"
	ColDaytime        = "daytime"
	ColMorningEvening = "morning_evening"
	ColNighttime      = "nighttime"
	ColPayment        = "payment"
	ColGeneration     = "generation"
	ColSale           = "sale"
	ColUsage          = "usage"
)

// ElectricityRegion returns the default layout of the electricity sheet
func ElectricityRegion() RegionSpec {
	return RegionSpec{
		Sheet:     "電気",
		HeaderRow: 2,
		Columns:   []int{0, 3, 4, 5, 6, 7, 8},
		Names: []string{
			ColDate,
			ColDaytime,
			ColMorningEvening,
			ColNighttime,
			ColPayment,
			ColGeneration,
			ColSale,
		},
	}
}

// WaterRegion returns the default layout of the water sheet
func WaterRegion() RegionSpec {
	return RegionSpec{
		Sheet:     "水道",
		HeaderRow: 1,
		Columns:   []int{0, 2, 3},
		Names:     []string{ColDate, ColUsage, ColPayment},
	}
}

// Validate checks that the region layout is internally consistent
func (s RegionSpec) Validate() error {
	if s.Sheet == "" {
		return fmt.Errorf("%w: region has no sheet name", ErrSchemaMismatch)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: sheet %q has no columns configured", ErrSchemaMismatch, s.Sheet)
	}
	if len(s.Columns) != len(s.Names) {
		return fmt.Errorf("%w: sheet %q has %d columns but %d names",
			ErrSchemaMismatch, s.Sheet, len(s.Columns), len(s.Names))
	}
	if s.HeaderRow < 0 {
		return fmt.Errorf("%w: sheet %q has negative header row", ErrSchemaMismatch, s.Sheet)
	}
	for _, c := range s.Columns {
		if c < 0 {
			return fmt.Errorf("%w: sheet %q has negative column %d", ErrSchemaMismatch, s.Sheet, c)
		}
	}
	return nil
}

// maxColumn returns the highest configured column position
func (s RegionSpec) maxColumn() int {
	highest := -1
	for _, c := range s.Columns {
		if c > highest {
			highest = c
		}
	}
	return highest
}
