package tendency

// Category names a gameplay rate that modifiers scale.
type Category string

const (
	Usage              Category = "usage"
	ThreePointAttempt  Category = "threePointAttempt"
	ThreePointShooting Category = "threePointShooting"
	InsideScoring      Category = "insideScoring"
	FreeThrow          Category = "freeThrow"
	FoulDrawn          Category = "foulDrawn"
	Assist             Category = "assist"
	Rebound            Category = "rebound"
	Block              Category = "block"
	Steal              Category = "steal"
	Turnover           Category = "turnover"
	PerimeterDefense   Category = "perimeterDefense"
	InteriorDefense    Category = "interiorDefense"
)

// All lists every category in a stable order.
var All = []Category{
	Usage,
	ThreePointAttempt,
	ThreePointShooting,
	InsideScoring,
	FreeThrow,
	FoulDrawn,
	Assist,
	Rebound,
	Block,
	Steal,
	Turnover,
	PerimeterDefense,
	InteriorDefense,
}

// Index returns the position of c in All, or -1.
func (c Category) Index() int {
	for i, cat := range All {
		if cat == c {
			return i
		}
	}
	return -1
}

// Factors maps categories to multiplicative factors. Missing entries mean 1.0.
type Factors map[Category]float64

// Of returns the factor for c, defaulting to 1.0.
func (f Factors) Of(c Category) float64 {
	if v, ok := f[c]; ok {
		return v
	}
	return 1.0
}
