package builder

// Shape names. They prefix builder errors and fill the group column of
// generated rows.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Smallest accepted sizes per shape. A ring needs three members to close
// without a parallel link; a wheel is such a ring plus its hub.
const (
	MinCycleNodes        = 3
	MinPathNodes         = 2
	MinStarNodes         = 2
	MinWheelNodes        = 4
	MinCompleteNodes     = 1
	MinGridDim           = 1
	MinRandomSparseNodes = 1
)

// Link probability range for RandomSparse, both ends inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Defaults for the generated roster columns.
const (
	DefaultFirstID       int64 = 1
	DefaultAffiliation         = "Main"
	DefaultContactDomain       = "example.org"
)
