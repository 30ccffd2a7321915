package parameter

// Ripple Drawing
const (
	// RippleSegments is the number of polyline segments approximating a
	// ripple circle
	RippleSegments = 25

	// RippleThicknessGain converts draw intensity to line thickness
	RippleThicknessGain = 3.0

	// RippleThicknessHeavy / RippleThicknessMedium are the thickness
	// cutoffs selecting the heavy and medium shade glyphs
	RippleThicknessHeavy  = 2.0
	RippleThicknessMedium = 1.0
)

// Projection
const (
	// CellAspect is the assumed width:height ratio of a terminal cell;
	// the projection stretches x by 1/CellAspect so circles stay round
	CellAspect = 0.5
)
