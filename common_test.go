package veneer

// metrics and tracing are usage types for Tagged fixtures.  They are
// never instantiated.
type metrics struct{}
type tracing struct{}

// the six permutations of the three decorator types around an int
// payload, all exercised by the generic suites
type (
	tagFlagLabel = Tagged[metrics, Flagged[Labeled[int]]]
	tagLabelFlag = Tagged[metrics, Labeled[Flagged[int]]]
	flagTagLabel = Flagged[Tagged[metrics, Labeled[int]]]
	flagLabelTag = Flagged[Labeled[Tagged[metrics, int]]]
	labelTagFlag = Labeled[Tagged[metrics, Flagged[int]]]
	labelFlagTag = Labeled[Flagged[Tagged[metrics, int]]]
)

// depth3 is the index of an int payload inside any of the three-layer
// permutation types
type depth3 = Succ[Succ[Zero]]
