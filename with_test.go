package veneer

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// WithSuite exercises the builder against one nesting order.  Running
// it for every permutation establishes order independence of updates.
type WithSuite[S any] struct {
	suite.Suite
}

func (suite *WithSuite[S]) build() S {
	return MustConstruct[S, depth3](1234)
}

func (suite *WithSuite[S]) changed(stack S) bool {
	fh, err := Find[FlagHost](stack)
	suite.Require().NoError(err)
	return fh.Changed()
}

func (suite *WithSuite[S]) label(stack S) string {
	lh, err := Find[LabelHost](stack)
	suite.Require().NoError(err)
	return lh.Label()
}

func (suite *WithSuite[S]) TestOrderIndependence() {
	stack, err := With(suite.build(), Changed(true), Label("x"))
	suite.Require().NoError(err)

	suite.True(suite.changed(stack))
	suite.Equal("x", suite.label(stack))

	p, err := Payload[int](stack)
	suite.Require().NoError(err)
	suite.Equal(1234, p)
}

func (suite *WithSuite[S]) TestPurity() {
	before := suite.build()

	after, err := With(before, Changed(true), Label("mutated"))
	suite.Require().NoError(err)

	// the pre-call value is untouched
	suite.False(suite.changed(before))
	suite.Equal("", suite.label(before))

	suite.True(suite.changed(after))
	suite.Equal("mutated", suite.label(after))
}

func (suite *WithSuite[S]) TestIdempotence() {
	once, err := With(suite.build(), Changed(true))
	suite.Require().NoError(err)

	twice, err := With(once, Changed(true))
	suite.Require().NoError(err)

	suite.Equal(once, twice)
}

func (suite *WithSuite[S]) TestNonInterference() {
	stack, err := With(suite.build(), Label("only the label"))
	suite.Require().NoError(err)
	suite.False(suite.changed(stack))

	stack, err = With(suite.build(), Changed(true))
	suite.Require().NoError(err)
	suite.Equal("", suite.label(stack))
}

func (suite *WithSuite[S]) TestMissingCapability() {
	rejectAll := SettingFunc(func(any) bool { return false })

	_, err := With(suite.build(), rejectAll)

	var missing *NoCapabilityError
	suite.ErrorAs(err, &missing)
}

func TestWith(t *testing.T) {
	t.Run("TagFlagLabel", func(t *testing.T) { suite.Run(t, new(WithSuite[tagFlagLabel])) })
	t.Run("TagLabelFlag", func(t *testing.T) { suite.Run(t, new(WithSuite[tagLabelFlag])) })
	t.Run("FlagTagLabel", func(t *testing.T) { suite.Run(t, new(WithSuite[flagTagLabel])) })
	t.Run("FlagLabelTag", func(t *testing.T) { suite.Run(t, new(WithSuite[flagLabelTag])) })
	t.Run("LabelTagFlag", func(t *testing.T) { suite.Run(t, new(WithSuite[labelTagFlag])) })
	t.Run("LabelFlagTag", func(t *testing.T) { suite.Run(t, new(WithSuite[labelFlagTag])) })
}

type WithErrorSuite struct {
	suite.Suite
}

func (suite *WithErrorSuite) TestAmbiguous() {
	stack := NewLabeled(NewFlagged(NewLabeled(1234)))

	_, err := With(stack, Label("which one"))

	var ambiguous *AmbiguousCapabilityError
	suite.Require().ErrorAs(err, &ambiguous)
	suite.Equal(2, ambiguous.Count)
}

func (suite *WithErrorSuite) TestAggregation() {
	// both settings fail, and both failures must be reported
	stack := NewTagged[metrics](1234)

	_, err := With(stack, Changed(true), Label("nope"))
	suite.Require().Error(err)

	var missing *NoCapabilityError
	suite.ErrorAs(err, &missing)
}

func TestWithError(t *testing.T) {
	suite.Run(t, new(WithErrorSuite))
}

type WithAtSuite struct {
	suite.Suite
}

func (suite *WithAtSuite) TestExactLayer() {
	stack := MustConstruct[labelFlagTag, depth3](1234)

	stack, err := WithAt[Zero](stack, Label("outermost"))
	suite.Require().NoError(err)

	stack, err = WithAt[Succ[Zero]](stack, Changed(true))
	suite.Require().NoError(err)

	suite.Equal("outermost", stack.Label())
	suite.True(stack.Inner().Changed())
}

func (suite *WithAtSuite) TestShadowedLayer() {
	// With rejects duplicate capabilities, but an explicit index can
	// still address each layer individually
	stack := NewLabeled(NewFlagged(NewLabeled(1234)))

	stack, err := WithAt[Zero](stack, Label("outer"))
	suite.Require().NoError(err)

	stack, err = WithAt[Succ[Succ[Zero]]](stack, Label("inner"))
	suite.Require().NoError(err)

	suite.Equal("outer", stack.Label())
	suite.Equal("inner", stack.Inner().Inner().Label())
}

func (suite *WithAtSuite) TestWrongLayer() {
	stack := MustConstruct[labelFlagTag, depth3](1234)

	_, err := WithAt[Zero](stack, Changed(true))

	var missing *NoCapabilityError
	suite.ErrorAs(err, &missing)
}

func (suite *WithAtSuite) TestTooDeep() {
	stack := NewFlagged(1234)

	_, err := WithAt[Succ[Succ[Zero]]](stack, Changed(true))

	var de *DepthError
	suite.ErrorAs(err, &de)
}

func TestWithAt(t *testing.T) {
	suite.Run(t, new(WithAtSuite))
}
