// Package veneertest provides test scaffolding for packages that build
// or consume decorator stacks.
package veneertest

import (
	"reflect"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/veneer"
)

// StackSuite is an embeddable testify suite with assertions for the
// capability state of decorator stacks of any shape.
type StackSuite struct {
	suite.Suite
}

// RequireChanged asserts that the stack's changed flag capability
// resolves and has the expected state.
func (suite *StackSuite) RequireChanged(stack any, expected bool) {
	fh, err := veneer.Find[veneer.FlagHost](stack)
	suite.Require().NoError(err)
	suite.Equal(expected, fh.Changed())
}

// RequireLabel asserts that the stack's label capability resolves and
// has the expected text.
func (suite *StackSuite) RequireLabel(stack any, expected string) {
	lh, err := veneer.Find[veneer.LabelHost](stack)
	suite.Require().NoError(err)
	suite.Equal(expected, lh.Label())
}

// RequireTag asserts that the stack's usage tag capability resolves to
// the expected identifier.
func (suite *StackSuite) RequireTag(stack any, expected reflect.Type) {
	th, err := veneer.Find[veneer.TagHost](stack)
	suite.Require().NoError(err)
	suite.Equal(expected, th.Tag())
}

// RequirePayload asserts that the stack's innermost value equals the
// expected payload.
func (suite *StackSuite) RequirePayload(stack, expected any) {
	p, err := veneer.Payload[any](stack)
	suite.Require().NoError(err)
	suite.Equal(expected, p)
}
