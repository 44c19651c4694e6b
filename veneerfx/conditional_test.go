package veneerfx

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"

	"github.com/xmidt-org/veneer"
	"github.com/xmidt-org/veneer/veneertest"
)

type ConditionalSuite struct {
	veneertest.StackSuite
}

func (suite *ConditionalSuite) TestIf() {
	suite.NotNil(If(true))
	suite.Nil(If(false))
}

func (suite *ConditionalSuite) TestIfNot() {
	suite.Nil(IfNot(true))
	suite.NotNil(IfNot(false))
}

func (suite *ConditionalSuite) testThen(audited bool, expected string) {
	var s stack
	app := fx.New(
		fx.NopLogger,
		Provide[stack, veneer.Succ[veneer.Succ[veneer.Zero]]]("payload"),
		If(audited).Then(
			Supply(veneer.Label("audited")),
		),
		IfNot(audited).Then(
			Supply(veneer.Label("unaudited")),
		),
		fx.Populate(&s),
	)

	suite.Require().NoError(app.Err())
	suite.RequireLabel(s, expected)
}

func (suite *ConditionalSuite) TestThen() {
	suite.Run("Audited", func() { suite.testThen(true, "audited") })
	suite.Run("Unaudited", func() { suite.testThen(false, "unaudited") })
}

func TestConditional(t *testing.T) {
	suite.Run(t, new(ConditionalSuite))
}
