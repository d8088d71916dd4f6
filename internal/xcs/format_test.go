package xcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeCondRendersBinaryConditionAsBitsAndDontCare(t *testing.T) {
	// dim 0: [0,0] -> '0'; dim 1: [1,1] -> '1'; dim 2: [0,1] -> '#'
	cond := Condition{0, 0, 1, 1, 0, 1}
	assert.Equal(t, "01#", composeCond(cond))
}

func TestComposeCondRendersRealConditionAsTruncatedIntervals(t *testing.T) {
	cond := Condition{0.5, 0.5, 1.25, 3.75}
	assert.Equal(t, "[0.500][1.250..3.750]", composeCond(cond))
}

func TestTruncate5FormatsFixedSixDecimalsThenTruncates(t *testing.T) {
	assert.Equal(t, "1.500", truncate5(1.5))
	assert.Equal(t, "0.000", truncate5(0))
	assert.Equal(t, "0.370", truncate5(0.37))
}

func TestClassifierStringRendersSemicolonSeparatedFields(t *testing.T) {
	cl := newClassifier(Rule{Condition: Condition{0, 0}, Action: 1})
	cl.Prediction = 500
	cl.Fitness = 10
	cl.PredictionError = 0
	cl.Numerosity = 1
	cl.Experience = 0

	assert.Equal(t, "0;1;500.000;10.000;0.000;1;0", cl.String())
}
