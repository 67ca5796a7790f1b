package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePoints(t *testing.T) {
	cases := []struct {
		name           string
		totalQuestions uint
		attempts       uint
		want           uint
	}{
		{"fewer attempts than questions earns double the savings", 5, 3, 9},
		{"exactly as many attempts as questions clamps to base", 5, 5, 5},
		{"more attempts than questions clamps to base", 5, 7, 5},
		{"perfect run", 5, 0, 15},
		{"single question level", 1, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, computePoints(tc.totalQuestions, tc.attempts))
		})
	}
}
