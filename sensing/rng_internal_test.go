// SPDX-License-Identifier: MIT
package sensing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeed_SpreadsStreams(t *testing.T) {
	seen := make(map[uint64]struct{})
	for column := 0; column < 64; column++ {
		for _, purpose := range []uint64{purposeOperator, purposeNoise, purposeSupport, purposeValues} {
			src := streamSource(1, column, purpose)
			v := src.Uint64()
			_, dup := seen[v]
			assert.False(t, dup, "column %d purpose %d collides", column, purpose)
			seen[v] = struct{}{}
		}
	}
	assert.Equal(t, deriveSeed(1, 5), deriveSeed(1, 5))
	assert.NotEqual(t, deriveSeed(1, 5), deriveSeed(2, 5))
}
