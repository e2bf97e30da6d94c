// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

func TestEqual(t *testing.T) {
	Equal(t, 3.1415, 3.1416)
	EqualTol(t, float32(1), 1.0000001, 1e-6)
	EqualTol(t, math.NaN(), math.NaN(), 0)
	EqualTol(t, math.Inf(-1), math.Inf(-1), 0)
	EqualRelTol(t, 1e10, 1e10+1e5, 1e-4, 0)

	mt := &mockT{}
	assert.False(t, EqualTol(mt, 1, 1.1, 0.01))
	assert.False(t, EqualTol(mt, math.Inf(1), math.Inf(-1), 1))
	assert.False(t, EqualTol(mt, 0, math.NaN(), 1))
	assert.False(t, EqualRelTol(mt, 1e-10, 2e-10, 1e-4, 0))
	assert.True(t, mt.failed)
}
