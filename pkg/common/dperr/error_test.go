// Copyright 2024 The dpsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	err := NewBadConfig("pool size %d", -1)
	require.Equal(t, ErrBadConfig, err.ErrorCode())
	require.Contains(t, err.Error(), "invalid configuration")
	require.Contains(t, err.Error(), "pool size -1")

	require.Equal(t, ErrInternal, NewInternal("boom").ErrorCode())
	require.Equal(t, ErrInvalidInput, NewInvalidInput("bad").ErrorCode())
}

func TestIsErrCode(t *testing.T) {
	err := NewInvalidInput("oops")
	require.True(t, IsErrCode(err, ErrInvalidInput))
	require.False(t, IsErrCode(err, ErrInternal))

	require.True(t, IsErrCode(nil, Ok))
	require.False(t, IsErrCode(nil, ErrInternal))
	require.False(t, IsErrCode(fmt.Errorf("plain"), ErrInternal))
}

func TestIsErrCodeWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewBadConfig("inner"))
	require.True(t, IsErrCode(err, ErrBadConfig))
}
