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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dualpivot/dpsort/pkg/common/dperr"
	"github.com/dualpivot/dpsort/pkg/logutil"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dpsort.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
[log]
level = "debug"
format = "json"
filename = "/tmp/dpsort.log"
max-size = 64

[pool]
size = 8
pre-alloc = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 64, cfg.Log.MaxSize)
	require.Equal(t, 8, cfg.Pool.Size)
	require.True(t, cfg.Pool.PreAlloc)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Pool.Size)
	require.Empty(t, cfg.Log.Level)
}

func TestLoadBadToml(t *testing.T) {
	_, err := Load(writeFile(t, "not toml ["))
	require.Error(t, err)
	require.True(t, dperr.IsErrCode(err, dperr.ErrBadConfig))
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{Pool: PoolConfig{Size: -1}},
		{Log: logutil.LogConfig{Level: "verbose"}},
		{Log: logutil.LogConfig{Format: "xml"}},
	}
	for i := range bad {
		err := bad[i].Validate()
		require.True(t, dperr.IsErrCode(err, dperr.ErrBadConfig), "case %d", i)
	}

	good := Config{}
	good.Log.Level = "warn"
	good.Log.Format = "console"
	require.NoError(t, good.Validate())
}
