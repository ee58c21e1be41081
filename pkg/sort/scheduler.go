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

package sort

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/dualpivot/dpsort/pkg/common/dperr"
	"github.com/dualpivot/dpsort/pkg/config"
	"github.com/dualpivot/dpsort/pkg/logutil"
)

// Scheduler runs sort and merge tasks on a bounded worker pool. Tasks
// never block a worker on another task's result, so a fixed pool size
// services arbitrarily deep fork trees.
type Scheduler struct {
	pool *ants.Pool
}

// NewScheduler builds a scheduler from cfg. A zero Size means one
// worker per CPU; a negative Size is rejected.
func NewScheduler(cfg config.PoolConfig) (*Scheduler, error) {
	if cfg.Size < 0 {
		return nil, dperr.NewInvalidInput("pool size %d is negative", cfg.Size)
	}
	size := cfg.Size
	if size == 0 {
		size = runtime.NumCPU()
	}

	// The pool must reject work when saturated rather than queue the
	// caller: submitters are themselves workers, and a blocked submit
	// would hold a worker slot while waiting for one to free up.
	opts := []ants.Option{ants.WithNonblocking(true)}
	if cfg.PreAlloc {
		opts = append(opts, ants.WithPreAlloc(true))
	}

	pool, err := ants.NewPool(size, opts...)
	if err != nil {
		return nil, dperr.NewInternal("create worker pool: %v", err)
	}
	logutil.Debugf("sort: worker pool created, size %d", size)
	return &Scheduler{pool: pool}, nil
}

// submit hands fn to the pool. A rejected submission runs inline on
// the caller: that loses parallelism but keeps the completion
// protocol intact.
func (s *Scheduler) submit(fn func()) {
	if err := s.pool.Submit(fn); err != nil {
		// Saturation is routine under load, not an error.
		logutil.Debugf("sort: pool saturated, running task inline: %v", err)
		fn()
	}
}

// Release tears the worker pool down. Tasks already submitted run to
// completion.
func (s *Scheduler) Release() {
	s.pool.Release()
}

var (
	defaultMu    sync.Mutex
	defaultSched *Scheduler
)

// InitScheduler replaces the process-wide scheduler used by
// ParallelSort and ParallelSortFunc. The previous one, if any, is
// released.
func InitScheduler(cfg config.PoolConfig) error {
	s, err := NewScheduler(cfg)
	if err != nil {
		return err
	}

	defaultMu.Lock()
	old := defaultSched
	defaultSched = s
	defaultMu.Unlock()

	if old != nil {
		old.Release()
	}
	return nil
}

// defaultScheduler returns the process-wide scheduler, creating it on
// first use. It lives for the rest of the process.
func defaultScheduler() *Scheduler {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSched == nil {
		s, err := NewScheduler(config.PoolConfig{})
		if err != nil {
			panic(err)
		}
		defaultSched = s
	}
	return defaultSched
}
