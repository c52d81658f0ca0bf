// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the feed server: the session
// hub and the demo detection emitter.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// has nothing left to do.
//
//	type tick struct{}
//
//	func (tick) Run(ctx context.Context) { <-ctx.Done() }
type Worker interface {
	Run(ctx context.Context)
}
