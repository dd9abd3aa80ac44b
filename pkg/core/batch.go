/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch evaluation over a small worker pool. Each request runs the
sequential pipeline on its own; workers only spread independent requests across
goroutines. Results are returned in input order.
*/

package core

import (
	"context"
	"runtime"
	"sync"

	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// BatchResult pairs a request with its evaluation or error
type BatchResult struct {
	Index      int
	Request    interfaces.Request
	Evaluation *interfaces.Evaluation
	Err        error
}

type batchJob struct {
	index int
	req   interfaces.Request
}

// EvaluateBatch evaluates requests concurrently. workers <= 0 uses GOMAXPROCS.
// Requests not dispatched before ctx is cancelled carry ctx.Err().
func (e *Engine) EvaluateBatch(ctx context.Context, reqs []interfaces.Request, workers int) []BatchResult {
	results := make([]BatchResult, len(reqs))
	if len(reqs) == 0 {
		return results
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	jobs := make(chan batchJob)
	var wg sync.WaitGroup

	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for job := range jobs {
				eval, err := e.Evaluate(job.req)
				if err != nil {
					e.logger.WithFields(logrus.Fields{
						"worker": id,
						"index":  job.index,
					}).Warnf("Batch request rejected: %v", err)
				}
				results[job.index] = BatchResult{Index: job.index, Request: job.req, Evaluation: eval, Err: err}
			}
		}(id)
	}

	next := 0
dispatch:
	for ; next < len(reqs) && ctx.Err() == nil; next++ {
		select {
		case jobs <- batchJob{index: next, req: reqs[next]}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(reqs); i++ {
		results[i] = BatchResult{Index: i, Request: reqs[i], Err: ctx.Err()}
	}
	return results
}
