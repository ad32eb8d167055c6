// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// QueueControllerCollection controls queues sharing one wait group
type QueueControllerCollection struct {
	waitGroup *sync.WaitGroup
	queues    []QueueController
}

// NewQueueControllerCollection creates a collection of queues tracked by waitGroup
func NewQueueControllerCollection(waitGroup *sync.WaitGroup, queues ...QueueController) *QueueControllerCollection {
	return &QueueControllerCollection{waitGroup, queues}
}

// Add adds a queue to the collection
func (q *QueueControllerCollection) Add(queue QueueController) {
	q.queues = append(q.queues, queue)
}

// Start starts all queues
func (q *QueueControllerCollection) Start(ctx context.Context) {
	for _, queue := range q.queues {
		queue.Start(ctx)
	}
}

// Stop stops all queues
func (q *QueueControllerCollection) Stop() {
	for _, queue := range q.queues {
		queue.Stop()
	}
}

// Wait blocks until all added tasks are processed
func (q *QueueControllerCollection) Wait() {
	q.waitGroup.Wait()
}

// GetErrorList returns the errors of all queues
func (q *QueueControllerCollection) GetErrorList() *multierror.Error {
	var errors *multierror.Error
	for _, queue := range q.queues {
		if errs := queue.GetErrorList(); errs != nil {
			errors = multierror.Append(errors, errs.Errors...)
		}
	}
	return errors
}

// LogTaskProcessed logs the processed task count of every queue
func (q *QueueControllerCollection) LogTaskProcessed() {
	for _, queue := range q.queues {
		klog.Infof("%s tasks processed: %d\n", queue.Name(), queue.GetProcessedTasksCount())
	}
}
