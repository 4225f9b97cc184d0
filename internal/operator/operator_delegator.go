package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

const defaultQueueSize = 1000

var ErrStopped = errors.New("operator: delegator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	// stopMu keeps Process from sending on a closed queue.
	stopMu  sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(numWorkers, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	return &OperatorDelegator{
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for the workers to drain it.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stopMu.Lock()
		d.stopped = true
		close(d.queue)
		d.stopMu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action against l and waits for its outcome. ctx only
// bounds the wait for a queue slot; an error return means the action was not
// applied.
func (d *OperatorDelegator) Process(ctx context.Context, l *ledger.Ledger, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		ledger:   l,
		action:   action,
		response: respCh,
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	d.stopMu.RLock()
	if d.stopped {
		d.stopMu.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
		d.stopMu.RUnlock()
	case <-ctx.Done():
		d.stopMu.RUnlock()
		return ctx.Err()
	}

	// Once queued, the worker always replies: either it skips the item
	// because ctx is done, or it applies it and reports the outcome.
	resp := <-respCh
	return resp.err
}
