package renderer

import (
	"image"
	"sync"
)

// RowResult is the output of one worker
type RowResult struct {
	Worker  int
	Partial *image.RGBA
	Stats   WorkerStats
}

// WorkerPool runs one worker per renderer to completion. There is no
// communication between workers until every one of them has finished.
type WorkerPool struct {
	workers     []*Worker
	resultQueue chan RowResult
	wg          sync.WaitGroup
}

// Worker renders the rows owned by one TileRenderer
type Worker struct {
	ID          int
	renderer    *TileRenderer
	resultQueue chan RowResult
}

// NewWorkerPool creates one worker for each renderer; worker i owns the rows
// with row % len(renderers) == i.
func NewWorkerPool(renderers []*TileRenderer) *WorkerPool {
	wp := &WorkerPool{
		resultQueue: make(chan RowResult, len(renderers)), // One result per worker
	}

	for i, r := range renderers {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    r,
			resultQueue: wp.resultQueue,
		})
	}
	return wp
}

// Run starts every worker, waits for all of them and returns their results
// ordered by worker id
func (wp *WorkerPool) Run() []RowResult {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg, len(wp.workers))
	}
	wp.wg.Wait()
	close(wp.resultQueue)

	results := make([]RowResult, len(wp.workers))
	for result := range wp.resultQueue {
		results[result.Worker] = result
	}
	return results
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

func (w *Worker) run(wg *sync.WaitGroup, threads int) {
	defer wg.Done()

	partial, stats := w.renderer.RenderRows(w.ID, threads)
	stats.Worker = w.ID
	w.resultQueue <- RowResult{Worker: w.ID, Partial: partial, Stats: stats}
}
