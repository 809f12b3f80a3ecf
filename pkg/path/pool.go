package path

import (
	"runtime"
	"sync"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// traceTask is a single ray to trace, tagged for deterministic ordering
type traceTask struct {
	index int
	ray   geom.Ray
}

// traceResult carries a traced ray back to its slot in the bundle
type traceResult struct {
	index  int
	traced TracedRay
}

// TraceParallel traces the ray bundle across a pool of workers. Elements are
// read-only during tracing and every traced ray is owned by the trace that
// produced it, so workers share no mutable state. Results are ordered by
// launch index, identical to Trace.
func (p *OpticalPath) TraceParallel(rays []geom.Ray, numWorkers int) *Trace {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(rays) {
		numWorkers = len(rays)
	}
	if numWorkers <= 1 {
		return p.Trace(rays)
	}

	tasks := make(chan traceTask, len(rays))
	results := make(chan traceResult, len(rays))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				results <- traceResult{index: task.index, traced: p.traceRay(task.ray)}
			}
		}()
	}

	for i, ray := range rays {
		tasks <- traceTask{index: i, ray: ray}
	}
	close(tasks)
	wg.Wait()
	close(results)

	trace := &Trace{
		Rays:     make([]TracedRay, len(rays)),
		Elements: p.elements,
	}
	for result := range results {
		trace.Rays[result.index] = result.traced
	}
	return trace
}
