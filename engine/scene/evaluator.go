package scene

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spaghettifunk/animath/engine/core"
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/batch"
	"github.com/spaghettifunk/animath/engine/math/random"
	"github.com/spaghettifunk/animath/engine/math/shapes"
	"github.com/spaghettifunk/animath/engine/math/simd"
)

// JobTask is one unit of work for the evaluator's workers.
type JobTask struct {
	Run func() error
	// OnComplete runs after Run succeeded, OnFailure after it failed.
	OnComplete func()
	OnFailure  func(err error)
	// OnCompletionCallback always runs last.
	OnCompletionCallback func()
}

// Evaluator runs scene queries on a fixed pool of worker goroutines.
type Evaluator struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	metrics *core.Metrics
}

func NewEvaluator(numWorkers int, channelSize int) (*Evaluator, error) {
	if numWorkers <= 0 {
		return nil, core.ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, core.ErrNegativeChannelSize
	}

	e := &Evaluator{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
		metrics:    core.NewMetrics(),
	}
	e.start()
	return e, nil
}

func (e *Evaluator) start() {
	for i := 0; i < e.numWorkers; i++ {
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			for job := range e.jobQueue {
				if err := job.Run(); err != nil {
					core.LogError("%s", err)
					if job.OnFailure != nil {
						job.OnFailure(err)
					}
				} else if job.OnComplete != nil {
					job.OnComplete()
				}

				if job.OnCompletionCallback != nil {
					job.OnCompletionCallback()
				}
			}
		}()
	}
}

func (e *Evaluator) Workers() int { return e.numWorkers }

// Metrics tracks the time spent per job across every evaluation.
func (e *Evaluator) Metrics() *core.Metrics { return e.metrics }

/**
 * @brief Shuts the evaluator down, waiting for queued jobs to finish. Calling
 * it again is a no-op.
 */
func (e *Evaluator) Shutdown() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	close(e.jobQueue)
	e.mu.Unlock()

	e.wg.Wait()
	return nil
}

/**
 * @brief Queues a job, blocking while the queue is full.
 * @return ErrEvaluatorClosed after Shutdown, or the context error.
 */
func (e *Evaluator) Submit(ctx context.Context, jt JobTask) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return core.ErrEvaluatorClosed
	}
	select {
	case e.jobQueue <- jt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

/**
 * @brief Evaluates every query and volume estimate of the scene, one job
 * each, and collects the results in scene order.
 */
func (e *Evaluator) Evaluate(ctx context.Context, s *Scene) (*Report, error) {
	world, err := s.Compile()
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Scene:   s.Name,
		Source:  s.Path(),
		Backend: string(simd.Info().Implementation),
		Workers: e.numWorkers,
		Results: make([]QueryResult, len(s.Queries)),
		Volumes: make([]VolumeEstimate, len(s.Estimates)),
	}

	clock := core.NewClock()
	clock.Start()

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error
	fail := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	submit := func(run func() error) error {
		wg.Add(1)
		err := e.Submit(ctx, JobTask{
			Run: func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				err := run()
				e.metrics.Update(time.Since(start))
				return err
			},
			OnFailure:            fail,
			OnCompletionCallback: wg.Done,
		})
		if err != nil {
			wg.Done()
		}
		return err
	}

	for i := range s.Queries {
		i, q := i, s.Queries[i]
		if err := submit(func() error {
			result, err := evaluateQuery(world, q)
			report.Results[i] = result
			return err
		}); err != nil {
			return nil, err
		}
	}
	for i := range s.Estimates {
		i, est := i, s.Estimates[i]
		if err := submit(func() error {
			v, err := estimateVolume(world, est)
			report.Volumes[i] = v
			return err
		}); err != nil {
			return nil, err
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if firstErr != nil {
		return nil, firstErr
	}

	clock.Stop()
	report.Elapsed = clock.Elapsed()
	report.AvgJobMs = e.metrics.Average()
	core.LogDebug("evaluated scene %q: %d queries, %d estimates in %s", s.Name, len(s.Queries), len(s.Estimates), report.Elapsed)
	return report, nil
}

func evaluateQuery(world *World, q Query) (QueryResult, error) {
	p := vecOf(q.Point)
	result := QueryResult{Query: q.Name, Point: p.Array()}

	targets, err := world.Targets(q.Targets)
	if err != nil {
		return result, fmt.Errorf("query %q: %w", q.Name, err)
	}

	var ray *shapes.Ray
	if q.Direction != nil {
		r := shapes.NewRay(p, vecOf(q.Direction))
		ray = &r
	}

	result.Shapes = make([]ShapeResult, 0, len(targets))
	for _, body := range targets {
		closest := body.ClosestPoint(p)
		sr := ShapeResult{
			Shape:    body.ID(),
			Kind:     body.Kind(),
			Contains: body.Contains(p),
			Closest:  closest.Array(),
			Distance: p.Distance(closest),
		}
		if caster, ok := body.(Raycaster); ok && ray != nil {
			if t, hit := caster.Raycast(*ray); hit {
				sr.Hit = &RayHit{T: t, Point: ray.PointAt(t).Array()}
			}
		}
		result.Shapes = append(result.Shapes, sr)
	}
	return result, nil
}

/**
 * @brief Estimates the volume of one body by sampling its bounds: the bounds
 * volume times the fraction of samples inside the body.
 */
func estimateVolume(world *World, est Estimate) (VolumeEstimate, error) {
	body, ok := world.Body(est.Shape)
	if !ok {
		return VolumeEstimate{}, fmt.Errorf("estimate %q: %w", est.Shape, core.ErrUnknownShape)
	}

	bounds := body.Bounds()
	gen := random.NewGenerator(est.Seed)
	samples := batch.NewPointCloud(est.Samples)
	for i := 0; i < est.Samples; i++ {
		samples.Append(gen.PointInAabb(bounds))
	}

	inside := batch.NewPointCloud(est.Samples)
	for _, p := range samples.Points() {
		if body.Contains(p) {
			inside.Append(p)
		}
	}

	v := VolumeEstimate{
		Shape:        est.Shape,
		Samples:      est.Samples,
		Inside:       inside.Len(),
		BoundsVolume: bounds.Volume(),
	}
	v.Volume = v.BoundsVolume * float32(v.Inside) / float32(v.Samples)
	if inside.Len() > 0 {
		v.Centroid = inside.Centroid().Array()
	} else {
		v.Centroid = math.NewVec3Zero().Array()
	}
	return v, nil
}
