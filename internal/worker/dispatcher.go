package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
	"github.com/aliskhannn/reminder-dispatcher/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks
type jobQueue interface {
	Consume(ctx context.Context, out chan<- queue.Job) error
	Complete(job queue.Job) error
	Retry(ctx context.Context, job queue.Job, cause error) error
}

type jobHandler interface {
	ProcessDispatchJob(ctx context.Context, job queue.DispatchPayload) error
}

type statusReader interface {
	Status(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error)
}

// Dispatcher runs a pool of workers executing dispatch jobs.
type Dispatcher struct {
	queue   jobQueue
	handler jobHandler
	status  statusReader
}

func NewDispatcher(q jobQueue, h jobHandler, s statusReader) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
		status:  s,
	}
}

// Run consumes jobs with workerCount workers and blocks until ctx is done
// and every worker has finished its current job.
func (d *Dispatcher) Run(ctx context.Context, workerCount int) {
	jobs := make(chan queue.Job, workerCount)

	// A job already taken off the queue runs to completion on shutdown.
	jobCtx := context.WithoutCancel(ctx)

	go func() {
		if err := d.queue.Consume(ctx, jobs); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume dispatch jobs")
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case job := <-jobs:
					d.handle(jobCtx, job)
				}
			}
		}(i)
	}

	wg.Wait()
	zlog.Logger.Print("dispatcher stopped")
}

func (d *Dispatcher) handle(ctx context.Context, job queue.Job) {
	deliveryID := job.Payload.DeliveryID

	status, err := d.status.Status(ctx, deliveryID)
	if err == nil && status == model.DeliverySent {
		zlog.Logger.Printf("delivery %s already sent, skipping", deliveryID)
		d.complete(job)
		return
	}

	if err := d.handler.ProcessDispatchJob(ctx, job.Payload); err != nil {
		if err := d.queue.Retry(ctx, job, err); err != nil {
			zlog.Logger.Error().Err(err).Str("job_id", job.JobID).Msg("failed to retry job")
		}
		return
	}

	d.complete(job)
}

func (d *Dispatcher) complete(job queue.Job) {
	if err := d.queue.Complete(job); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", job.JobID).Msg("failed to ack job")
	}
}
