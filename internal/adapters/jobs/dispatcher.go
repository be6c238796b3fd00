// internal/adapters/jobs/dispatcher.go
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// Dispatcher enqueues background work through Asynq. Scheduler is optional;
// without one, Recurring and Delete return an error.
type Dispatcher struct {
	client    *asynq.Client
	scheduler *asynq.Scheduler
	retryMax  int
	logger    *slog.Logger
}

var _ ports.JobDispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher backed by an Asynq client.
func NewDispatcher(client *asynq.Client, scheduler *asynq.Scheduler, retryMax int, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		client:    client,
		scheduler: scheduler,
		retryMax:  retryMax,
		logger:    logger.With(slog.String("component", "dispatcher")),
	}
}

// Enqueue submits a task for immediate processing.
func (d *Dispatcher) Enqueue(ctx context.Context, operation string, payload any) error {
	task, err := d.buildTask(operation, payload)
	if err != nil {
		return err
	}

	info, err := d.client.EnqueueContext(ctx, task, asynq.MaxRetry(d.retryMax))
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", operation, err)
	}

	d.logger.DebugContext(ctx, "task enqueued",
		slog.String("type", operation),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))

	return nil
}

// Schedule submits a task to run after the given delay.
func (d *Dispatcher) Schedule(ctx context.Context, operation string, payload any, delay time.Duration) error {
	task, err := d.buildTask(operation, payload)
	if err != nil {
		return err
	}

	info, err := d.client.EnqueueContext(ctx, task,
		asynq.MaxRetry(d.retryMax),
		asynq.ProcessIn(delay))
	if err != nil {
		return fmt.Errorf("failed to schedule %s task: %w", operation, err)
	}

	d.logger.DebugContext(ctx, "task scheduled",
		slog.String("type", operation),
		slog.String("task_id", info.ID),
		slog.Duration("delay", delay))

	return nil
}

// Recurring registers a task on a cron schedule and returns the entry id.
func (d *Dispatcher) Recurring(operation string, payload any, cronSpec string) (string, error) {
	if d.scheduler == nil {
		return "", fmt.Errorf("no scheduler configured for recurring tasks")
	}

	task, err := d.buildTask(operation, payload)
	if err != nil {
		return "", err
	}

	entryID, err := d.scheduler.Register(cronSpec, task, asynq.MaxRetry(d.retryMax))
	if err != nil {
		return "", fmt.Errorf("failed to register recurring %s task: %w", operation, err)
	}

	d.logger.Debug("recurring task registered",
		slog.String("type", operation),
		slog.String("entry_id", entryID),
		slog.String("cron", cronSpec))

	return entryID, nil
}

// Delete unregisters a recurring task entry.
func (d *Dispatcher) Delete(entryID string) error {
	if d.scheduler == nil {
		return fmt.Errorf("no scheduler configured for recurring tasks")
	}

	if err := d.scheduler.Unregister(entryID); err != nil {
		return fmt.Errorf("failed to unregister entry %s: %w", entryID, err)
	}

	return nil
}

func (d *Dispatcher) buildTask(operation string, payload any) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", operation, err)
	}
	return asynq.NewTask(operation, data), nil
}
