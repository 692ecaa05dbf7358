package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"courseplatform/services/notification-service/internal/queue"
)

type HandlerFunc func(ctx context.Context, job queue.Job) error

// Source — та часть очереди, которая нужна воркеру.
type Source interface {
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]queue.Job, error)
	Finish(ctx context.Context, id string, execErr error) error
}

// Worker опрашивает очередь и раздаёт созревшие задания обработчикам
// по типу. Порядок между заданиями не гарантируется.
type Worker struct {
	source   Source
	handlers map[string]HandlerFunc
	interval time.Duration
	batch    int
}

func New(source Source, interval time.Duration, batch int) *Worker {
	if interval <= 0 {
		interval = time.Second
	}
	if batch <= 0 {
		batch = 50
	}
	return &Worker{
		source:   source,
		handlers: map[string]HandlerFunc{},
		interval: interval,
		batch:    batch,
	}
}

func (w *Worker) Register(jobType string, h HandlerFunc) {
	w.handlers[jobType] = h
}

// Run крутит цикл опроса до отмены контекста.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll — один проход: забрать созревшие задания и выполнить каждое.
// Отказ одного задания не трогает остальные.
func (w *Worker) Poll(ctx context.Context) {
	jobs, err := w.source.ClaimDue(ctx, time.Now(), w.batch)
	if err != nil {
		log.Printf("worker: claim failed: %v", err)
		return
	}

	for _, job := range jobs {
		execErr := w.execute(ctx, job)
		if execErr != nil {
			log.Printf("worker: job %s (%s) failed: %v", job.ID, job.Type, execErr)
		}
		if err := w.source.Finish(ctx, job.ID, execErr); err != nil {
			log.Printf("worker: failed to record outcome for job %s: %v", job.ID, err)
		}
	}
}

func (w *Worker) execute(ctx context.Context, job queue.Job) error {
	h, ok := w.handlers[job.Type]
	if !ok {
		return fmt.Errorf("no handler registered for job type %q", job.Type)
	}
	return h(ctx, job)
}
