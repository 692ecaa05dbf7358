package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Статусы задания. Хранятся в хеше job:<id> рядом с телом.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

var ErrJobNotFound = errors.New("job not found")

// Сколько живёт хеш со статусом после постановки. Само задание из
// отсортированного набора забирается воркером и не протухает.
const jobTTL = 7 * 24 * time.Hour

type Job struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	FireAt     time.Time       `json:"fire_at"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// Queue — отложенная очередь на Redis: ZSET со временем срабатывания в score,
// тело и статус — в хеше job:<id>. Гарантия "не раньше fire_at", без
// верхней границы задержки.
type Queue struct {
	rdb *redis.Client
	key string
}

func New(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb, key: "jobs:scheduled"}
}

// Забираем созревшие задания и сразу убираем их из набора одним скриптом,
// чтобы два воркера не схватили одно и то же.
var claimScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, ARGV[2])
if #due > 0 then
    redis.call('ZREM', KEYS[1], unpack(due))
end
return due
`)

// Enqueue ставит одно отложенное задание и возвращает его id.
func (q *Queue) Enqueue(ctx context.Context, jobType string, payload any, notBefore time.Time) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	job := Job{
		ID:         uuid.New().String(),
		Type:       jobType,
		Payload:    raw,
		FireAt:     notBefore,
		EnqueuedAt: time.Now(),
	}
	body, err := json.Marshal(job)
	if err != nil {
		return "", err
	}

	pipe := q.rdb.TxPipeline()
	pipe.HSet(ctx, q.jobKey(job.ID), "body", body, "status", StatusQueued)
	pipe.Expire(ctx, q.jobKey(job.ID), jobTTL)
	pipe.ZAdd(ctx, q.key, redis.Z{Score: float64(notBefore.Unix()), Member: job.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}

	return job.ID, nil
}

// ClaimDue атомарно забирает до limit заданий, чьё время пришло,
// и помечает их выполняющимися.
func (q *Queue) ClaimDue(ctx context.Context, now time.Time, limit int) ([]Job, error) {
	ids, err := claimScript.Run(ctx, q.rdb, []string{q.key}, now.Unix(), limit).StringSlice()
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(ids))
	for _, id := range ids {
		body, err := q.rdb.HGet(ctx, q.jobKey(id), "body").Result()
		if err != nil {
			// Хеш протух или потерян — задание пропало, фиксируем и едем дальше.
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(body), &job); err != nil {
			continue
		}

		q.rdb.HSet(ctx, q.jobKey(id), "status", StatusRunning)
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Finish записывает исход выполнения задания.
func (q *Queue) Finish(ctx context.Context, id string, execErr error) error {
	fields := []any{"status", StatusSucceeded, "finished_at", time.Now().Format(time.RFC3339)}
	if execErr != nil {
		fields = []any{"status", StatusFailed, "error", execErr.Error(), "finished_at", time.Now().Format(time.RFC3339)}
	}
	return q.rdb.HSet(ctx, q.jobKey(id), fields...).Err()
}

// Status возвращает текущий статус задания и текст ошибки, если оно упало.
func (q *Queue) Status(ctx context.Context, id string) (status, errText string, err error) {
	vals, err := q.rdb.HMGet(ctx, q.jobKey(id), "status", "error").Result()
	if err != nil {
		return "", "", err
	}
	if vals[0] == nil {
		return "", "", ErrJobNotFound
	}
	status = fmt.Sprint(vals[0])
	if vals[1] != nil {
		errText = fmt.Sprint(vals[1])
	}
	return status, errText, nil
}

func (q *Queue) jobKey(id string) string {
	return "job:" + id
}
