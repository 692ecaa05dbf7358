package state

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNoPending = errors.New("no pending enrollment")

// PendingEnroll — промежуточный выбор пользователя в сценарии записи:
// курс выбран, дата возможно выбрана, время еще нет.
type PendingEnroll struct {
	CourseID string `json:"course_id"`
	Date     string `json:"date,omitempty"`
}

// Store держит UI-состояние бота в Redis по chat id.
// Состояние переживает рестарт процесса, в памяти ничего не хранится.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: 30 * time.Minute}
}

func pageKey(chatID int64) string {
	return "bot:page:" + strconv.FormatInt(chatID, 10)
}

func pendingKey(chatID int64) string {
	return "bot:pending:" + strconv.FormatInt(chatID, 10)
}

func (s *Store) SetPage(ctx context.Context, chatID int64, page int) error {
	return s.client.Set(ctx, pageKey(chatID), page, s.ttl).Err()
}

func (s *Store) Page(ctx context.Context, chatID int64) (int, error) {
	val, err := s.client.Get(ctx, pageKey(chatID)).Int()
	if err == redis.Nil {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

func (s *Store) SetPending(ctx context.Context, chatID int64, p PendingEnroll) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, pendingKey(chatID), raw, s.ttl).Err()
}

func (s *Store) Pending(ctx context.Context, chatID int64) (PendingEnroll, error) {
	raw, err := s.client.Get(ctx, pendingKey(chatID)).Bytes()
	if err == redis.Nil {
		return PendingEnroll{}, ErrNoPending
	}
	if err != nil {
		return PendingEnroll{}, err
	}

	var p PendingEnroll
	if err := json.Unmarshal(raw, &p); err != nil {
		return PendingEnroll{}, err
	}
	return p, nil
}

func (s *Store) ClearPending(ctx context.Context, chatID int64) error {
	return s.client.Del(ctx, pendingKey(chatID)).Err()
}
