package bot

import (
	"context"
	"errors"
	"log"
	"net/http"

	"courseplatform/services/telegram-bot/internal/client"
)

// handlerFunc — обработчик одного действия пользователя (сообщение или callback).
type handlerFunc func(ctx context.Context, chatID int64) error

// sender — то, что умеет доставить текст в чат. В тестах подменяется фейком.
type sender interface {
	SendText(chatID int64, text string) error
}

// Сообщения пользователю по видам ошибок. Таблица, а не разбросанные
// строки по обработчикам: все сценарии падают одинаково предсказуемо.
var errorMessages = []struct {
	match func(error) bool
	text  string
}{
	{
		match: func(err error) bool { return errors.Is(err, client.ErrTimeout) },
		text:  "Сервис отвечает слишком долго. Попробуйте ещё раз через минуту.",
	},
	{
		match: func(err error) bool { return errors.Is(err, client.ErrConnection) },
		text:  "Сервис временно недоступен. Попробуйте позже.",
	},
	{
		match: func(err error) bool {
			var statusErr *client.StatusError
			return errors.As(err, &statusErr) && statusErr.Code == http.StatusConflict
		},
		text: "Вы уже записаны на это время.",
	},
	{
		match: func(err error) bool {
			var statusErr *client.StatusError
			return errors.As(err, &statusErr)
		},
		text: "Сервис вернул ошибку. Попробуйте позже.",
	},
}

const fallbackMessage = "Что-то пошло не так. Попробуйте ещё раз."

// userMessage подбирает текст для пользователя по виду ошибки.
func userMessage(err error) string {
	for _, entry := range errorMessages {
		if entry.match(err) {
			return entry.text
		}
	}
	return fallbackMessage
}

// withErrorReply оборачивает обработчик: ошибка логируется,
// пользователь получает понятное сообщение вместо тишины.
func withErrorReply(s sender, handler handlerFunc) handlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := handler(ctx, chatID)
		if err == nil {
			return nil
		}

		log.Printf("handler error for chat %d: %v", chatID, err)
		if sendErr := s.SendText(chatID, userMessage(err)); sendErr != nil {
			log.Printf("failed to send error reply to chat %d: %v", chatID, sendErr)
		}
		return err
	}
}
