package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"courseplatform/services/telegram-bot/internal/client"
	"courseplatform/services/telegram-bot/internal/state"
)

const (
	btnCourses   = "Курсы"
	btnMyCourses = "Мои курсы"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	gateway *client.GatewayClient
	state   *state.Store
}

func New(api *tgbotapi.BotAPI, gateway *client.GatewayClient, st *state.Store) *Bot {
	return &Bot{api: api, gateway: gateway, state: st}
}

func (b *Bot) SendText(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// Run крутит long polling до отмены контекста.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.CallbackQuery != nil {
				b.processCallback(ctx, update.CallbackQuery)
				continue
			}
			if update.Message != nil {
				b.processMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	var handler handlerFunc
	switch {
	case msg.IsCommand() && msg.Command() == "start":
		handler = b.handleStart
	case text == btnCourses:
		handler = func(ctx context.Context, chatID int64) error {
			// Возвращаемся на страницу, где пользователь остановился
			page, err := b.state.Page(ctx, chatID)
			if err != nil {
				page = 1
			}
			return b.showCourses(ctx, chatID, page)
		}
	case text == btnMyCourses:
		handler = b.showMyCourses
	default:
		handler = func(_ context.Context, chatID int64) error {
			return b.SendText(chatID, "Не понимаю. Используйте кнопки «Курсы» и «Мои курсы».")
		}
	}

	_ = withErrorReply(b, handler)(ctx, chatID)
}

func (b *Bot) processCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	data := cb.Data

	// Убираем "часики" на кнопке
	_, _ = b.api.Request(tgbotapi.NewCallback(cb.ID, ""))

	var handler handlerFunc
	switch {
	case data == "ignore":
		return
	case strings.HasPrefix(data, "courses_page_"):
		page, err := strconv.Atoi(strings.TrimPrefix(data, "courses_page_"))
		if err != nil {
			return
		}
		handler = func(ctx context.Context, chatID int64) error {
			return b.showCourses(ctx, chatID, page)
		}
	case strings.HasPrefix(data, "course_"):
		courseID := strings.TrimPrefix(data, "course_")
		handler = func(ctx context.Context, chatID int64) error {
			return b.showDates(ctx, chatID, courseID)
		}
	case strings.HasPrefix(data, "date_"):
		date := strings.TrimPrefix(data, "date_")
		handler = func(ctx context.Context, chatID int64) error {
			return b.showTimes(ctx, chatID, date)
		}
	case strings.HasPrefix(data, "time_"):
		scheduleID := strings.TrimPrefix(data, "time_")
		handler = func(ctx context.Context, chatID int64) error {
			return b.enroll(ctx, chatID, scheduleID)
		}
	default:
		return
	}

	_ = withErrorReply(b, handler)(ctx, chatID)
}

func (b *Bot) handleStart(_ context.Context, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Привет! Здесь можно посмотреть курсы и записаться на занятия.")
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCourses),
			tgbotapi.NewKeyboardButton(btnMyCourses),
		),
	)
	_, err := b.api.Send(msg)
	return err
}

// showCourses показывает страницу каталога: по кнопке на курс плюс навигация.
func (b *Bot) showCourses(ctx context.Context, chatID int64, page int) error {
	courses, err := b.gateway.AvailableCourses(ctx, chatID)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		return b.SendText(chatID, "Доступных курсов пока нет.")
	}

	pageCourses, current, total := paginate(courses, page, PageSize)
	if err := b.state.SetPage(ctx, chatID, current); err != nil {
		return err
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, course := range pageCourses {
		label := fmt.Sprintf("%s — %d ₽", course.Name, course.Price)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "course_"+course.ID),
		))
	}
	rows = append(rows, buildPaginationRow(current, total, "courses"))

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Доступные курсы (страница %d из %d). Выберите курс:", current, total))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err = b.api.Send(msg)
	return err
}

func (b *Bot) showMyCourses(ctx context.Context, chatID int64) error {
	enrollments, err := b.gateway.MyEnrollments(ctx, chatID)
	if err != nil {
		return err
	}
	if len(enrollments) == 0 {
		return b.SendText(chatID, "Вы пока никуда не записаны.")
	}

	text := "Ваши записи:\n\n"
	for _, e := range enrollments {
		details, err := b.gateway.ScheduleDetails(ctx, e.ScheduleID)
		if err != nil {
			return err
		}
		text += fmt.Sprintf("• %s: %s, %s–%s\n", details.CourseName, details.StartDate, details.StartTime, details.EndTime)
	}
	return b.SendText(chatID, text)
}

func (b *Bot) showDates(ctx context.Context, chatID int64, courseID string) error {
	dates, err := b.gateway.ScheduleDates(ctx, courseID)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		return b.SendText(chatID, "У этого курса пока нет расписания.")
	}

	if err := b.state.SetPending(ctx, chatID, state.PendingEnroll{CourseID: courseID}); err != nil {
		return err
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, date := range dates {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(date, "date_"+date),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "Выберите дату начала:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err = b.api.Send(msg)
	return err
}

func (b *Bot) showTimes(ctx context.Context, chatID int64, date string) error {
	pending, err := b.state.Pending(ctx, chatID)
	if err != nil {
		return b.SendText(chatID, "Сначала выберите курс через меню «Курсы».")
	}

	times, err := b.gateway.TimesForDate(ctx, pending.CourseID, date)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return b.SendText(chatID, "На эту дату нет свободного времени.")
	}

	pending.Date = date
	if err := b.state.SetPending(ctx, chatID, pending); err != nil {
		return err
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range times {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.StartTime, "time_"+t.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "Выберите время:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err = b.api.Send(msg)
	return err
}

func (b *Bot) enroll(ctx context.Context, chatID int64, scheduleID string) error {
	pending, err := b.state.Pending(ctx, chatID)
	if err != nil {
		return b.SendText(chatID, "Сначала выберите курс через меню «Курсы».")
	}

	if err := b.gateway.Enroll(ctx, chatID, pending.CourseID, scheduleID); err != nil {
		return err
	}

	_ = b.state.ClearPending(ctx, chatID)
	return b.SendText(chatID, "Вы записаны! За час до начала придёт напоминание.")
}
