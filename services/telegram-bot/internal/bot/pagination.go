package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// PageSize — количество курсов на одной странице каталога.
const PageSize = 5

// paginate вырезает страницу из списка. Страницы считаются с единицы,
// выход за границы прижимается к ближайшей существующей странице.
func paginate[T any](items []T, page, size int) ([]T, int, int) {
	if size <= 0 {
		size = PageSize
	}
	totalPages := (len(items) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}

// buildPaginationRow собирает навигационный ряд inline-клавиатуры.
func buildPaginationRow(currentPage, totalPages int, callbackPrefix string) []tgbotapi.InlineKeyboardButton {
	var buttons []tgbotapi.InlineKeyboardButton

	if currentPage > 1 {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData("⬅️", fmt.Sprintf("%s_page_%d", callbackPrefix, currentPage-1)))
	}
	buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("Страница %d/%d", currentPage, totalPages), "ignore"))
	if currentPage < totalPages {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData("➡️", fmt.Sprintf("%s_page_%d", callbackPrefix, currentPage+1)))
	}
	return buttons
}
