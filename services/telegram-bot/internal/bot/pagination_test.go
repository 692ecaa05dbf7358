package bot

import "testing"

func TestPaginateFirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, current, total := paginate(items, 1, 5)
	if len(page) != 5 {
		t.Errorf("Expected 5 items on first page, got %d", len(page))
	}
	if current != 1 {
		t.Errorf("Expected current page 1, got %d", current)
	}
	if total != 2 {
		t.Errorf("Expected 2 total pages, got %d", total)
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, current, total := paginate(items, 2, 5)
	if len(page) != 2 {
		t.Errorf("Expected 2 items on last page, got %d", len(page))
	}
	if current != 2 || total != 2 {
		t.Errorf("Expected page 2 of 2, got %d of %d", current, total)
	}
	if page[0] != 6 || page[1] != 7 {
		t.Errorf("Expected items [6 7], got %v", page)
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := []int{1, 2, 3}

	page, current, total := paginate(items, 10, 5)
	if current != 1 || total != 1 {
		t.Errorf("Expected clamp to page 1 of 1, got %d of %d", current, total)
	}
	if len(page) != 3 {
		t.Errorf("Expected all 3 items, got %d", len(page))
	}

	page, current, _ = paginate(items, -1, 5)
	if current != 1 || len(page) != 3 {
		t.Errorf("Expected negative page clamped to 1, got page %d with %d items", current, len(page))
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, current, total := paginate([]int{}, 1, 5)
	if len(page) != 0 {
		t.Errorf("Expected empty page, got %d items", len(page))
	}
	if current != 1 || total != 1 {
		t.Errorf("Expected page 1 of 1 for empty list, got %d of %d", current, total)
	}
}

func TestBuildPaginationRow(t *testing.T) {
	row := buildPaginationRow(1, 3, "courses")
	// Первая страница: нет кнопки назад
	if len(row) != 2 {
		t.Fatalf("Expected 2 buttons on first page, got %d", len(row))
	}
	if *row[1].CallbackData != "courses_page_2" {
		t.Errorf("Expected forward callback courses_page_2, got %s", *row[1].CallbackData)
	}

	row = buildPaginationRow(2, 3, "courses")
	if len(row) != 3 {
		t.Fatalf("Expected 3 buttons on middle page, got %d", len(row))
	}
	if *row[0].CallbackData != "courses_page_1" {
		t.Errorf("Expected back callback courses_page_1, got %s", *row[0].CallbackData)
	}

	row = buildPaginationRow(3, 3, "courses")
	if len(row) != 2 {
		t.Fatalf("Expected 2 buttons on last page, got %d", len(row))
	}
}
