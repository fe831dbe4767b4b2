package service

// QuestionsPerPage задает фиксированный размер страницы выдачи
const QuestionsPerPage = 10

// Paginate возвращает страницу page (нумерация с 1) из items.
// Страницы за пределами выборки, нулевая и отрицательные страницы
// дают пустой результат, а не ошибку. Исходный срез не изменяется,
// результат — копия.
func Paginate[T any](items []T, page int) []T {
	start := (page - 1) * QuestionsPerPage
	if start < 0 || start >= len(items) {
		return []T{}
	}

	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
