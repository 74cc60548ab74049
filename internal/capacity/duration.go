package capacity

import "time"

// DurationDays - количество календарных дней спринта, включая обе границы.
// Считается напрямую по датам, без перевода через Instant/UTC.
// Для toDate < fromDate возвращает значение <= 0; валидация дат -
// ответственность вызывающего кода.
func DurationDays(fromDate, toDate time.Time) int {
	from := time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(toDate.Year(), toDate.Month(), toDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

// WorkingDays - рабочие дни спринта за вычетом праздников, не меньше нуля
func WorkingDays(durationDays, holidays int) int {
	if durationDays-holidays < 0 {
		return 0
	}
	return durationDays - holidays
}
