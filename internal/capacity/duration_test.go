package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	t.Run("границы включаются в длительность", func(t *testing.T) {
		assert.Equal(t, 10, DurationDays(date(2025, time.March, 3), date(2025, time.March, 12)))
	})

	t.Run("один день", func(t *testing.T) {
		assert.Equal(t, 1, DurationDays(date(2025, time.March, 3), date(2025, time.March, 3)))
	})

	t.Run("переход через месяц", func(t *testing.T) {
		assert.Equal(t, 14, DurationDays(date(2025, time.January, 27), date(2025, time.February, 9)))
	})

	t.Run("время суток не влияет на количество дней", func(t *testing.T) {
		from := time.Date(2025, time.March, 3, 23, 50, 0, 0, time.UTC)
		to := time.Date(2025, time.March, 12, 0, 10, 0, 0, time.UTC)
		assert.Equal(t, 10, DurationDays(from, to))
	})

	t.Run("конец раньше начала дает неположительное значение", func(t *testing.T) {
		assert.LessOrEqual(t, DurationDays(date(2025, time.March, 12), date(2025, time.March, 3)), 0)
	})
}

func TestWorkingDays(t *testing.T) {
	assert.Equal(t, 12, WorkingDays(14, 2))
	assert.Equal(t, 10, WorkingDays(10, 0))
	assert.Equal(t, 0, WorkingDays(3, 5), "праздников больше, чем дней - рабочих дней ноль")
}
