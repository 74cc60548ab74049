package capacity

// DefaultUnderUtilizedThreshold - порог недозагрузки в процентах
const DefaultUnderUtilizedThreshold = 70.0

// Inputs - сырые параметры одного участника. Указатели моделируют
// отсутствующие значения: политика "отсутствие -> ноль" применяется
// только здесь, на входе в расчет, а не по всем вызывающим местам.
type Inputs struct {
	DurationDays    int
	LeaveDays       *int
	DailyHours      *float64
	CapacityPercent *float64
	AllocatedHours  *float64
}

// Availability - производные величины, округленные до двух знаков
type Availability struct {
	TotalHours         float64
	AvailableHours     float64
	AllocatedHours     float64
	RemainingHours     float64
	UtilizationPercent float64
	OverAllocated      bool
}

// ComputeAvailability - единственный путь вычисления доступных часов,
// остатка и утилизации. Чистая функция: одинаковые входы дают
// одинаковый результат.
//
// Вырожденные входы (duration <= 0 или отсутствующие leave/hours/percent)
// дают нулевые total и available без ошибки - это защитный дефолт,
// который не дает нулям и null расползтись по всей цепочке агрегации.
func ComputeAvailability(in Inputs) Availability {
	var out Availability
	if in.AllocatedHours != nil {
		out.AllocatedHours = Round2(*in.AllocatedHours)
	}

	if in.DurationDays <= 0 || in.LeaveDays == nil || in.DailyHours == nil || in.CapacityPercent == nil {
		out.RemainingHours = Round2(-out.AllocatedHours)
		out.OverAllocated = out.AllocatedHours > 0
		return out
	}

	out.TotalHours = Round2(float64(in.DurationDays) * *in.DailyHours)

	effectiveDays := in.DurationDays - *in.LeaveDays
	if effectiveDays < 0 {
		effectiveDays = 0
	}
	baseHours := float64(effectiveDays) * *in.DailyHours
	out.AvailableHours = Round2(baseHours * (*in.CapacityPercent / 100))

	out.RemainingHours = Round2(out.AvailableHours - out.AllocatedHours)
	out.OverAllocated = out.AllocatedHours > out.AvailableHours
	if out.AvailableHours > 0 {
		out.UtilizationPercent = Round2(out.AllocatedHours * 100 / out.AvailableHours)
	}
	return out
}
