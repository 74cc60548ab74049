package capacity

import "math"

// Round2 округляет до двух знаков по правилу half-up (половина от нуля).
// Применяется к каждой производной величине в момент записи или возврата,
// чтобы повторный пересчет не накапливал дрейф.
func Round2(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v*100+0.5) / 100
	}
	return math.Floor(v*100+0.5) / 100
}

// roundInt округляет до целого по правилу half-up
func roundInt(v float64) int {
	if v < 0 {
		return -int(math.Floor(-v + 0.5))
	}
	return int(math.Floor(v + 0.5))
}
