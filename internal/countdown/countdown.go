// Package countdown считает остаток времени до дедлайна и публикует его раз в период.
package countdown

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Compute раскладывает (deadline - now) на дни, часы, минуты и секунды с округлением вниз.
// Если дедлайн уже наступил, возвращает нулевой остаток.
func Compute(deadline, now time.Time) domain.TimeLeft {
	if !now.Before(deadline) {
		return domain.TimeLeft{}
	}

	delta := deadline.Sub(now).Milliseconds()

	return domain.TimeLeft{
		Days:    delta / msPerDay,
		Hours:   (delta / msPerHour) % 24,
		Minutes: (delta / msPerMinute) % 60,
		Seconds: (delta / msPerSecond) % 60,
	}
}
