package domain

import (
	"time"

	"github.com/avklm/STR-BookingService/pkg/daterange"
)

// Проверка пересечения существующего бронирования комнаты с кандидатом на
// заселение. Чистое пересечение интервалов здесь не годится: оно отвергало
// бы корректный сценарий "выезд и заезд в один календарный день". Поэтому
// каскад из трёх именованных правил:
//
//  1. Граничное правило A: день выезда существующего бронирования совпадает
//     с днём заезда кандидата. Конфликт, если выезд по времени суток НЕ
//     строго раньше заезда
//  2. Граничное правило B (симметричное): день выезда кандидата совпадает
//     с днём заезда существующего бронирования. Конфликт, если заезд
//     существующего НЕ строго позже выезда кандидата
//  3. Fallback: только если НИ ОДНО граничное правило не совпало по дню -
//     конфликт при пересечении внутренних (без граничных дней)
//     последовательностей календарных дней
//
// Оба граничных правила проверяются независимо, любое из них может выставить
// конфликт. Время суток учитывается только в граничных правилах

// boundaryRule граничное правило каскада
// applies - предусловие по календарному дню, conflicts - разрешение по
// времени суток, когда предусловие выполнено
type boundaryRule struct {
	name      string
	applies   func(existing, candidate Stay) bool
	conflicts func(existing, candidate Stay) bool
}

// checkoutMeetsCheckin граничное правило A: выезд существующего бронирования
// встречается с заездом кандидата в один календарный день
var checkoutMeetsCheckin = boundaryRule{
	name: "checkout meets check-in",
	applies: func(existing, candidate Stay) bool {
		return existing.EndDay() == candidate.StartDay()
	},
	conflicts: func(existing, candidate Stay) bool {
		// Смена "выезд-заезд" в один день допустима, только если выезд
		// по времени строго раньше заезда
		return !toMinute(existing.End).Before(toMinute(candidate.Start))
	},
}

// checkinMeetsCheckout граничное правило B: выезд кандидата встречается
// с заездом существующего бронирования в один календарный день
var checkinMeetsCheckout = boundaryRule{
	name: "check-in meets checkout",
	applies: func(existing, candidate Stay) bool {
		return candidate.EndDay() == existing.StartDay()
	},
	conflicts: func(existing, candidate Stay) bool {
		return !toMinute(existing.Start).After(toMinute(candidate.End))
	},
}

// boundaryRules порядок проверки граничных правил
var boundaryRules = []boundaryRule{
	checkoutMeetsCheckin,
	checkinMeetsCheckout,
}

// HasConflict решает, конфликтует ли кандидат на заселение с существующим
// бронированием комнаты. true - комната недоступна для кандидата
func HasConflict(existing, candidate Stay) bool {
	boundaryMatched := false
	conflict := false

	for _, rule := range boundaryRules {
		if !rule.applies(existing, candidate) {
			continue
		}
		boundaryMatched = true
		if rule.conflicts(existing, candidate) {
			conflict = true
		}
	}

	// Fallback выполняется только когда интервалы вообще не соприкасаются
	// граничным днём: там время суток уже не важно, достаточно совпадения
	// внутренних календарных дней
	if !boundaryMatched {
		return interiorOverlap(existing, candidate)
	}

	return conflict
}

// interiorOverlap проверяет пересечение внутренних последовательностей
// календарных дней двух интервалов
func interiorOverlap(existing, candidate Stay) bool {
	existingInterior := daterange.Enumerate(existing.Start, existing.End).Interior
	candidateInterior := daterange.Enumerate(candidate.Start, candidate.End).Interior

	for _, day := range existingInterior {
		if daterange.Contains(candidateInterior, day) {
			return true
		}
	}
	return false
}

// toMinute отбрасывает секунды и доли секунд
// Сравнения времени суток в граничных правилах ведутся с точностью до минуты
func toMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
