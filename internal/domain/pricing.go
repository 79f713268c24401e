package domain

import "github.com/shopspring/decimal"

// Денежные расчёты бронирования. Все функции чистые, без побочных эффектов.
// Каждая производная величина (gross цена за единицу, сумма за проживание,
// итоговая цена) округляется до 2 знаков В МОМЕНТ вычисления, а не один раз
// в конце: цепочка расчётов обязана воспроизводить промежуточные округления,
// иначе итоги разойдутся с отображаемыми гостю ценами

var hundred = decimal.NewFromInt(100)

// ChargeMethod способ тарификации продукта
type ChargeMethod string

const (
	// ChargeMethodNightly продукт тарифицируется за каждую ночь проживания
	ChargeMethodNightly ChargeMethod = "nightly"

	// ChargeMethodOncePerStay продукт тарифицируется один раз за проживание
	ChargeMethodOncePerStay ChargeMethod = "once-per-booking"
)

// Valid проверяет, что способ тарификации известен
func (m ChargeMethod) Valid() bool {
	return m == ChargeMethodNightly || m == ChargeMethodOncePerStay
}

// PriceableItem тарифицируемая позиция: комната или дополнительный продукт
type PriceableItem struct {
	ID           int64
	NetPrice     decimal.Decimal // Цена без налога
	TaxPercent   decimal.Decimal // Процент налога (например, 9)
	ChargeMethod ChargeMethod
}

// DiscountRule правило объёмной скидки на цену комнаты
type DiscountRule struct {
	Percent       decimal.Decimal
	MinimumNights int
}

// PerkRule правило перка за длительное проживание: полная скидка
// на один конкретный продукт
type PerkRule struct {
	MinimumNights       int
	QualifyingProductID int64
}

// RoomQuote расчёт стоимости комнаты на выбранное количество ночей
type RoomQuote struct {
	// BaseNightly цена за ночь без налога (со скидкой, если она применилась)
	BaseNightly decimal.Decimal

	// GrossNightly цена за ночь с налогом, округлённая до 2 знаков
	GrossNightly decimal.Decimal

	// Total итоговая стоимость: GrossNightly * nights
	Total decimal.Decimal

	// FullTotal стоимость без учёта скидки: налог применяется к исходной
	// net цене. Используется для отображения "вы сэкономили X"
	FullTotal decimal.Decimal

	// Discounted применилась ли объёмная скидка
	Discounted bool
}

// ProductQuote расчёт стоимости продукта на выбранное количество ночей
type ProductQuote struct {
	ProductID int64

	// UnitGross цена за единицу с налогом, округлённая до 2 знаков
	UnitGross decimal.Decimal

	// Total итоговая стоимость: UnitGross * nights для nightly,
	// UnitGross для once-per-booking
	Total decimal.Decimal
}

// BookingTotals итоги бронирования для отображения гостю
type BookingTotals struct {
	// AmountDue сумма к оплате с учётом скидок и перка
	AmountDue decimal.Decimal

	// FullPrice полная стоимость без скидок и перка
	FullPrice decimal.Decimal

	// Saved сэкономленная сумма (FullPrice - AmountDue)
	Saved decimal.Decimal
}

// GrossFromNet вычисляет цену с налогом: net + net*(taxPercent/100)
// Результат округляется до 2 знаков
func GrossFromNet(net, taxPercent decimal.Decimal) decimal.Decimal {
	return net.Add(net.Mul(taxPercent.Div(hundred))).Round(2)
}

// NetAfterDiscount вычисляет net цену со скидкой: net - net*(percent/100)
// Результат округляется до 2 знаков
func NetAfterDiscount(net, percent decimal.Decimal) decimal.Decimal {
	return net.Sub(net.Mul(percent.Div(hundred))).Round(2)
}

// ClampNights нормализует количество ночей: отрицательное значение
// (вырожденный интервал) трактуется как ноль. Это определённая нормализация,
// а не ошибка
func ClampNights(nights int) int {
	if nights < 0 {
		return 0
	}
	return nights
}

// RoomPricing вычисляет стоимость комнаты на nights ночей
// Скидка применяется к net цене ДО налога; налог по закону начисляется
// на цену со скидкой. Умножение на количество ночей выполняется ПОСЛЕ
// округления gross цены за ночь
func RoomPricing(room PriceableItem, rule DiscountRule, nights int) RoomQuote {
	nights = ClampNights(nights)
	nightsDec := decimal.NewFromInt(int64(nights))

	discounted := nights >= rule.MinimumNights

	baseNightly := room.NetPrice
	if discounted {
		baseNightly = NetAfterDiscount(room.NetPrice, rule.Percent)
	}

	grossNightly := GrossFromNet(baseNightly, room.TaxPercent)

	return RoomQuote{
		BaseNightly:  baseNightly,
		GrossNightly: grossNightly,
		Total:        grossNightly.Mul(nightsDec).Round(2),
		FullTotal:    GrossFromNet(room.NetPrice, room.TaxPercent).Mul(nightsDec).Round(2),
		Discounted:   discounted,
	}
}

// ProductPricing вычисляет стоимость продукта на nights ночей
func ProductPricing(product PriceableItem, nights int) ProductQuote {
	nights = ClampNights(nights)

	unitGross := GrossFromNet(product.NetPrice, product.TaxPercent)

	total := unitGross
	if product.ChargeMethod == ChargeMethodNightly {
		total = unitGross.Mul(decimal.NewFromInt(int64(nights))).Round(2)
	}

	return ProductQuote{
		ProductID: product.ID,
		UnitGross: unitGross,
		Total:     total,
	}
}

// ApplyPerk возвращает сумму, которая будет списана с бронирования за счёт
// перка (полная стоимость продукта-перка). Если порог ночей не достигнут
// или продукт-перк не входит в бронирование, возвращает ноль - смена меню
// не должна ломать расчёт бронирований без этого продукта
func ApplyPerk(products []ProductQuote, rule PerkRule, nights int) decimal.Decimal {
	if ClampNights(nights) < rule.MinimumNights {
		return decimal.Zero
	}

	for _, p := range products {
		if p.ProductID == rule.QualifyingProductID {
			return p.Total
		}
	}

	return decimal.Zero
}

// BookingTotal суммирует итоги бронирования
// AmountDue - комната со скидкой плюс продукты минус перк
// FullPrice - комната без скидки плюс ВСЕ продукты, включая списанный перком
func BookingTotal(room RoomQuote, products []ProductQuote, waived decimal.Decimal) BookingTotals {
	amountDue := room.Total
	fullPrice := room.FullTotal

	for _, p := range products {
		amountDue = amountDue.Add(p.Total)
		fullPrice = fullPrice.Add(p.Total)
	}

	amountDue = amountDue.Sub(waived).Round(2)
	fullPrice = fullPrice.Round(2)

	return BookingTotals{
		AmountDue: amountDue,
		FullPrice: fullPrice,
		Saved:     fullPrice.Sub(amountDue).Round(2),
	}
}
