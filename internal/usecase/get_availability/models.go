package get_availability

import (
	"time"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
)

// Request модель запроса доступности
type Request struct {
	PackSlug string         // slug пакета из ссылки (пустой или неизвестный -> rongeur)
	WeekOf   *calendar.Date // любая дата нужной недели, nil -> текущая неделя
}

// Response модель ответа с порогом доступности и сеткой недели
type Response struct {
	Now              time.Time     // текущее время в часовом поясе календаря
	Threshold        calendar.Date // первая дата, доступная для записи
	ThresholdDisplay string        // "mardi 13 mai 2025"

	CallbackDeadline        time.Time // крайний срок обратного звонка
	CallbackDeadlineDisplay string    // "jeudi 8 mai 2025 à 13:00"

	Pack         domain.Pack
	PackFallback bool // запрошенный slug не найден, выбран пакет по умолчанию

	TimeSlots []string
	Week      Week
}

// Week сетка с понедельника по воскресенье
type Week struct {
	Start      calendar.Date
	End        calendar.Date
	MonthLabel string         // "mai 2025"
	Previous   *calendar.Date // nil, если предыдущая неделя целиком в прошлом
	Next       *calendar.Date // nil, если следующая неделя за пределами горизонта
	Days       []Day
}

// Day день сетки
type Day struct {
	Date      calendar.Date
	Label     string // "lundi 12 mai 2025"
	IsToday   bool
	IsPast    bool
	Available bool
	Reason    calendar.Reason
}
