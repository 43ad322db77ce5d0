package get_availability

import "errors"

var (
	// ErrWeekOutOfRange возвращается, когда запрошенная неделя слишком далеко от текущей
	ErrWeekOutOfRange = errors.New("get_availability: week out of range")
)
