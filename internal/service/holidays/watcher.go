package holidays

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
)

var ErrAlreadyStarted = errors.New("holiday watcher already started")

// Watcher следит, чтобы таблица праздников покрывала текущий и следующий год.
// Непокрытые годы не экстраполируются, только логируются.
type Watcher struct {
	holidays calendar.HolidaySet
	location *time.Location
	now      func() time.Time
	cron     *cron.Cron
	logger   Logger
}

func NewWatcher(holidays calendar.HolidaySet, location *time.Location, logger Logger) *Watcher {
	return &Watcher{
		holidays: holidays,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// MissingYears возвращает годы из {текущий, следующий}, которых нет в таблице
func (w *Watcher) MissingYears(now time.Time) []int {
	year := now.In(w.location).Year()

	var missing []int
	for _, y := range []int{year, year + 1} {
		if !w.holidays.Covers(y) {
			missing = append(missing, y)
		}
	}
	return missing
}

// Check пишет предупреждение на каждый непокрытый год и возвращает их
func (w *Watcher) Check() []int {
	missing := w.MissingYears(w.now())
	for _, year := range missing {
		w.logger.Warn("HolidayWatcher: holiday table does not cover %d, add it to [calendar.holidays]", year)
	}
	if len(missing) == 0 {
		w.logger.Info("HolidayWatcher: holiday table covers years %v", w.holidays.Years())
	}
	return missing
}

// Start запускает периодическую проверку по cron-расписанию (5 полей).
// Пустое расписание отключает проверку.
func (w *Watcher) Start(schedule string) error {
	if schedule == "" {
		return nil
	}
	if w.cron != nil {
		return ErrAlreadyStarted
	}

	c := cron.New(cron.WithLocation(w.location))
	if _, err := c.AddFunc(schedule, func() { w.Check() }); err != nil {
		return fmt.Errorf("invalid coverage schedule %q: %w", schedule, err)
	}
	c.Start()
	w.cron = c

	w.logger.Info("HolidayWatcher: scheduled coverage check (%s, %s)", schedule, w.location)
	return nil
}

// Stop останавливает планировщик и ждет завершения текущей проверки
func (w *Watcher) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.cron = nil
}
