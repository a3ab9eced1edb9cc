package core

import (
	"fmt"
	"strings"
	"time"

	"paymulexport/internal/paymul"
)

const (
	fileExtension      = ".paymul"
	maxBatchReference  = 18
	fileNameDateLayout = "2006-01-02"
)

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ResolveExecutionDate picks the date the bank should process the order on.
// An explicit date wins; otherwise a fixed order runs on its scheduled date
// and a due order on its earliest maturity, never before today. Banks reject
// files dated more than maxDays ahead.
func ResolveExecutionDate(order PaymentOrder, today time.Time, maxDays int) (time.Time, error) {
	today = day(today)

	execDate := today
	switch {
	case !order.ExecutionDate.IsZero():
		execDate = day(order.ExecutionDate)
	case order.DatePreference == DateFixed && !order.ScheduledDate.IsZero():
		execDate = latest(today, day(order.ScheduledDate))
	case order.DatePreference == DateDue:
		var earliest time.Time
		for _, l := range order.Lines {
			if l.MaturityDate.IsZero() {
				continue
			}
			if earliest.IsZero() || l.MaturityDate.Before(earliest) {
				earliest = l.MaturityDate
			}
		}
		if !earliest.IsZero() {
			execDate = latest(today, day(earliest))
		}
	}

	if execDate.Before(today) || execDate.After(today.AddDate(0, 0, maxDays)) {
		return time.Time{}, fmt.Errorf("%w: %s is not within %d days from %s",
			ErrExecutionDateOutOfRange, execDate.Format(time.DateOnly), maxDays, today.Format(time.DateOnly))
	}

	return execDate, nil
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// DefaultBatchReference derives the bank feedback reference from the order
// reference.
func DefaultBatchReference(orderReference string) string {
	reference := paymul.Sanitize(orderReference)
	if len(reference) > maxBatchReference {
		reference = strings.TrimRight(reference[:maxBatchReference], " ")
	}

	return reference
}

// FileName names the export after the debit account, execution date and
// batch reference, e.g. 20-30-40_00112233_2026-10-21_PAYRUN_42.paymul.
func FileName(accountNumber string, execDate time.Time, reference string) string {
	name := strings.Join([]string{accountNumber, execDate.Format(fileNameDateLayout), reference}, "_") + fileExtension
	return strings.ReplaceAll(name, " ", "_")
}
