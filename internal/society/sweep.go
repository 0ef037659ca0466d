// Sweep is the reconciliation pass run on every clock advance. The game
// clock can jump (offline time, fast-forward), so the sweep resolves
// everything that came due in between rather than relying on per-hour
// ticks. Step order matters: backfill and the monthly grant depend on
// the state changes the earlier steps produce.
package society

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const sweepBackfillMax = 3

// SweepReport summarizes what a single sweep resolved.
type SweepReport struct {
	AutoAttended   int      `json:"auto_attended"`
	Missed         []string `json:"missed,omitempty"`
	Lapsed         int      `json:"lapsed"`
	PrunedBenefits int      `json:"pruned_benefits"`
	Backfilled     int      `json:"backfilled"`
	PassiveCredit  int      `json:"passive_credit"`
	MonthlyCredit  int      `json:"monthly_credit"`
	MonthChanged   bool     `json:"month_changed"`
}

// monthKey collapses a timestamp to a comparable calendar-month index.
func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

// Sweep resolves all due transitions: auto-attendance of reserved
// events, lapsed-event removal, benefit pruning, backfill, passive
// capital, and the monthly grant. Per-entity failures never abort the
// pass. Calling Sweep again without an intervening clock advance is a
// no-op.
func (e *Engine) Sweep() SweepReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	var report SweepReport

	// 1. Auto-attend reserved events whose date has arrived. The
	// notification path is silent; the player already committed.
	for _, ev := range e.events {
		if !ev.Reserved || ev.Attended || ev.ScheduledAt.After(now) {
			continue
		}
		if _, err := e.attendLocked(ev, true); err != nil {
			slog.Warn("auto-attendance failed", "event", ev.Name, "error", err)
			continue
		}
		report.AutoAttended++
	}

	// 2. Discard lapsed events: unreserved past their date (missed) or
	// anything past its availability window.
	kept := e.events[:0]
	for _, ev := range e.events {
		if ev.Attended {
			kept = append(kept, ev)
			continue
		}
		missed := !ev.Reserved && ev.ScheduledAt.Before(now)
		expired := ev.AvailableUntil.Before(now)
		if !missed && !expired {
			kept = append(kept, ev)
			continue
		}
		report.Lapsed++
		if missed {
			report.Missed = append(report.Missed, ev.Name)
			e.missedEvents = append(e.missedEvents, ev.Name)
		}
	}
	e.events = kept

	// 3. Prune expired, unused benefits. Used benefits stay as history.
	for _, conn := range e.connections {
		remaining := conn.Benefits[:0]
		for _, b := range conn.Benefits {
			if !b.Used && b.Expired(now) {
				report.PrunedBenefits++
				continue
			}
			remaining = append(remaining, b)
		}
		conn.Benefits = remaining
	}

	// 4. Backfill supply when the cleanup net-reduced the calendar.
	if report.Lapsed > 0 {
		n := report.Lapsed
		if n > sweepBackfillMax {
			n = sweepBackfillMax
		}
		if created, err := e.generateEvents(n); err == nil {
			report.Backfilled = len(created)
		}
	}

	// 5. Passive capital trickle.
	report.PassiveCredit = e.capital.CreditPassive(now, e.networking)

	// 6. Monthly grant and missed-events summary, once per calendar
	// month boundary.
	if key := monthKey(now); key != e.lastSweepMonth {
		if e.lastSweepMonth != 0 {
			report.MonthChanged = true
			report.MonthlyCredit = e.capital.CreditMonthly(e.networking)
			e.notifyMonthlySummary(report.MonthlyCredit)
		}
		e.lastSweepMonth = key
		e.missedEvents = nil
	}

	if report.AutoAttended > 0 || report.Lapsed > 0 || report.PrunedBenefits > 0 || report.MonthChanged {
		slog.Info("sweep completed",
			"auto_attended", report.AutoAttended,
			"lapsed", report.Lapsed,
			"pruned_benefits", report.PrunedBenefits,
			"backfilled", report.Backfilled,
			"passive_credit", report.PassiveCredit,
			"monthly_credit", report.MonthlyCredit,
		)
	}
	return report
}

// notifyMonthlySummary surfaces the month rollover to the player,
// including any events missed during the closing month. Caller holds
// the lock.
func (e *Engine) notifyMonthlySummary(granted int) {
	msg := fmt.Sprintf("A new month begins. Social capital grant: %d.", granted)
	if len(e.missedEvents) > 0 {
		msg += " Missed last month: " + strings.Join(e.missedEvents, ", ") + "."
	}
	e.notify(Notice{Category: "monthly", Message: msg})
}
