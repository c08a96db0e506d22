package entity

import (
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	t.Run("MonthKeyOf formats year and month", func(t *testing.T) {
		got := MonthKeyOf(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC))
		if got != "2024-03" {
			t.Errorf("expected 2024-03, got %s", got)
		}
	})

	t.Run("labels", func(t *testing.T) {
		m := MonthKey("2024-03")
		if m.Label() != "Mar 2024" {
			t.Errorf("expected Mar 2024, got %s", m.Label())
		}
		if m.LongLabel() != "March 2024" {
			t.Errorf("expected March 2024, got %s", m.LongLabel())
		}
	})

	t.Run("invalid key falls back to raw value", func(t *testing.T) {
		m := MonthKey("garbage")
		if m.Label() != "garbage" {
			t.Errorf("expected garbage, got %s", m.Label())
		}
		if !m.Start().IsZero() {
			t.Error("expected zero start time")
		}
	})

	t.Run("ParseMonthKey", func(t *testing.T) {
		if _, err := ParseMonthKey("2024-13"); err == nil {
			t.Error("expected error for month 13")
		}
		got, err := ParseMonthKey("2023-11")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Start() != time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC) {
			t.Errorf("unexpected start %v", got.Start())
		}
	})
}
