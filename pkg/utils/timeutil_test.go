package utils

import (
	"testing"
	"time"
)

func TestNowIST(t *testing.T) {
	now := NowIST()
	if now.Location().String() != "Asia/Kolkata" && now.Location().String() != "IST" {
		t.Errorf("NowIST() location = %s, want Asia/Kolkata or IST", now.Location().String())
	}
}

func TestToIST(t *testing.T) {
	utc := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)
	ist := ToIST(utc)
	if ist.Hour() != 15 || ist.Minute() != 30 {
		t.Errorf("ToIST(10:00 UTC) = %02d:%02d, want 15:30", ist.Hour(), ist.Minute())
	}
}

func TestFormatDateTimeIST(t *testing.T) {
	utc := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)
	if got := FormatDateTimeIST(utc); got != "2026-02-18 15:30:00 IST" {
		t.Errorf("FormatDateTimeIST = %q", got)
	}
}
