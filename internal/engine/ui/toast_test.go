package ui

import (
	"testing"
	"time"
)

func TestToastExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	toast := NewToast(2 * time.Second)
	toast.now = func() time.Time { return now }

	if _, ok := toast.Message(); ok {
		t.Fatal("empty toast should not be visible")
	}

	toast.Show("Saved water_1.png")
	if msg, ok := toast.Message(); !ok || msg != "Saved water_1.png" {
		t.Errorf("Message() = %q, %v", msg, ok)
	}

	now = now.Add(1999 * time.Millisecond)
	if _, ok := toast.Message(); !ok {
		t.Error("toast hidden before ttl")
	}

	now = now.Add(time.Millisecond)
	if _, ok := toast.Message(); ok {
		t.Error("toast visible at ttl")
	}

	toast.Show("again")
	if _, ok := toast.Message(); !ok {
		t.Error("Show should restart the timer")
	}
}
