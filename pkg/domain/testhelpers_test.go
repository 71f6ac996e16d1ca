package domain

import (
	"testing"
	"time"
)

var fixedDay = time.Date(2025, 10, 26, 9, 30, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

// mustNoError simplifies tests that expect helper methods to succeed.
func mustNoError(t *testing.T, label string, err error) {
	t.Helper()
	if err != nil {
		if label == "" {
			t.Fatalf("unexpected error: %v", err)
		}
		t.Fatalf("%s: %v", label, err)
	}
}

func mustEnclosure(t *testing.T, name, env, category string, cleanliness int) *Enclosure {
	t.Helper()
	e, err := NewEnclosure(EnclosureSpec{
		Name:            name,
		Environment:     env,
		SizeSqM:         300,
		AllowedCategory: category,
		Cleanliness:     intPtr(cleanliness),
	})
	mustNoError(t, "new enclosure", err)
	return e
}
