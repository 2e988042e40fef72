package model

import (
	"reflect"
	"testing"
	"time"
)

func TestDeriveSearchText(t *testing.T) {
	got := DeriveSearchText("Fixed the JWT Refresh", "bug_fix", []string{"Auth", "jwt"})
	want := "fixed the jwt refresh bug_fix auth jwt"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"db", " api ", "", "db", "auth"})
	want := []string{"api", "auth", "db"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if NormalizeTags(nil) != nil {
		t.Error("expected nil for empty input")
	}
}

func TestAgeDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := Memory{CreatedAt: now.AddDate(0, 0, -10)}
	if got := m.AgeDays(now); got != 10 {
		t.Errorf("age = %d, want 10", got)
	}

	m = Memory{CreatedAt: now.Add(-6 * time.Hour)}
	if got := m.AgeDays(now); got != 0 {
		t.Errorf("age = %d, want 0", got)
	}
}
