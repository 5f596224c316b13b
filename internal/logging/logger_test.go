package logging

import "testing"

func TestNewBuildsDevelopmentLoggerByDefault(t *testing.T) {
	l, err := New(Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if l == nil {
		t.Fatal("expected a non-nil logger")
	}
}

func TestNewAcceptsInvalidLevelWithoutErroring(t *testing.T) {
	l, err := New(Options{Env: EnvProduction, Level: "not-a-level", Format: "json"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if l == nil {
		t.Fatal("expected a non-nil logger")
	}
}
