package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mode-runner/internal/games/runner"
)

func testLevel(id, name string) Factory {
	l := &runner.Level{
		ID:    id,
		Name:  name,
		Floor: runner.Polyline{{X: 0, Y: 400}, {X: 1000, Y: 400}},
	}
	return func() (*runner.Level, error) { return l, nil }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", testLevel("test-b", "Bravo"))
	Register("test-a", testLevel("test-a", "Alpha"))

	if !Exists("test-a") {
		t.Fatal("test-a should exist after Register")
	}
	if Exists("test-missing") {
		t.Error("unregistered level should not exist")
	}

	l, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if l.Name != "Alpha" {
		t.Errorf("expected name Alpha, got %q", l.Name)
	}

	// List is sorted by ID
	var ids []string
	for _, info := range List() {
		if info.ID == "test-a" || info.ID == "test-b" {
			ids = append(ids, info.ID)
			if info.ID == "test-b" && info.Name != "Bravo" {
				t.Errorf("expected name Bravo, got %q", info.Name)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test-a" {
		t.Errorf("expected [test-a test-b], got %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test-nope"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", testLevel("test-dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", testLevel("test-dup", "Dup"))
}

func TestRegisterFailingFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when the factory fails")
		}
	}()
	Register("test-broken", func() (*runner.Level, error) {
		return nil, errors.New("broken")
	})
}
