package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/skyops/farecast/core/model"
)

func validFlight(id string) model.Flight {
	return model.Flight{
		ID:          id,
		Origin:      "JFK",
		Destination: "LAX",
		TotalSeats:  180,
		BookedSeats: 100,
		Price:       250,
	}
}

func TestMemoryStore_Lookup(t *testing.T) {
	s, err := NewMemoryStore([]model.Flight{validFlight("a"), validFlight("b")}, nil)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	f, err := s.Flight("a")
	if err != nil || f.ID != "a" {
		t.Fatalf("lookup failed: %v %v", f, err)
	}
	if _, err := s.Flight("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_PreservesOrder(t *testing.T) {
	s, err := NewMemoryStore([]model.Flight{validFlight("c"), validFlight("a"), validFlight("b")}, nil)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	got := s.Flights()
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("expected %v, got %v at %d", want, got, i)
		}
	}
}

func TestMemoryStore_RejectsBadRecords(t *testing.T) {
	if _, err := NewMemoryStore([]model.Flight{validFlight("a"), validFlight("a")}, nil); err == nil {
		t.Fatal("duplicate id accepted")
	}
	bad := validFlight("a")
	bad.BookedSeats = 999
	if _, err := NewMemoryStore([]model.Flight{bad}, nil); err == nil {
		t.Fatal("overbooked record accepted")
	}
}

func TestMemoryStore_FlightsByID(t *testing.T) {
	s, err := NewMemoryStore([]model.Flight{validFlight("a"), validFlight("b")}, nil)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	got := s.FlightsByID([]string{"b", "ghost", "a"})
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("unexpected selection %v", got)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := GenerateConfig{Flights: 24, Date: "2026-03-15", Seed: 42}
	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	fa, fb := a.Flights(), b.Flights()
	if len(fa) != 24 || len(fb) != 24 {
		t.Fatalf("expected 24 flights, got %d and %d", len(fa), len(fb))
	}
	for i := range fa {
		if fa[i] != fb[i] {
			t.Fatalf("same seed produced different flight at %d: %+v vs %+v", i, fa[i], fb[i])
		}
	}
	if fa[0].ID != "FL0001" {
		t.Fatalf("expected FL0001, got %s", fa[0].ID)
	}
	if len(a.Routes()) != 6 {
		t.Fatalf("expected 6 routes, got %d", len(a.Routes()))
	}
}

func TestGenerate_Validation(t *testing.T) {
	if _, err := Generate(GenerateConfig{Flights: 0, Date: "2026-03-15"}); err == nil {
		t.Fatal("zero flights accepted")
	}
	if _, err := Generate(GenerateConfig{Flights: 5}); err == nil {
		t.Fatal("missing date accepted")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"flights": [
			{"id": "FL0001", "origin": "JFK", "destination": "LAX", "total_seats": 180, "booked_seats": 90, "price": 250}
		],
		"routes": [
			{"id": "RT01", "origin": "JFK", "destination": "LAX", "frequency": 14}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f, err := s.Flight("FL0001")
	if err != nil || f.Price != 250 {
		t.Fatalf("unexpected flight %v, err %v", f, err)
	}
	if len(s.Routes()) != 1 {
		t.Fatalf("expected 1 route, got %d", len(s.Routes()))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing fixture accepted")
	}
}
