// File: gridgraph/expand_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// TestBarrierBreach_SingleWall tests a 1×3 line with a single barrier between the ends.
// Grid: [. # .]
// Expected: the middle cell must be reset, cost 1, path [0,1,2].
func TestBarrierBreach_SingleWall(t *testing.T) {
	g, err := FromRows([]string{".#."})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	path, cost, err := g.BarrierBreach(Coord{0, 0}, Coord{0, 2})
	if err != nil {
		t.Fatalf("BarrierBreach error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestBarrierBreach_PrefersGap tests that a detour through a gap costs nothing.
//
//	. . .
//	# # .
//	. . .
func TestBarrierBreach_PrefersGap(t *testing.T) {
	g, _ := FromRows([]string{
		"...",
		"##.",
		"...",
	})
	path, cost, err := g.BarrierBreach(Coord{0, 0}, Coord{2, 0})
	if err != nil {
		t.Fatalf("BarrierBreach error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if path[0] != 0 || path[len(path)-1] != 6 {
		t.Errorf("path = %v; want 0 … 6", path)
	}
}

// TestBarrierBreach_ThickWall needs two resets through a double wall.
func TestBarrierBreach_ThickWall(t *testing.T) {
	g, _ := FromRows([]string{
		".",
		"#",
		"#",
		".",
	})
	_, cost, err := g.BarrierBreach(Coord{0, 0}, Coord{3, 0})
	if err != nil {
		t.Fatalf("BarrierBreach error: %v", err)
	}
	if cost != 2 {
		t.Errorf("cost = %d; want 2", cost)
	}
}

func TestBarrierBreach_SameCell(t *testing.T) {
	g, _ := FromRows([]string{"..", ".."})
	path, cost, err := g.BarrierBreach(Coord{1, 1}, Coord{1, 1})
	if err != nil || cost != 0 || !reflect.DeepEqual(path, []int{3}) {
		t.Errorf("got (%v, %d, %v); want ([3], 0, nil)", path, cost, err)
	}
}

func TestBarrierBreach_OutOfBounds(t *testing.T) {
	g, _ := FromRows([]string{".#."})
	if _, _, err := g.BarrierBreach(Coord{-1, 0}, Coord{0, 2}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("from=-1: got %v; want ErrOutOfBounds", err)
	}
	if _, _, err := g.BarrierBreach(Coord{0, 0}, Coord{0, 3}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("to=3: got %v; want ErrOutOfBounds", err)
	}
}
