package postings

import (
	"reflect"
	"testing"
)

func TestUnionPreservesOrderAndDedups(t *testing.T) {
	got := Union([]uint32{1, 3, 5}, []uint32{2, 3, 4})
	want := []uint32{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}
}

func TestIntersectEmitsCommonOnly(t *testing.T) {
	got := Intersect([]uint32{1, 3, 5, 7}, []uint32{3, 5, 9})
	want := []uint32{3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Intersect = %v, want %v", got, want)
	}
}

func TestDiffEmitsAOnly(t *testing.T) {
	got := Diff([]uint32{1, 2, 3, 4}, []uint32{2, 4})
	want := []uint32{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Diff = %v, want %v", got, want)
	}
}

func TestOperatorLaws(t *testing.T) {
	a := []uint32{1, 2, 5, 9}
	empty := []uint32{}

	if got := Intersect(a, a); !reflect.DeepEqual(got, a) {
		t.Errorf("intersect(A,A) = %v, want %v", got, a)
	}
	if got := Union(a, a); !reflect.DeepEqual(got, a) {
		t.Errorf("union(A,A) = %v, want %v", got, a)
	}
	if got := Diff(a, a); len(got) != 0 {
		t.Errorf("diff(A,A) = %v, want empty", got)
	}
	if got := Intersect(a, empty); len(got) != 0 {
		t.Errorf("intersect(A,empty) = %v, want empty", got)
	}
	if got := Union(a, empty); !reflect.DeepEqual(got, a) {
		t.Errorf("union(A,empty) = %v, want %v", got, a)
	}
	if got := Diff(a, empty); !reflect.DeepEqual(got, a) {
		t.Errorf("diff(A,empty) = %v, want %v", got, a)
	}

	b := []uint32{2, 5, 20}
	if got1, got2 := Intersect(a, b), Intersect(b, a); !reflect.DeepEqual(got1, got2) {
		t.Errorf("intersect not commutative: %v vs %v", got1, got2)
	}
	if got1, got2 := Union(a, b), Union(b, a); !reflect.DeepEqual(got1, got2) {
		t.Errorf("union not commutative: %v vs %v", got1, got2)
	}
}

func TestIntersectAll(t *testing.T) {
	lists := [][]uint32{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 6}}
	got := IntersectAll(lists)
	want := []uint32{3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("IntersectAll = %v, want %v", got, want)
	}
}

func TestIntersectAllEmptyInput(t *testing.T) {
	if got := IntersectAll(nil); got != nil {
		t.Fatalf("IntersectAll(nil) = %v, want nil", got)
	}
}

func TestUniverse(t *testing.T) {
	got := Universe(5)
	want := []uint32{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Universe(5) = %v, want %v", got, want)
	}
}
