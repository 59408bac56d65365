package sparse

import (
	"testing"
)

func TestMatrixSetValue(t *testing.T) {
	M := NewIntMatrix(5, 5, DefaultNullValue)
	if v := M.Value(2, 3); v != M.NullValue() {
		t.Errorf("expected empty matrix to return null value, got %d", v)
	}
	if old := M.Set(2, 3, 4711); old != M.NullValue() {
		t.Errorf("expected first Set to return null value, got %d", old)
	}
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 value in matrix, have %d", M.ValueCount())
	}
}

func TestMatrixReplace(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(1, 1, 1)
	if old := M.Set(1, 1, 2); old != 1 {
		t.Errorf("expected Set to return replaced value 1, got %d", old)
	}
	if v := M.Value(1, 1); v != 2 {
		t.Errorf("expected later value to win, M(1,1) = %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected replacement to keep value count at 1, is %d", M.ValueCount())
	}
}

func TestMatrixRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 0, 20)
	M.Set(0, 2, 2)
	M.Set(1, 1, 11)
	M.Set(0, 0, 0)
	var got []int32
	M.Each(func(i, j int, v int32) {
		got = append(got, v)
	})
	want := []int32{0, 2, 11, 20}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("expected values in row-major order %v, got %v", want, got)
			break
		}
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of dimensions to panic")
		}
	}()
	M.Set(2, 0, 1)
}
