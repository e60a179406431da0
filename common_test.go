package pfold

import (
	"errors"
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExamplePartition() {
	fmt.Println(Partition(10, 3))
	fmt.Println(Partition(3, 8))
	fmt.Println(Partition(5, 0))
	fmt.Println(Partition(0, 4))

	// Output:
	// [[0:3) [3:6) [6:10)]
	// [[0:1) [1:2) [2:3)]
	// [[0:2) [2:5)]
	// []
}

func TestNumWorkers(t *testing.T) {
	tests := []struct {
		length, hint, expected int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 0, 1},
		{1, 8, 1},
		{5, 0, 2},
		{100, 1, 1},
		{100, 4, 4},
		{100, 100, 100},
		{100, 1000, 100},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("length %v hint %v", test.length, test.hint), func(t *testing.T) {
			assert.Equal(t, test.expected, NumWorkers(test.length, test.hint))
		})
	}
}

func TestNumWorkersInvalid(t *testing.T) {
	assertInvalid := func(f func()) {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, ErrInvalid)
		}()
		f()
	}
	assertInvalid(func() { NumWorkers(-1, 2) })
	assertInvalid(func() { NumWorkers(10, -2) })
	assertInvalid(func() { Partition(10, -1) })
}

func TestPartition(t *testing.T) {
	assert.Nil(t, Partition(0, 0))
	assert.Equal(t, []Range{{0, 1}}, Partition(1, 1000))
	assert.Equal(t, []Range{{0, 25}, {25, 50}, {50, 75}, {75, 100}}, Partition(100, 4))
	assert.Equal(t, []Range{{0, 33}, {33, 66}, {66, 100}}, Partition(100, 3))
	assert.Equal(t, []Range{{0, 100}}, Partition(100, 1))
}

func checkTiling(t *testing.T, length, hint int, ranges []Range) {
	t.Helper()
	require.Len(t, ranges, NumWorkers(length, hint))
	low, total := 0, 0
	for i, r := range ranges {
		assert.Equal(t, low, r.Low, "range %v starts where its predecessor ends", i)
		assert.Positive(t, r.Len(), "range %v is not empty", i)
		if i < len(ranges)-1 {
			assert.Equal(t, length/len(ranges), r.Len())
		} else {
			assert.GreaterOrEqual(t, r.Len(), length/len(ranges))
		}
		low = r.High
		total += r.Len()
	}
	assert.Equal(t, length, total)
	if length > 0 {
		assert.Equal(t, length, low)
	}
}

func TestPartitionProperties(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 200; i++ {
		var length, hint uint16
		f.Fuzz(&length)
		f.Fuzz(&hint)
		l, h := int(length%5000), int(hint%300)
		ranges := Partition(l, h)
		checkTiling(t, l, h, ranges)
		assert.Equal(t, ranges, Partition(l, h), "partitioning is a pure function")
	}
}

func TestRange(t *testing.T) {
	r := Range{Low: 3, High: 8}
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, "[3:8)", r.String())
}

func TestSlice(t *testing.T) {
	var seq Sequence[string] = Slice[string]{"a", "b"}
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, "b", seq.At(1))
}

func TestHardwareConcurrency(t *testing.T) {
	n := HardwareConcurrency()
	assert.GreaterOrEqual(t, n, 0)
	assert.Positive(t, NumWorkers(1000, n))
	assert.Equal(t, n, HardwareConcurrency())
	assert.Zero(t, testing.AllocsPerRun(100, func() { HardwareConcurrency() }), "the host is queried once")
}

func BenchmarkHardwareConcurrency(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		HardwareConcurrency()
	}
}

func TestAny(t *testing.T) {
	wrapped := fmt.Errorf("%w: hint", ErrInvalid)
	assert.True(t, Any(wrapped, ErrUndefined, ErrInvalid))
	assert.False(t, Any(wrapped, ErrWorker, ErrCombine))
	assert.False(t, Any(errors.New("other")))
}
