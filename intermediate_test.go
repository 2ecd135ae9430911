package gostreams

import (
	"context"
	"iter"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestMap(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Map(ints, func(elem int) int {
		return elem * 2
	})

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{2, 4, 6, 8, 10})
}

func TestFilter(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Filter(ints, func(elem int) bool {
		return elem%2 == 0
	})

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{2, 4})
}

func TestNot(t *testing.T) {
	is := is.New(t)

	positive := func(elem int) bool {
		return elem > 0
	}

	is.True(!Not(positive)(1))
	is.True(Not(positive)(-1))
}

func TestPeek(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	ints = Peek(ints, func(elem int, index uint64) {
		is.Equal(index, uint64(elem-1))

		sum += elem
	})

	_, _ = ReduceSlice(ctx, ints)

	is.Equal(sum, 15)
}

func TestPeek_Abandon(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	ints = Peek(ints, func(elem int, _ uint64) {
		sum += elem
	})

	for elem := range ints {
		if elem == 3 {
			break
		}
	}

	is.Equal(sum, 6)
}

func TestLimit(t *testing.T) {
	tests := []struct {
		givenLimit uint64
		want       []int
		wantPulled int
	}{
		{
			givenLimit: 3,
			want:       []int{1, 2, 2, 3, 3, 3},
			wantPulled: 3,
		},
		{
			givenLimit: 0,
			want:       nil,
			wantPulled: 0,
		},
		{
			givenLimit: 100,
			want:       []int{1, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 5, 1, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 5, 1, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 5},
			wantPulled: 15,
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			ctx := context.Background()

			ints, pulled := tracked([]int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5})

			ints = Limit(ints, test.givenLimit)

			ints = FlatMap(ints, func(elem int) iter.Seq[int] {
				elems := make([]int, elem)
				for i := 0; i < elem; i++ {
					elems[i] = elem
				}

				return Produce(elems)
			})

			result, _ := ReduceSlice(ctx, ints)

			is.Equal(result, test.want)
			is.Equal(*pulled, test.wantPulled)
		})
	}
}

func TestSkip(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Skip(ints, 3)

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{4, 5})
}

func TestFlatMap(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = FlatMap(ints, func(elem int) iter.Seq[int] {
		elems := make([]int, elem)
		for i := 0; i < elem; i++ {
			elems[i] = i + 1
		}

		return Produce(elems)
	})

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{1, 1, 2, 1, 2, 3, 1, 2, 3, 4, 1, 2, 3, 4, 5})
}

func TestFuncMapper(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	lengths, err := Reduce(ctx, Produce([]string{"a", "bb", "cc"}), map[int]int{}, CollectCount(FuncMapper(func(elem string) int {
		return len(elem)
	})))

	is.NoErr(err)
	is.Equal(lengths, map[int]int{
		1: 1,
		2: 2,
	})
}
