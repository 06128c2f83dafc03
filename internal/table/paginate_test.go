package table

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginateSevenRowsByFive(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7}
	require.Len(t, Paginate(items, 5, 1), 5)
	require.Equal(t, []int{6, 7}, Paginate(items, 5, 2))
	require.Empty(t, Paginate(items, 5, 3))
	require.Equal(t, 2, PageCount(len(items), 5))
}

func TestPaginateOutOfRange(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b"}
	cases := []struct {
		name       string
		size, page int
	}{
		{"page zero", 5, 0},
		{"negative page", 5, -2},
		{"zero size", 0, 1},
		{"negative size", -1, 1},
		{"far page", 1, 99},
		{"page overflowing offset", 2, math.MaxInt/2 + 2},
		{"max page", 1, math.MaxInt},
		{"max size past end", math.MaxInt, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(items, tc.size, tc.page)
			require.NotNil(t, got)
			require.Empty(t, got)
		})
	}
	require.Empty(t, Paginate([]string(nil), 5, 1))
	require.Equal(t, 0, PageCount(0, 5))
	require.Equal(t, 0, PageCount(10, 0))
	require.Equal(t, []string{"a", "b"}, Paginate(items, math.MaxInt, 1))
	require.Equal(t, 1, PageCount(2, math.MaxInt))
}

func TestPaginateConcatenationReproducesInput(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 13; n++ {
		for size := 1; size <= 6; size++ {
			items := make([]string, n)
			for i := range items {
				items[i] = fmt.Sprintf("row-%d", i)
			}
			var got []string
			for p := 1; p <= PageCount(n, size); p++ {
				got = append(got, Paginate(items, size, p)...)
			}
			if n == 0 {
				require.Empty(t, got)
				continue
			}
			require.Equal(t, items, got, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginateAppendDoesNotClobberSource(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4}
	page := Paginate(items, 2, 1)
	page = append(page, 99)
	require.Equal(t, []int{1, 2, 3, 4}, items)
	require.Equal(t, []int{1, 2, 99}, page)
}
