package table

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Direction is the sort polarity.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// SortState is the active sort key and direction. The zero value means no sort.
type SortState struct {
	Key       string
	Direction Direction
}

// Active reports whether a sort key is set.
func (s SortState) Active() bool { return s.Key != "" }

// Toggle returns the state after a sort request on key: a new key starts
// ascending, the current key flips direction.
func Toggle(s SortState, key string) SortState {
	if s.Key == "" || s.Key != key {
		return SortState{Key: key, Direction: Ascending}
	}
	return SortState{Key: key, Direction: s.Direction.Flip()}
}

// Order returns rows sorted by s. The input slice is not modified. Rows with
// equal values keep their relative order.
func Order(rows []Row, s SortState) []Row {
	out := slices.Clone(rows)
	if !s.Active() {
		return out
	}
	slices.SortStableFunc(out, func(a, b Row) int {
		av, aok := a.Value(s.Key)
		bv, bok := b.Value(s.Key)
		c := compareValues(av, aok, bv, bok)
		if s.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}

// value classes, in ascending order when two classes meet.
const (
	rankMissing = iota
	rankBool
	rankNumber
	rankTime
	rankString
	rankOther
)

func compareValues(a any, aok bool, b any, bok bool) int {
	ka, kb := classify(a, aok), classify(b, bok)
	if ka.rank != kb.rank {
		return cmp.Compare(ka.rank, kb.rank)
	}
	switch ka.rank {
	case rankMissing:
		return 0
	case rankBool:
		return cmp.Compare(ka.num, kb.num)
	case rankNumber:
		return compareNumbers(ka, kb)
	case rankTime:
		return ka.at.Compare(kb.at)
	default:
		return strings.Compare(ka.str, kb.str)
	}
}

// numeric representation of a rankNumber key.
const (
	numFloat = iota
	numInt
	numUint
)

type sortKey struct {
	rank int
	kind int
	num  float64
	i    int64
	u    uint64
	str  string
	at   time.Time
}

// compareNumbers compares integers exactly and falls back to float64 only
// when a float is involved.
func compareNumbers(a, b sortKey) int {
	switch {
	case a.kind == numInt && b.kind == numInt:
		return cmp.Compare(a.i, b.i)
	case a.kind == numUint && b.kind == numUint:
		return cmp.Compare(a.u, b.u)
	case a.kind == numInt && b.kind == numUint:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.kind == numUint && b.kind == numInt:
		return -compareNumbers(b, a)
	}
	return cmp.Compare(a.num, b.num)
}

func classify(v any, ok bool) sortKey {
	if !ok || v == nil {
		return sortKey{rank: rankMissing}
	}
	if t, isTime := v.(time.Time); isTime {
		return sortKey{rank: rankTime, at: t}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		n := 0.0
		if rv.Bool() {
			n = 1
		}
		return sortKey{rank: rankBool, num: n}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sortKey{rank: rankNumber, kind: numInt, i: rv.Int(), num: float64(rv.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sortKey{rank: rankNumber, kind: numUint, u: rv.Uint(), num: float64(rv.Uint())}
	case reflect.Float32, reflect.Float64:
		return sortKey{rank: rankNumber, kind: numFloat, num: rv.Float()}
	case reflect.String:
		return sortKey{rank: rankString, str: rv.String()}
	}
	return sortKey{rank: rankOther, str: fmt.Sprint(v)}
}
