package stats

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/go-gota/gota/series"
)

// Count is a distinct value and the number of rows holding it
type Count struct {
	Value string
	N     int
}

// ValueCounts counts the distinct non-missing values of s, highest count first.
func ValueCounts(s series.Series) []Count {
	numeric := s.Type() == series.Int || s.Type() == series.Float
	counts := make(map[string]int)
	for i := 0; i < s.Len(); i++ {
		el := s.Elem(i)
		if el.IsNA() {
			continue
		}
		counts[elementKey(el, s.Type())]++
	}

	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, N: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.N, a.N); c != 0 {
			return c
		}
		return compareValues(a.Value, b.Value, numeric)
	})
	return out
}

// Mode returns the most frequent value of s, false when s has no values.
func Mode(s series.Series) (Count, bool) {
	counts := ValueCounts(s)
	if len(counts) == 0 {
		return Count{}, false
	}
	return counts[0], true
}

func elementKey(el series.Element, t series.Type) string {
	switch t {
	case series.Float:
		return strconv.FormatFloat(el.Float(), 'f', -1, 64)
	case series.Int:
		if v, err := el.Int(); err == nil {
			return strconv.Itoa(v)
		}
	}
	return el.String()
}

func compareValues(a, b string, numeric bool) int {
	if numeric {
		fa, errA := strconv.ParseFloat(a, 64)
		fb, errB := strconv.ParseFloat(b, 64)
		if errA == nil && errB == nil {
			return cmp.Compare(fa, fb)
		}
	}
	return cmp.Compare(a, b)
}

// present returns the non-missing values of s
func present(s series.Series) series.Series {
	idx := make([]int, 0, s.Len())
	for i, na := range s.IsNaN() {
		if !na {
			idx = append(idx, i)
		}
	}
	if len(idx) == s.Len() {
		return s
	}
	if len(idx) == 0 {
		return series.New([]float64{}, series.Float, s.Name)
	}
	return s.Subset(idx)
}
