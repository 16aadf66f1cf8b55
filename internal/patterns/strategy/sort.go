package strategy

import "slices"

// SortStrategy orders a slice of ints. Implementations never mutate their input.
type SortStrategy interface {
	Name() string
	Sort(values []int) []int
}

type BubbleSort struct{}

func (BubbleSort) Name() string { return "bubble" }

func (BubbleSort) Sort(values []int) []int {
	out := slices.Clone(values)
	for i := len(out) - 1; i > 0; i-- {
		swapped := false
		for j := 0; j < i; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return out
}

type MergeSort struct{}

func (MergeSort) Name() string { return "merge" }

func (MergeSort) Sort(values []int) []int {
	return mergeSort(slices.Clone(values))
}

func mergeSort(values []int) []int {
	if len(values) <= 1 {
		return values
	}
	mid := len(values) / 2
	left := mergeSort(values[:mid])
	right := mergeSort(values[mid:])

	merged := make([]int, 0, len(values))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}

type QuickSort struct{}

func (QuickSort) Name() string { return "quick" }

func (QuickSort) Sort(values []int) []int {
	out := slices.Clone(values)
	quickSort(out, 0, len(out)-1)
	return out
}

func quickSort(a []int, lo, hi int) {
	for lo < hi {
		p := partition(a, lo, hi)
		// Recurse into the smaller half to bound stack depth.
		if p-lo < hi-p {
			quickSort(a, lo, p-1)
			lo = p + 1
		} else {
			quickSort(a, p+1, hi)
			hi = p - 1
		}
	}
}

func partition(a []int, lo, hi int) int {
	mid := lo + (hi-lo)/2
	a[mid], a[hi] = a[hi], a[mid]
	pivot := a[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}

// Sorter sorts with whichever strategy is currently set.
type Sorter struct {
	strategy SortStrategy
}

// NewSorter defaults to MergeSort when s is nil.
func NewSorter(s SortStrategy) *Sorter {
	if s == nil {
		s = MergeSort{}
	}
	return &Sorter{strategy: s}
}

func (s *Sorter) SetStrategy(strategy SortStrategy) {
	if strategy != nil {
		s.strategy = strategy
	}
}

func (s *Sorter) Strategy() string { return s.strategy.Name() }

func (s *Sorter) Sort(values []int) []int {
	return s.strategy.Sort(values)
}
