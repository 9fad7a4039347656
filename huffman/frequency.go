package huffman

// FrequencyTable maps each distinct symbol of an input sequence to the number
// of times it occurs.  Symbols are also remembered in order of first
// occurrence, which is the order NewTree hands them to BuildTree.
//
// A FrequencyTable is immutable once built.
type FrequencyTable[S comparable] struct {
	weights map[S]int
	order   []S
	total   int
}

// CountFrequencies tabulates the symbols of seq.  An empty seq yields an empty
// table.
func CountFrequencies[S comparable](seq []S) FrequencyTable[S] {
	ft := FrequencyTable[S]{weights: make(map[S]int)}
	for _, s := range seq {
		if _, found := ft.weights[s]; !found {
			ft.order = append(ft.order, s)
		}
		ft.weights[s]++
	}
	ft.total = len(seq)
	return ft
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable[S]) Len() int {
	return len(ft.order)
}

// Total returns the sum of all weights, i.e. the length of the input.
func (ft FrequencyTable[S]) Total() int {
	return ft.total
}

// Weight returns the number of occurrences of symbol, or 0 if it never
// occurred.
func (ft FrequencyTable[S]) Weight(symbol S) int {
	return ft.weights[symbol]
}

// Symbols returns the distinct symbols in order of first occurrence.
func (ft FrequencyTable[S]) Symbols() []S {
	out := make([]S, len(ft.order))
	copy(out, ft.order)
	return out
}

// Leaves returns one fresh leaf per distinct symbol, in order of first
// occurrence.
func (ft FrequencyTable[S]) Leaves() []*Node[S] {
	out := make([]*Node[S], len(ft.order))
	for index, s := range ft.order {
		out[index] = NewLeaf(s, ft.weights[s])
	}
	return out
}
