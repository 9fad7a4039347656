package huffman

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/textcodec/codecerr"
)

// Encode concatenates the Code of every symbol of seq, in order.  It fails
// with codecerr.ErrLookup if some symbol has no entry in the table, which
// usually means the table was built from different data.
func Encode[S comparable](seq []S, table CodeTable[S]) (string, error) {
	var sb strings.Builder
	for index, s := range seq {
		hc, found := table.codes[s]
		if !found {
			return "", fmt.Errorf("%w: symbol %s at index %d", codecerr.ErrLookup, formatSymbol(s), index)
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}
