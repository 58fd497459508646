package ldpc

import (
	"bufio"
	"io"

	"github.com/dnbaker/distance/internal/bitpack"
)

// Dump writes words as ASCII binary rows for debugging.
//
// words is read as consecutive rows of ItemsPerRow(rowLen) words. For each row every
// bit of every word is printed, least significant first, as '0' or '1', and the row
// is terminated with '\n'. Padding bits past rowLen are printed too, so each line has
// ItemsPerRow*BitsPerWord characters. A trailing partial row is ignored.
func Dump[W Word](w io.Writer, words []W, rowLen int) error {
	items := bitpack.ItemsPerRow[W](rowLen)
	if items <= 0 {
		return nil
	}

	bpw := bitpack.BitsPerWord[W]()
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, items*bpw+1)

	for r := range len(words) / items {
		line = line[:0]
		for _, v := range words[r*items : (r+1)*items] {
			for k := range bpw {
				line = append(line, '0'+byte((v>>k)&1))
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Dump writes m as ASCII binary rows; see the package-level Dump.
func (m *Matrix[W]) Dump(w io.Writer) error {
	return Dump(w, m.Words, m.RowLen)
}
