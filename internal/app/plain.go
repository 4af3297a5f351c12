package app

import (
	"bufio"
	"io"
)

// WritePlain copies the document to w without any terminal handling, for
// when output is not a terminal.
func WritePlain(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	for _, l := range doc.Content.View(0, doc.Content.Len()) {
		if _, err := bw.WriteString(l.Line.Content()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
