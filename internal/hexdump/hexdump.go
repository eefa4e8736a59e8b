// Package hexdump renders byte regions as annotated hex lines for the
// inspection tools. It is offset-oriented rather than stream-oriented: every
// line carries the absolute offset into the region so output can be
// correlated with decoded header fields.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

// BytesPerLine is the fixed width of one rendered line.
const BytesPerLine = 16

// Line formats a single 16-byte line at the given absolute offset. Short
// tails are padded so the ASCII gutter stays aligned.
func Line(offset int64, b []byte) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%08x  ", offset)
	for i := 0; i < BytesPerLine; i++ {
		if i == BytesPerLine/2 {
			sb.WriteByte(' ')
		}
		if i < len(b) {
			fmt.Fprintf(&sb, "%02x ", b[i])
		} else {
			sb.WriteString("   ")
		}
	}
	sb.WriteString(" |")
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('|')
	return sb.String()
}

// Write renders the region to w, one line per 16 bytes, with offsets starting
// at start.
func Write(w io.Writer, start int64, b []byte) error {
	for i := 0; i < len(b); i += BytesPerLine {
		end := i + BytesPerLine
		if end > len(b) {
			end = len(b)
		}
		if _, err := fmt.Fprintln(w, Line(start+int64(i), b[i:end])); err != nil {
			return err
		}
	}
	return nil
}

// WriteFolded renders like Write but collapses runs of identical all-zero
// lines into a single "*" marker, the way large sparse regions are usually
// inspected.
func WriteFolded(w io.Writer, start int64, b []byte) error {
	folded := false
	for i := 0; i < len(b); i += BytesPerLine {
		end := i + BytesPerLine
		if end > len(b) {
			end = len(b)
		}
		line := b[i:end]
		if end-i == BytesPerLine && allZero(line) && i+BytesPerLine < len(b) {
			if !folded {
				if _, err := fmt.Fprintln(w, "*"); err != nil {
					return err
				}
				folded = true
			}
			continue
		}
		folded = false
		if _, err := fmt.Fprintln(w, Line(start+int64(i), line)); err != nil {
			return err
		}
	}
	return nil
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
