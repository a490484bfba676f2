package css

import (
	"bufio"
	"io"
	"strings"
)

// Render writes the sheet in its text form:
//
//	selector: div
//	  background: white
//
// Each rule is followed by a blank line.
func (s *Sheet) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if s != nil {
		for _, rule := range s.Rules {
			bw.WriteString("selector: ")
			bw.WriteString(rule.Selector)
			bw.WriteByte('\n')
			for _, p := range rule.Properties {
				bw.WriteString("  ")
				bw.WriteString(p.String())
				bw.WriteByte('\n')
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func (s *Sheet) String() string {
	var b strings.Builder
	s.Render(&b)
	return b.String()
}
