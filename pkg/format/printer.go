// Package format renders AST nodes as canonical source text and as a debug
// tree.
package format

import (
	"strings"
)

// Printer accumulates rendered source text.
type Printer struct {
	output *strings.Builder
}

func newPrinter() *Printer {
	return &Printer{output: &strings.Builder{}}
}

// String returns the rendered output.
func (p *Printer) String() string {
	return p.output.String()
}

func (p *Printer) write(s string) {
	p.output.WriteString(s)
}

func (p *Printer) writeByte(c byte) {
	p.output.WriteByte(c)
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// formatList prints count items separated by sep.
func (p *Printer) formatList(count int, format func(i int), sep string) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
		}
	}
}
