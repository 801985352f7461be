// Package printer writes bundled files wrapped in begin/end banners.
//
// Each file becomes one block:
//
//	-- ============================================================
//	-- Begin: <name>
//	-- ============================================================
//
//	<content, newline-terminated>
//
//	-- ============================================================
//	-- End: <name>
//	-- ============================================================
//
// Every banner line starts with "-- " so the bundle remains a valid SQL
// script; the rule lines carry BannerWidth '=' characters after it.
package printer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BannerWidth is the number of '=' characters in a banner line
const BannerWidth = 60

// Printer writes banner-decorated file content to the bundle
type Printer struct {
	output  *bufio.Writer
	rule    string
	count   int
	written int64
}

// New creates a Printer writing to w
func New(w io.Writer) *Printer {
	return &Printer{
		output: bufio.NewWriter(w),
		rule:   "-- " + strings.Repeat("=", BannerWidth),
	}
}

// PrintFile writes one file: begin banner, blank line, verbatim content,
// blank line, end banner, blank separator line.
func (p *Printer) PrintFile(name string, content []byte) error {
	p.banner("Begin", name)
	p.line("")
	p.write(string(content))
	if len(content) > 0 && content[len(content)-1] != '\n' {
		p.line("")
	}
	p.line("")
	p.banner("End", name)
	if err := p.line(""); err != nil {
		return fmt.Errorf("printer: failed to write '%s': %w", name, err)
	}

	p.count++
	return nil
}

// Flush writes any buffered output
func (p *Printer) Flush() error {
	if err := p.output.Flush(); err != nil {
		return fmt.Errorf("printer: failed to flush output: %w", err)
	}
	return nil
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int {
	return p.count
}

// BytesWritten returns the number of bytes handed to the output so far
func (p *Printer) BytesWritten() int64 {
	return p.written
}

func (p *Printer) banner(label, name string) {
	p.line(p.rule)
	p.line(fmt.Sprintf("-- %s: %s", label, name))
	p.line(p.rule)
}

func (p *Printer) line(s string) error {
	return p.write(s + "\n")
}

// write records the first error; bufio.Writer keeps returning it afterwards
func (p *Printer) write(s string) error {
	n, err := p.output.WriteString(s)
	p.written += int64(n)
	return err
}
