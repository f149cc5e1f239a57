// Package widgettest provides a widget.Driver that records calls instead of
// drawing, for headless geometry checks.
package widgettest

import (
	"fmt"
	"strings"

	"tftgauge/widget"
)

// Op names a recorded driver call.
type Op uint8

const (
	OpSetTextColor Op = iota + 1
	OpSetTextSize
	OpSetCursor
	OpPrint
	OpDrawLine
	OpFillCircle
	OpFillTriangle
)

func (o Op) String() string {
	switch o {
	case OpSetTextColor:
		return "SetTextColor"
	case OpSetTextSize:
		return "SetTextSize"
	case OpSetCursor:
		return "SetCursor"
	case OpPrint:
		return "Print"
	case OpDrawLine:
		return "DrawLine"
	case OpFillCircle:
		return "FillCircle"
	case OpFillTriangle:
		return "FillTriangle"
	default:
		return "unknown"
	}
}

// Call is one recorded driver call. Args holds the integer arguments in call
// order; Colors holds color arguments; Text is set for Print.
type Call struct {
	Op     Op
	Args   []int
	Colors []widget.Color
	Text   string
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(c.Op.String())
	b.WriteByte('(')
	parts := make([]string, 0, len(c.Args)+len(c.Colors)+1)
	for _, a := range c.Args {
		parts = append(parts, fmt.Sprint(a))
	}
	if c.Op == OpPrint {
		parts = append(parts, fmt.Sprintf("%q", c.Text))
	}
	for _, col := range c.Colors {
		parts = append(parts, fmt.Sprintf("0x%04x", uint16(col)))
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteByte(')')
	return b.String()
}

// Recorder implements widget.Driver by appending every call to Calls.
type Recorder struct {
	Calls []Call
}

var _ widget.Driver = (*Recorder)(nil)

func (r *Recorder) SetTextColor(fg, bg widget.Color) {
	r.add(Call{Op: OpSetTextColor, Colors: []widget.Color{fg, bg}})
}

func (r *Recorder) SetTextSize(n int) {
	r.add(Call{Op: OpSetTextSize, Args: []int{n}})
}

func (r *Recorder) SetCursor(x, y int) {
	r.add(Call{Op: OpSetCursor, Args: []int{x, y}})
}

func (r *Recorder) Print(s string) {
	r.add(Call{Op: OpPrint, Text: s})
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 int, c widget.Color) {
	r.add(Call{Op: OpDrawLine, Args: []int{x0, y0, x1, y1}, Colors: []widget.Color{c}})
}

func (r *Recorder) FillCircle(x, y, radius int, c widget.Color) {
	r.add(Call{Op: OpFillCircle, Args: []int{x, y, radius}, Colors: []widget.Color{c}})
}

func (r *Recorder) FillTriangle(x0, y0, x1, y1, x2, y2 int, c widget.Color) {
	r.add(Call{Op: OpFillTriangle, Args: []int{x0, y0, x1, y1, x2, y2}, Colors: []widget.Color{c}})
}

func (r *Recorder) add(c Call) { r.Calls = append(r.Calls, c) }

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Filter returns the recorded calls with the given op, in order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Last returns the most recent call with the given op.
func (r *Recorder) Last(op Op) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Op == op {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Lines renders every call with String, one per entry.
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}
