package sequence

import (
	"slices"
	"strings"

	"github.com/ukirt-ocs/sequence-format/go-sequence/token"
)

// Header items are virtual: every query scans the exec lines for
// setHeader directives, so edits to the text from any source stay
// visible without a cache to invalidate.

// HeaderItems returns every value set for name, in line order.
// Disabled setHeader lines count, and names match case-insensitively.
// Values come back unquoted.
func (d *Document) HeaderItems(name string) []string {
	var vals []string
	for _, line := range d.lines {
		if v, ok := headerValue(line, name); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// HeaderItem returns the value a reader of the finished exec would see
// for name: the last one set.
func (d *Document) HeaderItem(name string) (string, bool) {
	v, ok := "", false
	for _, line := range d.lines {
		if lv, lok := headerValue(line, name); lok {
			v, ok = lv, true
		}
	}
	return v, ok
}

// HeaderNames returns every header name the exec sets, upper-cased, in
// first-appearance order.
func (d *Document) HeaderNames() []string {
	var names []string
	seen := map[string]bool{}
	for _, line := range d.lines {
		if token.Classify(line) != token.SetHeader {
			continue
		}
		fs := token.Fields(line)
		if len(fs) < 2 {
			continue
		}
		name := strings.ToUpper(fs[1])
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func headerValue(line, name string) (string, bool) {
	if token.Classify(line) != token.SetHeader {
		return "", false
	}
	fs := token.Fields(line)
	if len(fs) < 2 || !strings.EqualFold(fs[1], name) {
		return "", false
	}
	return token.Unquote(token.Rest(line, 2)), true
}

type setHeaderOpts struct {
	anchor func(line string) bool
}

type SetHeaderOption func(*setHeaderOpts)

// InsertAfter places a newly inserted header line after the first line
// containing substr, overriding the default anchor.
func InsertAfter(substr string) SetHeaderOption {
	return func(o *setHeaderOpts) {
		o.anchor = func(line string) bool { return strings.Contains(line, substr) }
	}
}

func defaultAnchor(line string) bool {
	return strings.Contains(line, "setHeader") || strings.Contains(line, "startGroup")
}

// SetHeader sets header name to value. Every line already setting name
// is rewritten in place, keeping its position, its disable marker and
// the original spelling of the directive and name tokens. When no line
// matches, a fresh "setHeader NAME value" goes in right after the
// anchor line: by default the first line containing "setHeader" or
// "startGroup", or the top of the exec when there is none. The value
// is quoted per token.Quote, so double quotes in value degrade to '?'.
func (d *Document) SetHeader(name, value string, opts ...SetHeaderOption) {
	o := &setHeaderOpts{anchor: defaultAnchor}
	for _, f := range opts {
		f(o)
	}
	quoted := token.Quote(value)
	found := false
	for i, line := range d.lines {
		if _, ok := headerValue(line, name); !ok {
			continue
		}
		fs := token.Fields(line)
		d.lines[i] = fs[0] + " " + fs[1] + " " + quoted
		found = true
	}
	if !found {
		at := 0
		for i, line := range d.lines {
			if o.anchor(line) {
				at = i + 1
				break
			}
		}
		d.lines = slices.Insert(d.lines, at, "setHeader "+strings.ToUpper(name)+" "+quoted)
	}
	d.modified = true
}

// Scalar headers with dedicated accessors. Each returns "" when the
// exec never sets the header.

func (d *Document) ProjectID() string {
	return d.header("PROJECT")
}

func (d *Document) MSBID() string {
	return d.header("MSBID")
}

func (d *Document) MSBTransactionID() string {
	return d.header("MSBTID")
}

func (d *Document) MSBTitle() string {
	return d.header("MSBTITLE")
}

func (d *Document) ShiftType() string {
	return d.header("OPER_SFT")
}

func (d *Document) header(name string) string {
	v, _ := d.HeaderItem(name)
	return v
}
