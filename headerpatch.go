package sequence

import (
	"encoding/json"
	"fmt"
	"sort"

	jsonpatch "github.com/evanphx/json-patch"
)

// PatchHeaders applies an RFC 6902 JSON patch to the sequence's scalar
// header view: a flat object of upper-cased names to last-set values.
// Adds and replaces flow through SetHeader, so existing lines rewrite
// in place and new headers insert at the usual anchor. A remove has no
// exec form, since header lines are never deleted, and is rejected.
func (d *Document) PatchHeaders(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadArgument, err)
	}
	before := d.headerObject()
	bd, err := json.Marshal(before)
	if err != nil {
		return err
	}
	ad, err := ops.Apply(bd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadArgument, err)
	}
	after := map[string]string{}
	if err := json.Unmarshal(ad, &after); err != nil {
		return fmt.Errorf("%w: patched headers are not a flat string object: %v", ErrBadArgument, err)
	}
	for name := range before {
		if _, ok := after[name]; !ok {
			return fmt.Errorf("%w: patch removes header %s", ErrBadArgument, name)
		}
	}
	// sorted application keeps insertion order deterministic
	names := make([]string, 0, len(after))
	for name := range after {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v, ok := before[name]; ok && v == after[name] {
			continue
		}
		d.SetHeader(name, after[name])
	}
	return nil
}

func (d *Document) headerObject() map[string]string {
	obj := map[string]string{}
	for _, name := range d.HeaderNames() {
		v, _ := d.HeaderItem(name)
		obj[name] = v
	}
	return obj
}
