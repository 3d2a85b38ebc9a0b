package sequence

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Write saves the exec under dir with a generated name,
//
//	<Instrument>_<YYYYMMDDHHMMSS><mmm><NNN>.exec
//
// where NNN is the first serial from 000 to 999 not already taken.
// Michelle names keep their historical shape: mixed-case instrument and
// no millisecond component. The content is the lines joined by newlines
// with a trailing newline. Write returns the path created.
func (d *Document) Write(dir string) (string, error) {
	inst := d.Instrument()
	now := d.now()
	stamp := now.Format("20060102150405")
	if inst.TimestampMillis() {
		stamp += fmt.Sprintf("%03d", now.Nanosecond()/1e6)
	}
	for n := 0; n < 1000; n++ {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s%03d.exec", inst.FileName(), stamp, n))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			return "", fmt.Errorf("%w: %v", ErrFileAccess, err)
		}
		if err := writeLines(f, d.lines); err != nil {
			f.Close()
			return "", fmt.Errorf("%w: writing %s: %v", ErrFileAccess, path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("%w: closing %s: %v", ErrFileAccess, path, err)
		}
		d.log.Debug("wrote sequence", "path", path)
		return path, nil
	}
	return "", fmt.Errorf("%w: %s_%s*.exec in %s", ErrExhaustedNames, inst.FileName(), stamp, dir)
}

func writeLines(f *os.File, lines []string) error {
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
