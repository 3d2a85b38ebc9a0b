package sequence

import (
	"bufio"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ukirt-ocs/sequence-format/go-sequence/config"
	"github.com/ukirt-ocs/sequence-format/go-sequence/coords"
	"github.com/ukirt-ocs/sequence-format/go-sequence/tcs"
	"github.com/ukirt-ocs/sequence-format/go-sequence/token"
)

// Document is one observation sequence: the exec lines plus the configs
// and coordinates they reference. Construction parses eagerly, and a
// failed config or TCS load fails the whole document.
//
// A Document is not safe for concurrent use.
type Document struct {
	lines        []string
	configs      map[string]*config.Document
	order        []string
	coords       *coords.Set
	legacyCoords bool

	inputFile string
	inputDir  string
	modified  bool

	log *slog.Logger
	now func() time.Time
}

type Option func(*Document)

// WithLogger directs parse and search tracing to log. The default
// discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(d *Document) { d.log = log }
}

// WithNow fixes the clock used to name output files.
func WithNow(now func() time.Time) Option {
	return func(d *Document) { d.now = now }
}

// WithInputFile names the source of lines handed to New, anchoring
// config search and the instrument fallback exactly as Open would.
func WithInputFile(path string) Option {
	return func(d *Document) { d.SetInputFile(path) }
}

// New builds a Document from exec lines, resolving loadConfig and
// telConfig references relative to the input directory ("." unless
// WithInputFile says otherwise).
func New(lines []string, opts ...Option) (*Document, error) {
	if lines == nil {
		return nil, fmt.Errorf("%w: nil exec lines", ErrBadArgument)
	}
	d := newDocument(opts...)
	d.lines = slices.Clone(lines)
	if err := d.parse(); err != nil {
		return nil, err
	}
	return d, nil
}

// Open reads and parses the exec at path.
func Open(path string, opts ...Option) (*Document, error) {
	d := newDocument(opts...)
	d.SetInputFile(path)
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	d.lines = lines
	if err := d.parse(); err != nil {
		return nil, err
	}
	return d, nil
}

func newDocument(opts ...Option) *Document {
	d := &Document{
		configs:  map[string]*config.Document{},
		inputDir: ".",
		log:      slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	lines := []string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFileAccess, path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing %s: %v", ErrFileAccess, path, err)
	}
	return lines, nil
}

// parse makes the single construction pass over the exec: configs load
// in first-seen order, a telConfig brings in the TCS coordinate set,
// and legacy SET_ lines accumulate into a fallback set that only
// applies when no telConfig did.
func (d *Document) parse() error {
	var legacy *coords.Set
	for i, line := range d.lines {
		switch token.Classify(line) {
		case token.LoadConfig:
			if token.Disabled(line) {
				continue
			}
			fs := token.Fields(line)
			if len(fs) < 2 {
				d.log.Debug("loadConfig without a name", "line", i+1)
				continue
			}
			if err := d.loadConfig(fs[1]); err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
		case token.TelConfig:
			if token.Disabled(line) {
				continue
			}
			fs := token.Fields(line)
			if len(fs) < 2 {
				d.log.Debug("telConfig without a file", "line", i+1)
				continue
			}
			if err := d.loadTCS(fs[1]); err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
		case token.SetCoord:
			if tag, c, ok := coords.ParseSetLine(line); ok {
				if legacy == nil {
					legacy = coords.NewSet()
				}
				legacy.Put(tag, c)
			}
		}
	}
	if d.coords == nil && legacy != nil {
		d.coords = legacy
		d.legacyCoords = true
	}
	return nil
}

func (d *Document) loadConfig(name string) error {
	path, tried, err := FindConfig(d.inputDir, name)
	if err != nil {
		d.log.Debug("config search failed", "name", name, "tried", tried)
		return err
	}
	d.log.Debug("config found", "name", name, "path", path)
	cfg, err := config.Open(path)
	if err != nil {
		return err
	}
	d.AddConfig(name, cfg)
	return nil
}

func (d *Document) loadTCS(name string) error {
	path, err := FindTCSFile(d.inputDir, name)
	if err != nil {
		return err
	}
	d.log.Debug("tcs config found", "name", name, "path", path)
	tc, err := tcs.ReadFile(path)
	if err != nil {
		return err
	}
	d.coords = tc.Set()
	d.legacyCoords = false
	return nil
}

func (d *Document) Lines() []string {
	return d.lines
}

// SetLines replaces the exec text wholesale. No re-parse happens, so
// configs and coordinates keep reflecting the text the Document was
// built from, and the modified flag, which tracks header edits, is
// left alone.
func (d *Document) SetLines(lines []string) {
	d.lines = slices.Clone(lines)
}

// Configs returns a copy of the config map.
func (d *Document) Configs() map[string]*config.Document {
	return maps.Clone(d.configs)
}

// Config returns the config loaded under name, or nil.
func (d *Document) Config(name string) *config.Document {
	return d.configs[name]
}

// ConfigOrder returns the config names in execution order: the order
// their loadConfig lines first appear.
func (d *Document) ConfigOrder() []string {
	return slices.Clone(d.order)
}

// SetConfigOrder initializes the execution order. The order is set
// once, normally as a side effect of parsing; resetting it is an
// error.
func (d *Document) SetConfigOrder(order []string) error {
	if len(d.order) != 0 {
		return fmt.Errorf("%w: %v", ErrConfigOrderSet, d.order)
	}
	d.order = slices.Clone(order)
	return nil
}

// AddConfig registers cfg under name, appending name to the execution
// order the first time it appears. Reloading an existing name replaces
// the config but keeps its original position.
func (d *Document) AddConfig(name string, cfg *config.Document) {
	if _, ok := d.configs[name]; !ok {
		d.order = append(d.order, name)
	}
	d.configs[name] = cfg
}

// Coords returns the coordinate filed under tag, or nil when the
// sequence defines none. Lookup is case-insensitive.
func (d *Document) Coords(tag string) *coords.Coord {
	if d.coords == nil {
		return nil
	}
	return d.coords.Get(tag)
}

// CoordTags returns the tags of all defined coordinates, sorted, or
// nil when the sequence has none.
func (d *Document) CoordTags() []string {
	if d.coords == nil {
		return nil
	}
	return d.coords.Tags()
}

func (d *Document) Target() *coords.Coord {
	return d.Coords("BASE")
}

func (d *Document) Guide() *coords.Coord {
	return d.Coords("GUIDE")
}

// TargetName returns the target's name, or the literal "NONE" when the
// sequence has no target.
func (d *Document) TargetName() string {
	if c := d.Target(); c != nil {
		return c.Name
	}
	return "NONE"
}

func (d *Document) GuideName() (string, bool) {
	if c := d.Guide(); c != nil {
		return c.Name, true
	}
	return "", false
}

// SetInputFile records where the exec came from. The directory portion
// anchors config search; the base name feeds the instrument fallback.
func (d *Document) SetInputFile(path string) {
	if path == "" {
		d.inputFile, d.inputDir = "", "."
		return
	}
	dir, file := filepath.Split(path)
	d.inputFile = file
	if dir == "" {
		d.inputDir = "."
	} else {
		d.inputDir = filepath.Clean(dir)
	}
}

func (d *Document) InputFile() string {
	return d.inputFile
}

func (d *Document) InputDir() string {
	return d.inputDir
}

// Modified reports whether any header edit has been applied.
func (d *Document) Modified() bool {
	return d.modified
}

// UsesLegacyCoords reports whether the coordinates came from SET_ lines
// rather than a TCS configuration.
func (d *Document) UsesLegacyCoords() bool {
	return d.legacyCoords
}

// Fixup normalizes a freshly loaded sequence. Nothing currently needs
// normalizing; the hook remains for callers that run it after every
// load.
func (d *Document) Fixup() error {
	return nil
}

// Verify checks a sequence before hand-off to the telescope. No checks
// are currently implemented.
func (d *Document) Verify() error {
	return nil
}
