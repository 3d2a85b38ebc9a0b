package main

import (
	"context"
	"fmt"
	"strings"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"
	"github.com/ukirt-ocs/sequence-format/go-sequence/config"
	"github.com/ukirt-ocs/sequence-format/go-sequence/coords"
	"github.com/ukirt-ocs/sequence-format/go-sequence/instr"
	"github.com/ukirt-ocs/sequence-format/go-sequence/tcs"
	"github.com/ukirt-ocs/sequence-format/go-sequence/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	if line < 0 || line >= len(doc.lines) {
		return nil, nil
	}

	hoverText := buildHoverText(doc, doc.lines[line])
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func buildHoverText(doc *document, line string) string {
	var parts []string

	if token.Disabled(line) {
		parts = append(parts, "*(disabled)*")
	}

	switch token.Classify(line) {
	case token.LoadConfig:
		parts = append(parts, loadConfigHover(doc, line)...)
	case token.TelConfig:
		parts = append(parts, telConfigHover(doc, line)...)
	case token.SetHeader:
		parts = append(parts, setHeaderHover(line)...)
	case token.SetCoord:
		parts = append(parts, setCoordHover(line)...)
	case token.SetInst:
		parts = append(parts, setInstHover(line)...)
	case token.StartGroup:
		parts = append(parts, "**startGroup** starts an observation group. New headers insert after this line.")
	default:
		return ""
	}

	return strings.Join(parts, "\n\n")
}

func loadConfigHover(doc *document, line string) []string {
	fs := token.Fields(line)
	if len(fs) < 2 {
		return []string{"**loadConfig** without a config name"}
	}
	name := fs[1]
	parts := []string{fmt.Sprintf("**loadConfig** `%s`", name)}
	dir := doc.dir()
	if dir == "" {
		return parts
	}
	path, _, err := sequence.FindConfig(dir, name)
	if err != nil {
		return append(parts, "config not found")
	}
	parts = append(parts, fmt.Sprintf("resolves to `%s`", path))
	c, err := config.Open(path)
	if err != nil {
		return append(parts, fmt.Sprintf("load error: %v", err))
	}
	parts = append(parts, fmt.Sprintf("**Format:** %s, %d items", c.Format(), len(c.Items())))
	if inst, ok := c.Item("instrument"); ok {
		parts = append(parts, fmt.Sprintf("**Instrument:** `%s`", inst))
	}
	return parts
}

func telConfigHover(doc *document, line string) []string {
	fs := token.Fields(line)
	if len(fs) < 2 {
		return []string{"**telConfig** without a file name"}
	}
	name := fs[1]
	parts := []string{fmt.Sprintf("**telConfig** `%s`", name)}
	dir := doc.dir()
	if dir == "" {
		return parts
	}
	path, err := sequence.FindTCSFile(dir, name)
	if err != nil {
		return append(parts, "TCS file not found")
	}
	parts = append(parts, fmt.Sprintf("resolves to `%s`", path))
	c, err := tcs.ReadFile(path)
	if err != nil {
		return append(parts, fmt.Sprintf("load error: %v", err))
	}
	tags := c.Set().Tags()
	if len(tags) > 0 {
		parts = append(parts, fmt.Sprintf("**Positions:** %s", strings.Join(tags, ", ")))
	}
	return parts
}

func setHeaderHover(line string) []string {
	fs := token.Fields(line)
	if len(fs) < 2 {
		return []string{"**setHeader** without a name"}
	}
	parts := []string{fmt.Sprintf("**setHeader** `%s`", strings.ToUpper(fs[1]))}
	if value := token.Unquote(token.Rest(line, 2)); value != "" {
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", value))
	}
	return parts
}

func setCoordHover(line string) []string {
	tag, c, ok := coords.ParseSetLine(strings.TrimPrefix(strings.TrimSpace(line), "-"))
	if !ok {
		n := len(token.Fields(line))
		return []string{fmt.Sprintf("malformed coordinate line: want 7 fields, got %d", n)}
	}
	return []string{
		fmt.Sprintf("**%s** `%s`", tag, c.Name),
		fmt.Sprintf("**System:** %s", c.System),
		fmt.Sprintf("**RA:** %s, **Dec:** %s", c.RA, c.Dec),
	}
}

func setInstHover(line string) []string {
	fs := token.Fields(line)
	if len(fs) < 2 {
		return []string{"**set_inst** without an instrument"}
	}
	in := instr.Parse(fs[1])
	if !in.Known() {
		return []string{fmt.Sprintf("**set_inst** unknown instrument `%s`", fs[1])}
	}
	return []string{
		fmt.Sprintf("**set_inst** `%s`", in),
		fmt.Sprintf("writes as `%s`", in.FileName()),
	}
}
