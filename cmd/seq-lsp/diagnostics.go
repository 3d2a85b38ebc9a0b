package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"
	"github.com/ukirt-ocs/sequence-format/go-sequence/config"
	"github.com/ukirt-ocs/sequence-format/go-sequence/instr"
	"github.com/ukirt-ocs/sequence-format/go-sequence/token"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	lines   []string
}

// dir is the directory config references resolve against, empty for
// non-file URIs.
func (d *document) dir() string {
	u := uri.URI(d.uri)
	if !strings.HasPrefix(string(u), "file://") {
		return ""
	}
	return filepath.Dir(u.Filename())
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	lines := strings.Split(content, "\n")
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		lines:   lines,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument flags the line-level problems an exec can carry:
// coordinate lines with the wrong field count, config references that
// do not resolve, unknown instruments, and config names with a suffix
// no grammar claims. Disabled lines are not validated.
func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	dir := doc.dir()

	for i, line := range doc.lines {
		if token.Disabled(line) {
			continue
		}
		switch token.Classify(line) {
		case token.SetCoord:
			if n := len(token.Fields(line)); n != 7 {
				diagnostics = append(diagnostics, lineDiagnostic(i, line,
					protocol.DiagnosticSeverityWarning,
					fmt.Sprintf("malformed coordinate line: want 7 fields, got %d", n)))
			}
		case token.LoadConfig:
			fs := token.Fields(line)
			if len(fs) < 2 {
				diagnostics = append(diagnostics, lineDiagnostic(i, line,
					protocol.DiagnosticSeverityWarning,
					"loadConfig without a config name"))
				continue
			}
			name := fs[1]
			if ext := filepath.Ext(name); ext != "" {
				if _, err := config.DetectFormat(name); err != nil {
					diagnostics = append(diagnostics, lineDiagnostic(i, line,
						protocol.DiagnosticSeverityWarning,
						fmt.Sprintf("unknown config suffix %q", ext)))
				}
			}
			if dir == "" {
				continue
			}
			if _, _, err := sequence.FindConfig(dir, name); err != nil {
				diagnostics = append(diagnostics, lineDiagnostic(i, line,
					protocol.DiagnosticSeverityError,
					fmt.Sprintf("config %q not found", name)))
			}
		case token.TelConfig:
			fs := token.Fields(line)
			if len(fs) < 2 {
				diagnostics = append(diagnostics, lineDiagnostic(i, line,
					protocol.DiagnosticSeverityWarning,
					"telConfig without a file name"))
				continue
			}
			if dir == "" {
				continue
			}
			if _, err := sequence.FindTCSFile(dir, fs[1]); err != nil {
				diagnostics = append(diagnostics, lineDiagnostic(i, line,
					protocol.DiagnosticSeverityError,
					fmt.Sprintf("TCS file %q not found", fs[1])))
			}
		case token.SetInst:
			fs := token.Fields(line)
			if len(fs) < 2 {
				diagnostics = append(diagnostics, lineDiagnostic(i, line,
					protocol.DiagnosticSeverityWarning,
					"set_inst without an instrument"))
				continue
			}
			if !instr.Parse(fs[1]).Known() {
				diagnostics = append(diagnostics, lineDiagnostic(i, line,
					protocol.DiagnosticSeverityWarning,
					fmt.Sprintf("unknown instrument %q", fs[1])))
			}
		}
	}

	return diagnostics
}

func lineDiagnostic(line int, text string, severity protocol.DiagnosticSeverity, msg string) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: 0},
			End:   protocol.Position{Line: uint32(line), Character: uint32(len(text))},
		},
		Severity: severity,
		Message:  msg,
		Source:   "seq",
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	// Apply changes
	content := doc.content
	for _, change := range params.ContentChanges {
		// A zero range means full document replacement
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
