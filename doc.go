// Package sequence parses and manipulates observation sequences: the
// line-oriented "exec" script a telescope runs, plus the instrument
// config files and coordinate descriptions the script references.
//
// # Usage
//
//	seq, err := sequence.Open("UFTI_darks.exec")
//	if err != nil { ... }
//	fmt.Println(seq.Instrument(), seq.TargetName())
//
//	seq.SetHeader("PROJECT", "U/06A/55")
//	path, err := seq.Write(outDir)
//
// The exec text is authoritative. Configs and coordinates are parsed
// companions derived from it, and the only supported text mutation is
// header editing, which rewrites matching lines in place and leaves
// every other line byte for byte alone.
//
// # Related Packages
//
//   - github.com/ukirt-ocs/sequence-format/go-sequence/config - instrument config files
//   - github.com/ukirt-ocs/sequence-format/go-sequence/token - exec line grammar
//   - github.com/ukirt-ocs/sequence-format/go-sequence/tcs - telescope XML configurations
package sequence
