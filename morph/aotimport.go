package morph

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/steosofficial/steosmorphy/encoding"
)

// TagResolver maps a POS mnemonic (as found in an AOT tab file) and its
// attribute field list to a packed 32-bit POS word. Implementations wrap
// UnpackRussian/UnpackEnglish's inverse — packing rather than unpacking —
// for the mnemonics their language recognizes. An unknown mnemonic must
// return (0, false): the caller records a null packing, not an error.
type TagResolver interface {
	Resolve(mnemonic string, attrs []string) (packed uint32, ok bool)
}

// AotImporter drives a Builder from AOT-format text sources (spec §6).
// It is a thin, cmd-adjacent convenience: the core library never reads
// files itself.
type AotImporter struct {
	builder  *Builder
	tags     map[string]uint32 // tab_id -> packed POS word
	resolver TagResolver
	mainForm map[LineID]string // line -> its designated main-form suffix
}

// NewAotImporter creates an importer that builds into a fresh
// Morphologist over alphabet, resolving tab-file mnemonics with resolver.
func NewAotImporter(alphabet *encoding.Alphabet, resolver TagResolver) *AotImporter {
	return &AotImporter{
		builder:  NewBuilder(alphabet),
		tags:     make(map[string]uint32),
		resolver: resolver,
		mainForm: make(map[LineID]string),
	}
}

// ImportTab reads a tab file: one POS definition per line, fields
// `id pos-tag-internal pos-tag-mnemonic [attr1,attr2,...]`. Blank lines
// and `//` comments are skipped. Unknown mnemonics record a null (zero)
// packing rather than failing. Returns AotFormatError on malformed lines.
func (imp *AotImporter) ImportTab(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return &AotFormatError{File: name, Line: lineNo, Msg: "expected at least 3 fields"}
		}
		id := fields[0]
		mnemonic := fields[2]
		var attrs []string
		if len(fields) > 3 {
			attrs = strings.Split(fields[3], ",")
		}
		packed, ok := imp.resolver.Resolve(mnemonic, attrs)
		if !ok {
			packed = 0
		}
		imp.tags[id] = packed
	}
	if err := scanner.Err(); err != nil {
		return &AotFormatError{File: name, Line: lineNo, Msg: err.Error()}
	}
	return nil
}

// ImportDictionary reads a dictionary file: suffix-line section,
// three drop sections, then the dictionary section, each preceded by a
// decimal count line, per spec §6.
func (imp *AotImporter) ImportDictionary(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	ln := &lineNumberedScanner{scanner: scanner, name: name}

	count, err := ln.readCount()
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		text, err := ln.readLine()
		if err != nil {
			return err
		}
		if err := imp.importSuffixLine(text, ln.lineNo, name); err != nil {
			return err
		}
	}

	for drop := 0; drop < 3; drop++ {
		dropCount, err := ln.readCount()
		if err != nil {
			return err
		}
		for i := 0; i < dropCount; i++ {
			if _, err := ln.readLine(); err != nil {
				return err
			}
		}
	}

	dictCount, err := ln.readCount()
	if err != nil {
		return err
	}
	for i := 0; i < dictCount; i++ {
		text, err := ln.readLine()
		if err != nil {
			return err
		}
		lemmaID := LemmaID(i + 1)
		if err := imp.importDictLine(text, lemmaID, ln.lineNo, name); err != nil {
			return err
		}
	}
	return nil
}

// importSuffixLine parses one %-separated suffix-line: the leading field
// names the line's main-form tab_id; every following field is
// suffix*tab_id and contributes (suffix, attr) to the line. The suffix
// whose tab_id matches the leading field becomes the line's recorded
// main-form suffix, used by importDictLine to build each lemma's
// canonical surface form.
func (imp *AotImporter) importSuffixLine(text string, lineNo int, file string) error {
	fields := strings.Split(text, "%")
	if len(fields) < 2 {
		return &AotFormatError{File: file, Line: lineNo, Msg: "suffix line has no entries"}
	}
	mainTabID := strings.TrimSpace(fields[0])
	line := imp.builder.AddSuffixLine()

	var mainSuffix string
	haveMain := false
	for _, f := range fields[1:] {
		parts := strings.SplitN(f, "*", 2)
		if len(parts) != 2 {
			return &AotFormatError{File: file, Line: lineNo, Msg: "malformed suffix field: " + f}
		}
		suffix, tabID := parts[0], parts[1]
		packed, ok := imp.tags[tabID]
		if !ok {
			return &AotFormatError{File: file, Line: lineNo, Msg: "unknown tab id: " + tabID}
		}
		if err := imp.builder.AddSuffix(line, packed, suffix); err != nil {
			return err
		}
		if tabID == mainTabID {
			mainSuffix, haveMain = suffix, true
		}
	}
	if !haveMain {
		first := strings.SplitN(fields[1], "*", 2)
		mainSuffix = first[0]
	}
	imp.mainForm[line] = mainSuffix
	return nil
}

func (imp *AotImporter) importDictLine(text string, lemmaID LemmaID, lineNo int, file string) error {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return &AotFormatError{File: file, Line: lineNo, Msg: "expected base and line_id"}
	}
	base := fields[0]
	lineID, err := strconv.Atoi(fields[1])
	if err != nil {
		return &AotFormatError{File: file, Line: lineNo, Msg: "invalid line_id: " + fields[1]}
	}
	line := LineID(lineID)
	mainForm := base + imp.mainForm[line]
	return imp.builder.AddBase(lemmaID, line, base, mainForm)
}

// Build freezes the imported data into a Morphologist.
func (imp *AotImporter) Build() *Morphologist {
	return imp.builder.Build()
}

// lineNumberedScanner wraps a bufio.Scanner with AOT count-line parsing
// and line-number tracking for AotFormatError.
type lineNumberedScanner struct {
	scanner *bufio.Scanner
	name    string
	lineNo  int
}

func (s *lineNumberedScanner) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", &AotFormatError{File: s.name, Line: s.lineNo, Msg: err.Error()}
		}
		return "", &AotFormatError{File: s.name, Line: s.lineNo, Msg: "unexpected end of file"}
	}
	s.lineNo++
	return s.scanner.Text(), nil
}

func (s *lineNumberedScanner) readCount() (int, error) {
	text, err := s.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &AotFormatError{File: s.name, Line: s.lineNo, Msg: "expected decimal count, got: " + text}
	}
	return n, nil
}
