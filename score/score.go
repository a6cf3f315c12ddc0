// Package score reads YAML score files into engine entries.
//
// The engine itself is format-agnostic: it consumes a []kinko.Entry and
// nothing else. This package is the reference host-side importer used by
// the CLI and the tests. A score document looks like:
//
//	title: Hifumi Hachigaeshi
//	font:
//	  family: Noto Serif JP
//	  size: 28
//	entries:
//	  - note: ro            # romaji, kana, or reference pitch
//	    dur: q
//	    register: 1
//	    alter: meri
//	    techniques: [yuri]
//	    dotted: true
//	  - pitch: C#5          # resolved through the extended pitch map
//	    dur: 8
//	  - rest: true
//	    dur: q
//
// A `note` entry carries the symbol through untouched (the engine's soft
// fallback applies to unknown strings). A `pitch` entry is resolved here
// through pitch.Map, and resolution failures abort the load: a pitch
// outside C4..B6 cannot be notated and silently skipping it would corrupt
// the score.
package score

import (
	"fmt"
	"io"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/kinko"
	"github.com/gogpu/kinko/pitch"
)

// Font holds the document-level font request.
type Font struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// Entry is one raw score-file event before resolution.
type Entry struct {
	Note       string   `yaml:"note"`
	Pitch      string   `yaml:"pitch"`
	Rest       bool     `yaml:"rest"`
	Dur        string   `yaml:"dur"`
	Register   int      `yaml:"register"`
	Alter      string   `yaml:"alter"`
	Techniques []string `yaml:"techniques"`
	Dotted     bool     `yaml:"dotted"`
}

// Validate checks one entry's fields against the engine vocabulary.
func (e Entry) Validate() error {
	forms := 0
	if e.Note != "" {
		forms++
	}
	if e.Pitch != "" {
		forms++
	}
	if e.Rest {
		forms++
	}
	if forms != 1 {
		return fmt.Errorf("score: entry needs exactly one of note, pitch, rest")
	}
	if err := validation.ValidateStruct(&e,
		validation.Field(&e.Dur, validation.In("", "w", "h", "q", "8", "16", "32")),
		validation.Field(&e.Register, validation.Min(0), validation.Max(2)),
		validation.Field(&e.Alter, validation.In("", "meri", "chu-meri", "dai-meri", "kari")),
	); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	for _, t := range e.Techniques {
		if _, err := parseTechnique(t); err != nil {
			return err
		}
	}
	return nil
}

// Document is one parsed score file.
type Document struct {
	Title   string  `yaml:"title"`
	Font    Font    `yaml:"font"`
	Entries []Entry `yaml:"entries"`
}

// Validate checks the document and every entry.
func (d *Document) Validate() error {
	if err := validation.ValidateStruct(d,
		validation.Field(&d.Entries, validation.Required),
	); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	for i, e := range d.Entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// Decode parses and validates a YAML score document from r.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("score: decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads, parses, and validates a YAML score file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("score: open: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// EngineEntries resolves the document into engine entries. Entries given
// as Western pitches go through the extended pitch map; an unmappable
// pitch fails the whole conversion.
func (d *Document) EngineEntries() ([]kinko.Entry, error) {
	out := make([]kinko.Entry, 0, len(d.Entries))
	for i, e := range d.Entries {
		ke, err := e.engineEntry()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, ke)
	}
	return out, nil
}

// engineEntry converts one validated file entry.
func (e Entry) engineEntry() (kinko.Entry, error) {
	ke := kinko.Entry{
		Duration: kinko.Duration(e.Dur),
		Register: e.Register,
		Dotted:   e.Dotted,
		Rest:     e.Rest,
	}
	if ke.Duration == "" {
		ke.Duration = kinko.DurationQuarter
	}
	alter, err := parseAlter(e.Alter)
	if err != nil {
		return kinko.Entry{}, err
	}
	ke.Alteration = alter
	for _, t := range e.Techniques {
		k, err := parseTechnique(t)
		if err != nil {
			return kinko.Entry{}, err
		}
		ke.Techniques = append(ke.Techniques, k)
	}

	switch {
	case e.Rest:
	case e.Pitch != "":
		m, err := pitch.Map(e.Pitch)
		if err != nil {
			return kinko.Entry{}, err
		}
		ke.Symbol = m.Step
		ke.Register = int(m.Octave)
		// The map's meri depth overrides any explicit alteration;
		// the pitch already encodes it.
		switch {
		case m.DaiMeri:
			ke.Alteration = kinko.AlterDaiMeri
		case m.ChuMeri:
			ke.Alteration = kinko.AlterChuMeri
		case m.Meri:
			ke.Alteration = kinko.AlterMeri
		}
	default:
		ke.Symbol = e.Note
	}
	return ke, nil
}

// parseAlter maps a file alteration name to the engine kind.
func parseAlter(s string) (kinko.AlterKind, error) {
	switch s {
	case "":
		return kinko.AlterNone, nil
	case "meri":
		return kinko.AlterMeri, nil
	case "chu-meri":
		return kinko.AlterChuMeri, nil
	case "dai-meri":
		return kinko.AlterDaiMeri, nil
	case "kari":
		return kinko.AlterKari, nil
	}
	return kinko.AlterNone, fmt.Errorf("score: unknown alteration %q", s)
}

// parseTechnique maps a file technique name to the engine kind.
func parseTechnique(s string) (kinko.TechniqueKind, error) {
	switch s {
	case "yuri":
		return kinko.TechniqueYuri, nil
	case "suri":
		return kinko.TechniqueSuri, nil
	case "atari":
		return kinko.TechniqueAtari, nil
	}
	return 0, fmt.Errorf("score: unknown technique %q", s)
}
