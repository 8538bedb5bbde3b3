package parser

import (
	"regexp"
	"strings"

	"sdet/internal/domain"
)

// TAP line markers. Only the three patterns that feed the scenario rollups
// are recognized; a line matching none of them is not an error, it is simply
// not counted.
var (
	okPattern      = regexp.MustCompile(`^ok [0-9]+ -\s`)
	notOKPattern   = regexp.MustCompile(`^not ok [0-9]+ -\s`)
	skippedPattern = regexp.MustCompile(`# SKIP\s`)
)

// TAPParser classifies the TAP-like scenario output embedded in result
// documents.
type TAPParser struct{}

// NewTAPParser creates a new TAPParser.
func NewTAPParser() *TAPParser {
	return &TAPParser{}
}

// LineClass reports which scenario categories one line of output belongs to.
// Classification is inclusive: a failed scenario that carries a skip
// directive sets both NotOK and Skipped.
type LineClass struct {
	OK      bool
	NotOK   bool
	Skipped bool
}

// ClassifyLine matches a single line against the TAP markers. The passed and
// failed markers must sit at the start of the line, so a "not ok" line never
// doubles as a passed scenario. The skip directive may appear anywhere.
func (p *TAPParser) ClassifyLine(line string) LineClass {
	return LineClass{
		OK:      okPattern.MatchString(line),
		NotOK:   notOKPattern.MatchString(line),
		Skipped: skippedPattern.MatchString(line),
	}
}

// Classify splits raw scenario output on newlines and buckets every
// recognized non-empty line, preserving source order within each bucket.
func (p *TAPParser) Classify(raw string) domain.ScenarioSet {
	var set domain.ScenarioSet
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		class := p.ClassifyLine(line)
		if class.OK {
			set.OK = append(set.OK, line)
		}
		if class.NotOK {
			set.NotOK = append(set.NotOK, line)
		}
		if class.Skipped {
			set.Skipped = append(set.Skipped, line)
		}
	}
	return set
}
