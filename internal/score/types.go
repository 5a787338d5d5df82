package score

import "github.com/dshills/snartpad/internal/definition"

// Report is the scored view of a whole notepad.
type Report struct {
	Tool        string                  `json:"tool"`
	Version     string                  `json:"version"`
	Input       Input                   `json:"input"`
	Definitions []definition.Definition `json:"definitions"`
	Lines       []LineResult            `json:"lines"`
	Total       int                     `json:"grand_total"`
}

// Input describes the notepad and definition sources that produced a report.
type Input struct {
	NotepadFile string   `json:"notepad_file"`
	NotepadHash string   `json:"notepad_hash"`
	LineCount   int      `json:"line_count"`
	Sources     []string `json:"definition_sources,omitempty"`
}

// LineResult breaks down how one line earned its points.
type LineResult struct {
	Line       int    `json:"line"`
	Text       string `json:"text"`
	Literals   int    `json:"literals"`
	Hits       []Hit  `json:"hits,omitempty"`
	Base       int    `json:"base"`
	Multiplier *int   `json:"multiplier,omitempty"`
	Applied    bool   `json:"multiplier_applied"`
	Points     int    `json:"points"`
}

// Contributes reports whether the line carries any scoring evidence.
func (r LineResult) Contributes() bool {
	return r.Literals != 0 || len(r.Hits) > 0 || r.Points != 0
}

// Hit records the matches of one definition on a line.
type Hit struct {
	Pattern string `json:"pattern"`
	Count   int    `json:"count"`
	Points  int    `json:"points"`
}
