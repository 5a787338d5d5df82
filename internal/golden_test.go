package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dshills/snartpad/internal/definition"
	"github.com/dshills/snartpad/internal/notepad"
	"github.com/dshills/snartpad/internal/preset"
	"github.com/dshills/snartpad/internal/render"
	"github.com/dshills/snartpad/internal/schema"
	"github.com/dshills/snartpad/internal/score"
	"github.com/dshills/snartpad/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

func loadArmy(t *testing.T) (*notepad.Notepad, *preset.Preset) {
	t.Helper()
	root := projectRoot()

	n, err := notepad.Load(filepath.Join(root, "testdata", "notepads", "army.txt"))
	require.NoError(t, err, "failed to load notepad")

	p, err := preset.Load(filepath.Join(root, "testdata", "defs", "army.yaml"))
	require.NoError(t, err, "failed to load definitions")
	return n, p
}

func TestGoldenArmyReport(t *testing.T) {
	n, p := loadArmy(t)

	// Validate definitions
	for _, e := range schema.Validate(p) {
		t.Errorf("validation error: %s", e)
	}

	// Load the golden report
	goldenData, err := os.ReadFile(filepath.Join(projectRoot(), "testdata", "golden", "army-report.json"))
	require.NoError(t, err, "failed to read golden file")
	var golden score.Report
	require.NoError(t, json.Unmarshal(goldenData, &golden), "failed to parse golden JSON")

	// Score
	set := definition.New()
	require.Empty(t, p.Apply(set))
	sc, err := score.Compile(set.List())
	require.NoError(t, err)
	rep := sc.Report(n.Lines)

	assert.Equal(t, golden.Total, rep.Total)
	assert.Equal(t, golden.Input.LineCount, rep.Input.LineCount)
	assert.Equal(t, golden.Definitions, rep.Definitions)

	got := make([]score.LineResult, len(rep.Lines))
	for i, l := range rep.Lines {
		l.Hits = nil
		got[i] = l
	}
	assert.Equal(t, golden.Lines, got)

	// Total agrees with the plain entry point
	total, err := score.Total(n.Lines, p.Definitions)
	require.NoError(t, err)
	assert.Equal(t, golden.Total, total)

	// Rendering ends with the grand total
	assert.Contains(t, render.Text(&rep), "Grand Total: 440\n")

	// Verify JSON round-trip stability
	data1, err := json.MarshalIndent(rep, "", "  ")
	require.NoError(t, err)
	var rep2 score.Report
	require.NoError(t, json.Unmarshal(data1, &rep2))
	data2, err := json.MarshalIndent(rep2, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(data1), string(data2), "JSON round-trip produced different output")
}

func TestGoldenArmySession(t *testing.T) {
	n, p := loadArmy(t)

	var totals []int
	s := session.New()
	s.OnChange = func(total int, err error) {
		require.NoError(t, err)
		totals = append(totals, total)
	}

	s.SetText(n.Raw)
	for _, d := range p.Definitions {
		s.Add(d.Pattern, d.Points)
	}
	require.NotEmpty(t, totals)
	assert.Equal(t, 440, totals[len(totals)-1])

	// Dropping the medic removes exactly their points.
	s.Remove(`\bMedic\b`)
	assert.Equal(t, 425, totals[len(totals)-1])
}

func TestBrokenDefinitions(t *testing.T) {
	p, err := preset.Load(filepath.Join(projectRoot(), "testdata", "defs", "broken.yaml"))
	require.NoError(t, err)

	errs := schema.Validate(p)
	require.Len(t, errs, 3)
	assert.True(t, schema.HasKind(errs, schema.KindDuplicate))
	assert.True(t, schema.HasKind(errs, schema.KindEmpty))
	assert.True(t, schema.HasKind(errs, schema.KindInvalid))

	_, err = score.Total([]string{"Heavy Weapons"}, p.Definitions)
	assert.ErrorIs(t, err, score.ErrInvalidPattern)
}
