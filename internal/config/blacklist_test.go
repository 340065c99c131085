package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlacklist(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		classes   []string
		titles    []string
		filenames []string
	}{
		{
			name:    "class rule with inline comment",
			input:   "Class,Notepad,Calculator;comment",
			classes: []string{"Notepad", "Calculator"},
		},
		{
			name:  "leading comment skips line",
			input: ";class,Notepad",
		},
		{
			name:   "title rule",
			input:  "title,Save As",
			titles: []string{"Save As"},
		},
		{
			name:   "windowtitle alias",
			input:  "WindowTitle,Picture-in-Picture",
			titles: []string{"Picture-in-Picture"},
		},
		{
			name:      "exename is lower-cased",
			input:     "ExeName,FireFox.EXE",
			filenames: []string{"firefox.exe"},
		},
		{
			name:    "trailing delimiter is optional",
			input:   "class,Foo,",
			classes: []string{"Foo"},
		},
		{
			name:  "unknown rule kind is discarded",
			input: "garbage,Foo",
		},
		{
			name:  "empty lines are skipped",
			input: "\n\n",
		},
		{
			name:    "multiple lines accumulate",
			input:   "class,One\nclass,Two\ntitle,Three",
			classes: []string{"One", "Two"},
			titles:  []string{"Three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := ParseBlacklist(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.classes, rules.Classes)
			assert.Equal(t, tt.titles, rules.Titles)
			assert.Equal(t, tt.filenames, rules.Filenames)
		})
	}
}

func TestParseBlacklist_MalformedLinesDoNotStopParsing(t *testing.T) {
	input := "bogus,IgnoreMe\nclass,KeepMe\n;only a comment\nexename,keep.exe"
	rules, err := ParseBlacklist(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"KeepMe"}, rules.Classes)
	assert.Equal(t, []string{"keep.exe"}, rules.Filenames)
}
