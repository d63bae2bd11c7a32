package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name          string
		args          []string
		wantOverrides map[string]string
		wantConfig    string
		wantBatch     string
		wantWorkers   int
	}{
		{
			name:          "no arguments reads stdin",
			args:          nil,
			wantOverrides: map[string]string{},
		},
		{
			name:          "positional input",
			args:          []string{"tree.ged"},
			wantOverrides: map[string]string{"input": "tree.ged"},
		},
		{
			name: "only explicit flags override",
			args: []string{"-config", "ged2dotrc", "-rootfamily", "F7", "-familydepth", "0", "-relpath", "-output", "tree.svg"},
			wantOverrides: map[string]string{
				"rootfamily":  "F7",
				"familydepth": "0",
				"relpath":     "true",
				"output":      "tree.svg",
			},
			wantConfig: "ged2dotrc",
		},
		{
			name:          "batch mode",
			args:          []string{"-batch", "trees", "-workers", "3", "-format", "svg"},
			wantOverrides: map[string]string{"format": "svg"},
			wantBatch:     "trees",
			wantWorkers:   3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, exit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			require.False(t, exit)

			if diff := cmp.Diff(tc.wantOverrides, cfg.Overrides); diff != "" {
				t.Errorf("overrides mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.wantConfig, cfg.ConfigPath)
			assert.Equal(t, tc.wantBatch, cfg.BatchDir)
			if tc.wantWorkers != 0 {
				assert.Equal(t, tc.wantWorkers, cfg.WorkerCount)
			}
			assert.Equal(t, "auto", cfg.LogFormat)
			assert.Equal(t, "info", cfg.LogLevel)
		})
	}
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "ged2dot [options] [INPUT]")
	assert.Contains(t, out.String(), "-rootfamily")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-colour", "red"}, wantMsg: "flag provided but not defined"},
		{name: "non-integer depth", args: []string{"-familydepth", "deep"}, wantMsg: "invalid value"},
		{name: "negative depth", args: []string{"-familydepth", "-1"}, wantMsg: "must not be negative"},
		{name: "two inputs", args: []string{"a.ged", "b.ged"}, wantMsg: "at most one input"},
		{name: "input twice", args: []string{"-input", "a.ged", "b.ged"}, wantMsg: "both as a flag and as an argument"},
		{name: "log format", args: []string{"-log-format", "xml"}, wantMsg: "invalid log-format"},
		{name: "log level", args: []string{"-log-level", "loud"}, wantMsg: "invalid log-level"},
		{name: "outdir without batch", args: []string{"-outdir", "out"}, wantMsg: "OutDir requires BatchDir"},
		{name: "batch with output", args: []string{"-batch", "in", "-output", "x.dot"}, wantMsg: "cannot be combined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, exit, err := Parse(tc.args, &out)
			require.Error(t, err)
			assert.False(t, exit)
			assert.Nil(t, cfg)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
