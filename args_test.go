package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"text-splitter/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("no args opens the window", func(t *testing.T) {
		c, err := parseArgs(nil)
		require.NoError(t, err)
		assert.True(t, c.gui())
		assert.Equal(t, services.DefaultLinesPerFile, c.linesPerFile)
	})

	t.Run("file and flags", func(t *testing.T) {
		c, err := parseArgs([]string{"-n", "100", "--prefix", "out", "-d", "/tmp/x", "-q", "book.txt"})
		require.NoError(t, err)
		assert.False(t, c.gui())
		assert.Equal(t, "book.txt", c.src)
		assert.Equal(t, 100, c.linesPerFile)
		assert.Equal(t, "out", c.prefix)
		assert.Equal(t, "/tmp/x", c.outputRoot)
		assert.True(t, c.quiet)
	})

	t.Run("help", func(t *testing.T) {
		c, err := parseArgs([]string{"-h"})
		require.NoError(t, err)
		require.NotNil(t, c.help)
		var out bytes.Buffer
		c.help(&out)
		assert.Contains(t, out.String(), "Usage: textsplit")
		assert.Contains(t, out.String(), "--lines")
	})

	for _, tt := range []struct {
		name string
		args []string
	}{
		{"zero lines", []string{"-n", "0", "a.txt"}},
		{"negative lines", []string{"--lines=-3", "a.txt"}},
		{"two files", []string{"a.txt", "b.txt"}},
		{"prefix without file", []string{"-p", "x"}},
		{"unknown flag", []string{"--bogus", "a.txt"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(src, []byte("a\nb\nc\n"), 0644))

	c, err := parseArgs([]string{"-n", "2", "-d", dir, src})
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	textService := services.NewTextService(logger)
	textService.OutputRoot = c.outputRoot

	outcome := run(&c, textService)
	require.Equal(t, services.OutcomeSucceeded, outcome.Kind, outcome.Message)
	assert.FileExists(t, filepath.Join(dir, "input_split_files", "input_1.txt"))
	assert.FileExists(t, filepath.Join(dir, "input_split_files", "input_2.txt"))
}
