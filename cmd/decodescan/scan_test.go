package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/praetorian-inc/decodescan/pkg/probe"
	"github.com/praetorian-inc/decodescan/pkg/report"
	"github.com/praetorian-inc/decodescan/pkg/scanner"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetScanFlags restores flag defaults between tests.
func resetScanFlags() {
	verbose = false
	quiet = false
	scanProbeID = probe.DefaultID
	scanProbesPath = ""
	scanOutputFormat = "human"
	scanColor = "never"
	scanLimit = 0
	scanStripBOM = false
	scanSummary = false
}

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prorcp-unpacked.js")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runScanCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := runScan(cmd, args)
	return out.String(), errOut.String(), err
}

func TestRunScan_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "single match",
			content: "abc decode xyz",
			want: "Content length: 14\n" +
				"Found 'decode' at 4\n" +
				"Context: ...abc decode xyz...\n",
		},
		{
			name:    "adjacent matches",
			content: "decodedecode",
			want: "Content length: 12\n" +
				"Found 'decode' at 0\n" +
				"Context: ...decodedecode...\n" +
				"Found 'decode' at 6\n" +
				"Context: ...decodedecode...\n",
		},
		{
			name:    "empty file",
			content: "",
			want:    "Content length: 0\n",
		},
		{
			name:    "no occurrence",
			content: "var a = atob(b);",
			want:    "Content length: 16\n",
		},
		{
			name:    "crlf line endings",
			content: "a\r\nb\r\ndecode",
			want: "Content length: 10\n" +
				"Found 'decode' at 4\n" +
				"Context: ...a\nb\ndecode...\n",
		},
		{
			name:    "lone cr line ending",
			content: "a\rdecode",
			want: "Content length: 8\n" +
				"Found 'decode' at 2\n" +
				"Context: ...a\ndecode...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetScanFlags()

			out, _, err := runScanCmd(t, writeTarget(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunScan_ContextIsClipped(t *testing.T) {
	resetScanFlags()
	content := strings.Repeat("a", 70) + "decode" + strings.Repeat("b", 70)

	out, _, err := runScanCmd(t, writeTarget(t, content))
	require.NoError(t, err)

	want := "Content length: 146\n" +
		"Found 'decode' at 70\n" +
		"Context: ..." + strings.Repeat("a", 50) + "decode" + strings.Repeat("b", 44) + "...\n"
	assert.Equal(t, want, out)
}

func TestRunScan_MissingFile(t *testing.T) {
	resetScanFlags()

	out, _, err := runScanCmd(t, filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
	assert.Empty(t, out, "nothing is printed before the load fails")

	var ioErr *scanner.IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRunScan_DefaultTarget(t *testing.T) {
	resetScanFlags()

	_, err := os.Stat(defaultTarget)
	if err == nil {
		t.Skip("default target exists on this machine")
	}

	out, _, err := runScanCmd(t)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), defaultTarget)
}

func TestRunScan_UnknownProbe(t *testing.T) {
	resetScanFlags()
	scanProbeID = "nope"

	_, _, err := runScanCmd(t, writeTarget(t, "decode"))
	assert.Error(t, err)
}

func TestRunScan_RegexProbeWithLimit(t *testing.T) {
	resetScanFlags()
	scanProbeID = "decode-hash-call"
	scanLimit = 1
	scanSummary = true

	out, _, err := runScanCmd(t, writeTarget(t, `a=decode('#one');b=decode("#two");`))
	require.NoError(t, err)

	want := "Content length: 34\n" +
		"Found 'decode()' at 2\n" +
		"Context: ...a=decode('#one');b=decode(\"#two\");...\n" +
		"Group 1: #one\n" +
		"Total matches: 1\n"
	assert.Equal(t, want, out)
}

func TestRunScan_JSON(t *testing.T) {
	resetScanFlags()
	scanOutputFormat = "json"

	out, _, err := runScanCmd(t, writeTarget(t, "decodedecode"))
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 12, doc.ContentLength)
	assert.Equal(t, 2, doc.Total)
	require.Len(t, doc.Matches, 2)
	assert.Equal(t, 6, doc.Matches[1].Offset)
}

func TestRunScan_StripBOM(t *testing.T) {
	resetScanFlags()
	path := writeTarget(t, "\uFEFFdecode")

	out, _, err := runScanCmd(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 'decode' at 1\n")

	scanStripBOM = true
	out, _, err = runScanCmd(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 'decode' at 0\n")
}

func TestRunScan_CustomProbes(t *testing.T) {
	resetScanFlags()
	probesFile := filepath.Join(t.TempDir(), "probes.yml")
	require.NoError(t, os.WriteFile(probesFile, []byte(`probes:
  - id: atob
    name: Atob
    pattern: atob(
    context:
      before: 2
      after: 8
`), 0644))
	scanProbesPath = probesFile
	scanProbeID = "atob"

	out, _, err := runScanCmd(t, writeTarget(t, "x = atob(s);"))
	require.NoError(t, err)
	assert.Equal(t, "Content length: 12\nFound 'atob(' at 4\nContext: ...= atob(s);...\n", out)
}

func TestRunScan_InvalidCustomProbes(t *testing.T) {
	resetScanFlags()
	probesFile := filepath.Join(t.TempDir(), "probes.yml")
	require.NoError(t, os.WriteFile(probesFile, []byte("probes:\n  - id: bad\n    name: Bad\n    kind: regex\n    pattern: '('\n"), 0644))
	scanProbesPath = probesFile

	_, _, err := runScanCmd(t, writeTarget(t, "decode"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating probes")
}

func TestRunScan_RejectsKeywordsMissingFromExamples(t *testing.T) {
	resetScanFlags()
	probesFile := filepath.Join(t.TempDir(), "probes.yml")
	require.NoError(t, os.WriteFile(probesFile, []byte(`probes:
  - id: any-case
    name: Any Case Decode
    kind: regex
    pattern: '(?i)decode'
    keywords: [decode]
    examples: ["DECODE"]
`), 0644))
	scanProbesPath = probesFile
	scanProbeID = "any-case"

	out, _, err := runScanCmd(t, writeTarget(t, "x DECODE y"))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "none of the keywords")
}

func TestRunScan_VerboseLogsToStderr(t *testing.T) {
	resetScanFlags()
	verbose = true

	out, errOut, err := runScanCmd(t, writeTarget(t, "abc decode xyz"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Content length: 14\n"))
	assert.Contains(t, errOut, "content loaded")
	assert.NotContains(t, out, "content loaded")
}

func TestExecute_RootCommand(t *testing.T) {
	resetScanFlags()
	path := writeTarget(t, "abc decode xyz")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--color", "never", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Equal(t, "Content length: 14\nFound 'decode' at 4\nContext: ...abc decode xyz...\n", out.String())
}

func TestRunScan_SARIF(t *testing.T) {
	resetScanFlags()
	scanOutputFormat = "sarif"

	out, _, err := runScanCmd(t, writeTarget(t, "abc decode xyz"))
	require.NoError(t, err)

	var log map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &log))
	assert.Equal(t, "2.1.0", log["version"])
	assert.Contains(t, out, `"ruleId": "decode"`)
}
