package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cs452 = "CS 452 - Real-time Programming\n" +
	"1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025\n"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "questcal.yaml")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestExportCmd_Stdout(t *testing.T) {
	out, err := execute(t, cs452, "export", "-o", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\n"))
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;WKST=SU;BYDAY=MO,WE,FR;UNTIL=20250404T235959\n")
}

func TestExportCmd_FileWithFlags(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "schedule.txt")
	outPath := filepath.Join(dir, "winter.ics")
	require.NoError(t, os.WriteFile(in, []byte(cs452), 0o644))

	_, err := execute(t, "", "export", in, "-o", outPath, "--summary", "@code", "--uid")
	require.NoError(t, err)

	doc, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "SUMMARY:CS 452\n")
	assert.Contains(t, string(doc), "\nUID:")
}

func TestExportCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "export", "-o", "-")
	assert.Error(t, err)

	_, err = execute(t, cs452, "export", "-o", "-", "--date-format", "YYYY-MM-DD")
	assert.Error(t, err)
}

func TestPreviewCmd(t *testing.T) {
	out, err := execute(t, cs452, "preview")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "William B Cowan")
	assert.Contains(t, out, "CS 452 LEC 001: 39 sessions")
}
