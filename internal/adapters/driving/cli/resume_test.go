package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeCmd_Use(t *testing.T) {
	assert.Equal(t, "resume [file.pdf]", resumeCmd.Use)
}

func TestResumeCmd_Short(t *testing.T) {
	assert.Equal(t, "Extract text and structure from a resume PDF", resumeCmd.Short)
}

func TestResumeCmd_HasFullFlag(t *testing.T) {
	flag := resumeCmd.Flags().Lookup("full")
	require.NotNil(t, flag, "full flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func writeTempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0600))
	return path
}

func TestResumeCmd_PrintsUploadSummary(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"resume", writeTempPDF(t)})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"file_name": "resume.pdf"`)
	assert.Contains(t, buf.String(), `"page_count": 1`)
}

func TestResumeCmd_FullPrintsDocumentAndStructure(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"resume", "--full", writeTempPDF(t)})
	defer func() {
		rootCmd.SetArgs(nil)
		resumeFull = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"document"`)
	assert.Contains(t, buf.String(), `"structure"`)
	assert.Contains(t, buf.String(), "Jane Doe")
}

func TestResumeCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"resume", "/nonexistent/resume.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read file")
}
