package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCmd_Use(t *testing.T) {
	assert.Equal(t, "job [file]", jobCmd.Use)
}

func TestJobCmd_Short(t *testing.T) {
	assert.Equal(t, "Clean and parse a job description", jobCmd.Short)
}

func TestJobCmd_HasTitleFlag(t *testing.T) {
	flag := jobCmd.Flags().Lookup("title")
	require.NotNil(t, flag, "title flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestJobCmd_ReadsFromStdin(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("Senior Backend Engineer wanted"))
	rootCmd.SetArgs([]string{"job"})
	defer func() {
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"cleaned_text"`)
	assert.Contains(t, buf.String(), "Mock Engineer")
}

func TestJobCmd_TitleFlagPassedThrough(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("some text"))
	rootCmd.SetArgs([]string{"job", "--title", "Staff Engineer"})
	defer func() {
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
		jobTitle = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Staff Engineer")
}

func TestJobCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"job", "/nonexistent/input.txt"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

func TestJobCmd_RejectsExtraArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"job", "one.txt", "two.txt"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}
