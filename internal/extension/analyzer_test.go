package extension

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeFileRequiresPath(t *testing.T) {
	resp := AnalyzeFile(Request{Tool: ToolFileAnalyzer})
	assert.Equal(t, "File path is required", resp.Error)
}

func TestAnalyzeFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	resp := AnalyzeFile(Request{FilePath: path})
	assert.Equal(t, "File not found: "+path, resp.Error)
}

func TestAnalyzeFileSummary(t *testing.T) {
	// Three newline-separated lines, 11 characters total.
	path := writeTempFile(t, "abc\nde\nfgh\n")
	want := fmt.Sprintf("Summary of %s: File contains 4 lines and 11 characters.", path)

	for _, analysis := range []string{"", AnalysisSummary, "bogus"} {
		resp := AnalyzeFile(Request{FilePath: path, AnalysisType: analysis})
		assert.Equal(t, want, resp.Result, "analysis_type=%q", analysis)
		assert.Empty(t, resp.Error)
	}
}

func TestAnalyzeFileSecurity(t *testing.T) {
	path := writeTempFile(t, "hello world")
	resp := AnalyzeFile(Request{FilePath: path, AnalysisType: AnalysisSecurity})
	assert.Equal(t, fmt.Sprintf(
		"Security analysis of %s: No critical security issues detected. File contains 11 characters.", path),
		resp.Result)
}

func TestAnalyzeFilePerformance(t *testing.T) {
	path := writeTempFile(t, "hello world")
	resp := AnalyzeFile(Request{FilePath: path, AnalysisType: AnalysisPerformance})
	assert.Equal(t, fmt.Sprintf(
		"Performance analysis of %s: File size is 11 characters. No performance bottlenecks detected.", path),
		resp.Result)
}

func TestAnalyzeFileCountsRunesNotBytes(t *testing.T) {
	// 3 code points, 7 bytes.
	path := writeTempFile(t, "aé中")
	resp := AnalyzeFile(Request{FilePath: path, AnalysisType: AnalysisSecurity})
	assert.Contains(t, resp.Result, "contains 3 characters")
}

func TestAnalyzeFileRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.dat")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0644))
	resp := AnalyzeFile(Request{FilePath: path})
	assert.Contains(t, resp.Error, "Failed to analyze file: ")
}

func TestAnalyzeFileEmptyFile(t *testing.T) {
	// Splitting "" on newline yields one element, matching the host's view.
	path := writeTempFile(t, "")
	resp := AnalyzeFile(Request{FilePath: path})
	assert.Equal(t, fmt.Sprintf("Summary of %s: File contains 1 lines and 0 characters.", path), resp.Result)
}
