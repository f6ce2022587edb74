package extension

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// AnalyzeFile reads the requested file and returns a descriptive string.
// No actual static analysis happens here: the security and performance
// branches report templated text plus counted metrics, matching the wire
// contract the host already depends on.
func AnalyzeFile(req Request) Response {
	if req.FilePath == "" {
		return ErrorResponse("File path is required")
	}

	if _, err := os.Stat(req.FilePath); err != nil {
		return ErrorResponse("File not found: %s", req.FilePath)
	}

	data, err := os.ReadFile(req.FilePath)
	if err != nil {
		return ErrorResponse("Failed to analyze file: %s", err)
	}
	if !utf8.Valid(data) {
		return ErrorResponse("Failed to analyze file: %s is not valid UTF-8 text", req.FilePath)
	}
	content := string(data)

	// Characters are Unicode code points, not bytes.
	chars := utf8.RuneCountInString(content)

	switch req.AnalysisOrDefault() {
	case AnalysisSecurity:
		return ResultResponse(fmt.Sprintf(
			"Security analysis of %s: No critical security issues detected. File contains %d characters.",
			req.FilePath, chars))
	case AnalysisPerformance:
		return ResultResponse(fmt.Sprintf(
			"Performance analysis of %s: File size is %d characters. No performance bottlenecks detected.",
			req.FilePath, chars))
	default:
		lines := len(strings.Split(content, "\n"))
		return ResultResponse(fmt.Sprintf(
			"Summary of %s: File contains %d lines and %d characters.",
			req.FilePath, lines, chars))
	}
}
