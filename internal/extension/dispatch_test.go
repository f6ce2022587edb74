package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchUnknownTool(t *testing.T) {
	tests := []struct {
		name string
		tool string
		want string
	}{
		{name: "unrecognized name", tool: "shell_exec", want: "Unknown tool: shell_exec"},
		{name: "missing tool field", tool: "", want: "Unknown tool: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Dispatch(Request{Tool: tt.tool})
			assert.Equal(t, tt.want, resp.Error)
			assert.Empty(t, resp.Result)
			assert.Empty(t, resp.Code)
		})
	}
}

func TestDispatchRoutesFileAnalyzer(t *testing.T) {
	// Routed to the analyzer, which rejects the empty path.
	resp := Dispatch(Request{Tool: ToolFileAnalyzer})
	assert.Equal(t, "File path is required", resp.Error)
}

func TestDispatchRoutesCodeGenerator(t *testing.T) {
	resp := Dispatch(Request{Tool: ToolCodeGenerator})
	assert.Equal(t, "Specification is required", resp.Error)
}

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"tool":"file_analyzer","file_path":"/tmp/x","analysis_type":"security","extra":true}`))
	assert.NoError(t, err)
	assert.Equal(t, ToolFileAnalyzer, req.Tool)
	assert.Equal(t, "/tmp/x", req.FilePath)
	assert.Equal(t, AnalysisSecurity, req.AnalysisType)

	for _, input := range []string{`[1,2]`, `"tool"`, `42`, `not json`, `null`} {
		_, err := ParseRequest([]byte(input))
		assert.Error(t, err, "input %q should not parse", input)
	}
}

func TestParseRequestNullIsNotAnObject(t *testing.T) {
	// null is valid JSON but not an object; it must fail parsing, not
	// dispatch as an empty request.
	_, err := ParseRequest([]byte(`null`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON object")
}

func TestRequestDefaults(t *testing.T) {
	var req Request
	assert.Equal(t, AnalysisSummary, req.AnalysisOrDefault())
	assert.Equal(t, DefaultLanguage, req.LanguageOrDefault())

	req.AnalysisType = "performance"
	req.Language = "go"
	assert.Equal(t, AnalysisPerformance, req.AnalysisOrDefault())
	assert.Equal(t, "go", req.LanguageOrDefault())
}

func TestStringFields(t *testing.T) {
	req := Request{FilePath: "/tmp/a", Specification: "build an api", Framework: "  "}
	assert.Equal(t, []string{"/tmp/a", "build an api"}, req.StringFields())
}
