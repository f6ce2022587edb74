package extension

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tool names the host can request.
const (
	ToolFileAnalyzer  = "file_analyzer"
	ToolCodeGenerator = "code_generator"
)

// Analysis types understood by the file analyzer. Anything else falls back
// to the summary branch.
const (
	AnalysisSecurity    = "security"
	AnalysisPerformance = "performance"
	AnalysisSummary     = "summary"
)

// DefaultLanguage is assumed when a code generation request names none.
const DefaultLanguage = "python"

// Request is one tool invocation from the neonmachines host. The host sends
// a single JSON object; fields other than Tool are tool-specific and
// optional. Unknown fields are ignored so the host can add fields without
// breaking older extensions.
type Request struct {
	Tool          string `json:"tool"`
	FilePath      string `json:"file_path"`
	AnalysisType  string `json:"analysis_type"`
	Specification string `json:"specification"`
	Language      string `json:"language"`
	Framework     string `json:"framework"` // accepted, currently unused
}

// ParseRequest decodes one JSON object into a Request. Any non-object input
// is an error, including null, which json.Unmarshal would otherwise accept
// as a no-op.
func ParseRequest(data []byte) (Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Request{}, err
	}
	if fields == nil {
		return Request{}, fmt.Errorf("request must be a JSON object")
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// AnalysisOrDefault returns the requested analysis type, defaulting to
// summary when unset.
func (r Request) AnalysisOrDefault() string {
	if r.AnalysisType == "" {
		return AnalysisSummary
	}
	return r.AnalysisType
}

// LanguageOrDefault returns the requested language, defaulting to python
// when unset.
func (r Request) LanguageOrDefault() string {
	if r.Language == "" {
		return DefaultLanguage
	}
	return r.Language
}

// StringFields returns the free-text fields of the request, used by the
// gateway's secret scan.
func (r Request) StringFields() []string {
	fields := make([]string, 0, 3)
	for _, s := range []string{r.FilePath, r.Specification, r.Framework} {
		if strings.TrimSpace(s) != "" {
			fields = append(fields, s)
		}
	}
	return fields
}
