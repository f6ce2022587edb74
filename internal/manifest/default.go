package manifest

import "encoding/json"

// Default returns the manifest describing this extension and its two
// tools, with entryPoint pointing at the installed binary.
func Default(entryPoint string) *Extension {
	return &Extension{
		Name:         "ext_neonmachines",
		Version:      "1.0.0",
		Description:  "Neonmachines core extension: file analysis and code generation",
		Author:       "neonmachines",
		EntryPoint:   entryPoint,
		Dependencies: []string{},
		Tools: []Tool{
			{
				Name:        "file_analyzer",
				Description: "Summarize a file or report templated security/performance metrics",
				Parameters: Parameters{
					Required: []string{"file_path"},
					Optional: []string{"analysis_type"},
					Types: map[string]string{
						"file_path":     "string",
						"analysis_type": "string",
					},
				},
				InputSchema:  json.RawMessage(`{"type":"object","properties":{"file_path":{"type":"string"},"analysis_type":{"type":"string","enum":["summary","security","performance"]}},"required":["file_path"]}`),
				OutputSchema: json.RawMessage(`{"type":"object","properties":{"result":{"type":"string"},"error":{"type":"string"}}}`),
			},
			{
				Name:        "code_generator",
				Description: "Return a canned code template selected by keyword matching",
				Parameters: Parameters{
					Required: []string{"specification"},
					Optional: []string{"language", "framework"},
					Types: map[string]string{
						"specification": "string",
						"language":      "string",
						"framework":     "string",
					},
				},
				InputSchema:  json.RawMessage(`{"type":"object","properties":{"specification":{"type":"string"},"language":{"type":"string"},"framework":{"type":"string"}},"required":["specification"]}`),
				OutputSchema: json.RawMessage(`{"type":"object","properties":{"code":{"type":"string"},"explanation":{"type":"string"},"error":{"type":"string"}}}`),
			},
		},
		Capabilities: Capabilities{
			ToolIntegration: true,
			FileOperations:  true,
		},
	}
}
