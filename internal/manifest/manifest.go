// Package manifest handles nmmcp.json extension metadata: the file the
// neonmachines host reads to discover an extension and the tools it
// provides.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MetadataFile is the manifest file name the host looks for in each
// extension directory.
const MetadataFile = "nmmcp.json"

// Extension describes one installed extension.
type Extension struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Description  string       `json:"description"`
	Author       string       `json:"author"`
	EntryPoint   string       `json:"entry_point"`
	Dependencies []string     `json:"dependencies"`
	Tools        []Tool       `json:"tools"`
	Capabilities Capabilities `json:"capabilities"`
}

// Tool describes one tool provided by an extension.
type Tool struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Parameters   Parameters      `json:"parameters"`
	InputSchema  json.RawMessage `json:"input_schema"`
	OutputSchema json.RawMessage `json:"output_schema"`
}

type Parameters struct {
	Required []string          `json:"required"`
	Optional []string          `json:"optional"`
	Types    map[string]string `json:"types"`
}

type Capabilities struct {
	ModelControl    bool `json:"model_control"`
	ToolIntegration bool `json:"tool_integration"`
	FileOperations  bool `json:"file_operations"`
	SystemAccess    bool `json:"system_access"`
}

// Validate checks the invariants the host enforces before loading an
// extension.
func (e *Extension) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("extension name cannot be empty")
	}
	if e.Version == "" {
		return fmt.Errorf("extension version cannot be empty")
	}
	if e.EntryPoint == "" {
		return fmt.Errorf("entry point cannot be empty")
	}
	if len(e.Tools) == 0 {
		return fmt.Errorf("extension must have at least one tool")
	}

	for _, tool := range e.Tools {
		if tool.Name == "" {
			return fmt.Errorf("tool name cannot be empty")
		}
		if tool.Description == "" {
			return fmt.Errorf("tool %s: description cannot be empty", tool.Name)
		}

		// Required parameters must appear in the input schema properties.
		var schema struct {
			Properties map[string]json.RawMessage `json:"properties"`
		}
		if len(tool.InputSchema) > 0 {
			if err := json.Unmarshal(tool.InputSchema, &schema); err != nil {
				return fmt.Errorf("tool %s: invalid input schema: %w", tool.Name, err)
			}
		}
		for _, param := range tool.Parameters.Required {
			if _, ok := schema.Properties[param]; !ok {
				return fmt.Errorf("tool %s: required parameter %q not found in input schema", tool.Name, param)
			}
		}
	}
	return nil
}

// Load reads and validates the manifest from an extension directory.
func Load(extensionDir string) (*Extension, error) {
	data, err := os.ReadFile(filepath.Join(extensionDir, MetadataFile))
	if err != nil {
		return nil, err
	}

	var ext Extension
	if err := json.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", MetadataFile, err)
	}
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	return &ext, nil
}

// ExtensionsDirectory is the user extensions directory of the host.
func ExtensionsDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "extensions")
	}
	return filepath.Join(home, ".neonmachines", "extensions")
}

// DefaultDirectories lists everywhere the host searches for extensions.
func DefaultDirectories() []string {
	return []string{
		ExtensionsDirectory(),
		"/usr/local/lib/neonmachines/extensions",
		filepath.Join(".", "extensions"),
	}
}

// IsExtensionDir reports whether a directory name marks an extension the
// host will pick up.
func IsExtensionDir(name string) bool {
	return strings.HasPrefix(name, "ext_") || strings.HasPrefix(name, "nmmcp_")
}
