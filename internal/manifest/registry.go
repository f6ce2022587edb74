package manifest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Registry holds the manifests of every discovered extension, keyed by
// name.
type Registry struct {
	extensions map[string]*Extension
}

func NewRegistry() *Registry {
	return &Registry{extensions: make(map[string]*Extension)}
}

// LoadDirectory scans one extensions directory for ext_*/nmmcp_* entries
// and loads their manifests. Bad or missing manifests are logged and
// skipped, matching the host's lenient loading.
func (r *Registry) LoadDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() || !IsExtensionDir(entry.Name()) {
			continue
		}
		ext, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Printf("Skipping extension %s: %v", entry.Name(), err)
			continue
		}
		r.extensions[ext.Name] = ext
	}
	return nil
}

// LoadAll scans every default extensions directory.
func (r *Registry) LoadAll() error {
	for _, dir := range DefaultDirectories() {
		if err := r.LoadDirectory(dir); err != nil {
			return fmt.Errorf("loading extensions from %s: %w", dir, err)
		}
	}
	return nil
}

// Get returns a loaded extension by name.
func (r *Registry) Get(name string) (*Extension, bool) {
	ext, ok := r.extensions[name]
	return ext, ok
}

// Len reports the number of loaded extensions.
func (r *Registry) Len() int {
	return len(r.extensions)
}

// ListTools returns "extension:tool" names with descriptions for every
// loaded extension, sorted for stable output.
func (r *Registry) ListTools() [][2]string {
	var tools [][2]string
	for extName, ext := range r.extensions {
		for _, tool := range ext.Tools {
			tools = append(tools, [2]string{extName + ":" + tool.Name, tool.Description})
		}
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i][0] < tools[j][0] })
	return tools
}

// SupportsCapability reports whether a loaded extension declares the named
// capability.
func (r *Registry) SupportsCapability(extensionName, capability string) bool {
	ext, ok := r.extensions[extensionName]
	if !ok {
		return false
	}
	switch capability {
	case "model_control":
		return ext.Capabilities.ModelControl
	case "tool_integration":
		return ext.Capabilities.ToolIntegration
	case "file_operations":
		return ext.Capabilities.FileOperations
	case "system_access":
		return ext.Capabilities.SystemAccess
	default:
		return false
	}
}

// Remove drops an extension from the registry.
func (r *Registry) Remove(name string) error {
	if _, ok := r.extensions[name]; !ok {
		return fmt.Errorf("extension not found: %s", name)
	}
	delete(r.extensions, name)
	return nil
}
