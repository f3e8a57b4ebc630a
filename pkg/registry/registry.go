// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"os"
	"time"

	"stellar-ops-engine/internal/dispatch"
)

// Build renders the dispatch registry as a catalog. Tools appear in
// registration order so the published list is stable across restarts.
func Build(version string, ops []dispatch.Operation) *ToolCatalog {
	tools := make([]Tool, 0, len(ops))
	for _, op := range ops {
		schema := op.InputSchema
		if schema == nil {
			schema = map[string]interface{}{
				"type":                 "object",
				"properties":           map[string]interface{}{},
				"additionalProperties": false,
			}
		}
		tools = append(tools, Tool{
			Name:        op.Name,
			Description: op.Description,
			Category:    op.Category,
			InputSchema: schema,
			Timeout:     op.Timeout.String(),
		})
	}
	return &ToolCatalog{
		Version:   version,
		Generated: time.Now().UTC().Format(time.RFC3339),
		Tools:     tools,
	}
}

// WriteFile persists the catalog alongside the deployment so the router can
// load it without calling the engine.
func (c *ToolCatalog) WriteFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadCatalog reads a previously written catalog file.
func LoadCatalog(path string) (*ToolCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog ToolCatalog
	err = json.Unmarshal(data, &catalog)
	return &catalog, err
}
