// pkg/registry/schema.go
package registry

// ToolCatalog is the machine-readable list of engine operations published to
// the Dialogue Router. The router forwards each tool's name, description and
// input schema to the language model verbatim.
type ToolCatalog struct {
	Version   string `json:"version"`
	Generated string `json:"generated"`
	Tools     []Tool `json:"tools"`
}

// Tool describes one dispatchable operation.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	InputSchema map[string]interface{} `json:"input_schema"`
	Timeout     string                 `json:"timeout"`
}
