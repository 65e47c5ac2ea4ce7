package model

// ModelInfo describes one model on the allow-list.
type ModelInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Family      string `json:"family"`
	Reasoning   bool   `json:"reasoning"`
}

var catalog = []ModelInfo{
	{ID: "mistral-nemo", DisplayName: "Mistral", Family: "mistral"},
	{ID: "llama3.2", DisplayName: "Llama", Family: "llama"},
	{ID: "gemma2:9b", DisplayName: "Gemma 2", Family: "gemma"},
	{ID: "gemma3:12b", DisplayName: "Gemma 3", Family: "gemma"},
	{ID: "phi4", DisplayName: "Phi4", Family: "phi"},
	{ID: "deepseek-r1:8b", DisplayName: "R1-8B", Family: "deepseek", Reasoning: true},
	{ID: "deepseek-r1:14b", DisplayName: "R1-14B", Family: "deepseek", Reasoning: true},
}

var catalogByID = func() map[string]ModelInfo {
	m := make(map[string]ModelInfo, len(catalog))
	for _, info := range catalog {
		m[info.ID] = info
	}
	return m
}()

// Models returns the allow-listed models in display order.
func Models() []ModelInfo {
	out := make([]ModelInfo, len(catalog))
	copy(out, catalog)
	return out
}

// LookupModel returns the catalog entry for a model identifier.
func LookupModel(id string) (ModelInfo, bool) {
	info, ok := catalogByID[id]
	return info, ok
}

// IsValidModel reports whether id is on the allow-list.
func IsValidModel(id string) bool {
	_, ok := catalogByID[id]
	return ok
}
