package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// Prompt wording lives in career.json so HR copy reviews do not require
// touching Go code. The catalog is embedded at compile time.
//
//go:embed career.json
var catalogFile []byte

var (
	catalogOnce sync.Once
	catalog     map[string]string
	catalogErr  error
)

func loadCatalog() (map[string]string, error) {
	catalogOnce.Do(func() {
		catalogErr = json.Unmarshal(catalogFile, &catalog)
	})
	return catalog, catalogErr
}

// Get retrieves a prompt fragment from the embedded catalog by key.
// Returns an error if the key is not found.
func Get(key string) (string, error) {
	prompts, err := loadCatalog()
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt catalog: %w", err)
	}

	prompt, exists := prompts[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in catalog", key)
	}

	return prompt, nil
}

// MustGet retrieves a prompt fragment by key, panicking if not found.
// Use this for fragments that are required at initialization time.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// List returns all available prompt keys in the catalog.
func List() ([]string, error) {
	prompts, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(prompts))
	for key := range prompts {
		keys = append(keys, key)
	}
	return keys, nil
}
