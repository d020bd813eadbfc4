package recipe

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed default.yaml
var defaultRecipe []byte

// Default returns the built-in MAX30105/ESP32 recipe.
func Default() *Recipe {
	r, err := Parse(defaultRecipe, "default.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded recipe is broken: %v", err))
	}
	return r
}

// Load reads, validates and parses a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating recipe %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: path, Result: result}
	}
	return Parse(data, path)
}

// Parse unmarshals a recipe without schema validation, applies defaults and
// runs the recipe checks. The first failing check is returned.
func Parse(data []byte, source string) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing recipe %s: %w", source, err)
	}
	r.applyDefaults()

	if issues := r.check(); len(issues) > 0 {
		return nil, fmt.Errorf("recipe %s: %s: %w", source, issues[0].Path, issues[0].err)
	}
	return &r, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
