package cli

import (
	"encoding/json"
	"fmt"
)

// printJSON prints v as indented JSON.
func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	printlnFn(string(b))
	return nil
}
