package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/stigmerge/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	dir, err := os.MkdirTemp("", "constants-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "site"+constants.ChecklistExtension)
	if err := os.WriteFile(file, []byte("<CHECKLIST/>"), constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	fmt.Printf("Merged output tag: %s\n", constants.MergedTag)
	// Output:
	// Created file with 644 permissions
	// Merged output tag: merged
}
