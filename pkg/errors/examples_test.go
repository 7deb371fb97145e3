package errors_test

import (
	"fmt"

	"github.com/agentstation/stigmerge/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := &errors.NotFoundError{
		Resource: "stig",
		ID:       "Windows_10_STIG",
	}

	if errors.IsNotFound(err) {
		fmt.Println("STIG not found")
	}

	// Output: STIG not found
}

// Example_documentError shows how read, parse and schema failures collapse
// into one class at the CLI boundary.
func Example_documentError() {
	failures := []error{
		errors.NewIOError("read", "a.ckl", errors.New("no such file or directory")),
		errors.NewParseError("xml", "a.ckl", "unexpected EOF", nil),
		errors.NewSchemaError("Windows_10_STIG", "stigid", "expected exactly one, found 0", errors.ErrMissingField),
	}

	for _, err := range failures {
		fmt.Println(errors.IsDocumentError(err))
	}

	// Output:
	// true
	// true
	// true
}
