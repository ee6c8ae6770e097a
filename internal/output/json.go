package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONResult is the envelope every fsdist command emits with --json.
type JSONResult struct {
	Status string      `json:"status"` // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Fix    string      `json:"fix,omitempty"`
	Code   int         `json:"code,omitempty"` // process exit code on error
}

// Stdout is where JSON results are written.
var Stdout io.Writer = os.Stdout

// ExitCode classifies errors for the JSON envelope. main wires it to
// exitcode.Of; left nil, error results carry no code.
var ExitCode func(error) int

// JSON writes a successful result.
func JSON(data interface{}) {
	writeJSON(JSONResult{Status: "ok", Data: data})
}

// JSONError writes err as an error result.
func JSONError(err error) {
	result := JSONResult{
		Status: "error",
		Error:  err.Error(),
		Fix:    FixOf(err),
	}
	if ExitCode != nil {
		result.Code = ExitCode(err)
	}
	writeJSON(result)
}

func writeJSON(result JSONResult) {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "error encoding JSON output: %v\n", err)
	}
}
