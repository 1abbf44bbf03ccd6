// Package errors provides structured, actionable errors for the styled
// command line tools.
//
// Each error has a unique code (e.g., "E100") that maps to a short message,
// a longer explanation and a documentation URL. Codes are grouped by the
// tool that raises them:
//   - E100-E119: config loading and validation
//   - E120-E139: CLI input
//   - E140-E159: preview server
//   - E160-E179: publishing
//
// # Usage
//
//	err := errors.New("E103").
//	    WithLocation("styled.yaml", 12, 11).
//	    WithSuggestion(`Use "Text" instead of "Label"`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E103: Unknown base primitive
//	//
//	//   styled.yaml:12:11
//	//
//	//     10 │ components:
//	//     11 │   Heading:
//	//   → 12 │     base: Label
//	//        │           ^
//	//     13 │     aliasPreset: text
//	//
//	//   Hint: Use "Text" instead of "Label"
//
// Colors come from github.com/fatih/color and are turned off automatically
// when stdout is not a terminal.
package errors
