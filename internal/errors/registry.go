package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://styled.vango.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No styled.yaml, styled.yml or styled.json was found in the given directory.",
		DocURL:   docBase + "E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "The config file could not be parsed. Check the YAML syntax near the reported line.",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Config validation failed",
		Detail:   "A config value is missing or out of range.",
		DocURL:   docBase + "E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Unknown base primitive",
		Detail:   "A component's base must name one of the built-in primitives: Image, Pressable, Text, TextInput, TouchableOpacity, View.",
		DocURL:   docBase + "E103",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Unknown alias preset",
		Detail:   "aliasPreset must be one of none, default or text.",
		DocURL:   docBase + "E104",
	},

	// ============================================
	// CLI Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryCLI,
		Message:  "Props input is not an object",
		Detail:   "Props must be given as a single JSON or YAML object mapping prop names to values.",
		DocURL:   docBase + "E120",
	},
	"E121": {
		Category: CategoryCLI,
		Message:  "Unknown component",
		Detail:   "The component is neither a built-in primitive nor declared under components in the config.",
		DocURL:   docBase + "E121",
	},

	// ============================================
	// Preview Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryPreview,
		Message:  "Render failed",
		Detail:   "The component tree could not be rendered to HTML.",
		DocURL:   docBase + "E140",
	},
	"E141": {
		Category: CategoryPreview,
		Message:  "Malformed websocket message",
		Detail:   `Live render messages must be JSON objects of the form {"component": "...", "props": {...}}.`,
		DocURL:   docBase + "E141",
	},

	// ============================================
	// Publish Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "An object could not be written to the publish bucket.",
		DocURL:   docBase + "E160",
	},
	"E161": {
		Category: CategoryPublish,
		Message:  "Publish bucket not configured",
		Detail:   "Set publish.bucket in styled.yaml before publishing.",
		DocURL:   docBase + "E161",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
