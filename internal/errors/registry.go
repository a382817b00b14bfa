package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// CLI errors (E100-E109)

	"E100": {
		Category:   CategoryCLI,
		Message:    "Missing project directory",
		Detail:     "The new command needs the directory to create the project in.",
		Suggestion: "Run: portico new <project_directory>",
	},
	"E101": {
		Category:   CategoryCLI,
		Message:    "Invalid project name",
		Detail:     "Project names must start with a letter and use only letters, digits, '-' and '_'.",
		Suggestion: "Pick a name like my-dashboards",
	},

	// Scaffold errors (E110-E119)

	"E110": {
		Category: CategoryScaffold,
		Message:  "Template rendering failed",
		Detail:   "A scaffold file template could not be rendered.",
	},
	"E111": {
		Category: CategoryScaffold,
		Message:  "Directory creation failed",
		Detail:   "A project directory could not be created. Check permissions on the parent directory.",
	},
	"E112": {
		Category: CategoryScaffold,
		Message:  "File write failed",
		Detail:   "A project file could not be written. Check permissions and free disk space.",
	},

	// Configuration errors (E120-E129)

	"E120": {
		Category:   CategoryConfig,
		Message:    "Invalid port number",
		Detail:     "The configured port is not an integer between 1 and 65535.",
		Suggestion: "Set PORT (or the port argument) to a value like 8050",
	},
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
