package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://oxd.orangehrm.com/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Props Errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryProps,
		Message:  "Invalid prop value",
		Detail:   "A prop holds a value outside its declared set. Run 'oxd variants' to list the accepted values.",
		DocURL:   docBase + "E001",
	},
	"E002": {
		Category: CategoryProps,
		Message:  "Missing required content",
		Detail:   "Buttons need a label and Text needs content or children.",
		DocURL:   docBase + "E002",
	},
	"E003": {
		Category: CategoryProps,
		Message:  "Unknown component",
		Detail:   "The component name is not in the catalog. Known components are button, text and textarea.",
		DocURL:   docBase + "E003",
	},
	"E004": {
		Category: CategoryProps,
		Message:  "Invalid style",
		Detail:   "The style value could not be parsed. Use CSS declarations (\"color: red\") or a JSON object.",
		DocURL:   docBase + "E004",
	},
	"E005": {
		Category: CategoryProps,
		Message:  "Invalid argument",
		Detail:   "An argument could not be converted to the prop's type.",
		DocURL:   docBase + "E005",
	},

	// ============================================
	// Config Errors (E100-E129)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No oxd.json was found in the current directory or any parent.",
		DocURL:   docBase + "E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "oxd.json could not be parsed as JSON.",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A field in oxd.json failed validation.",
		DocURL:   docBase + "E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Config write failed",
		Detail:   "oxd.json could not be written.",
		DocURL:   docBase + "E103",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid environment override",
		Detail:   "An OXD_* environment variable holds a value of the wrong type.",
		DocURL:   docBase + "E104",
	},

	// ============================================
	// Story and Snapshot Errors (E130-E149)
	// ============================================

	"E130": {
		Category: CategorySnapshot,
		Message:  "Snapshot baseline missing",
		Detail:   "No stored baseline exists for this case. In CI mode missing baselines are failures.",
		DocURL:   docBase + "E130",
	},
	"E131": {
		Category: CategorySnapshot,
		Message:  "Snapshot mismatch",
		Detail:   "Rendered markup differs from the stored baseline.",
		DocURL:   docBase + "E131",
	},
	"E132": {
		Category: CategorySnapshot,
		Message:  "Snapshot store unavailable",
		Detail:   "The snapshot store could not be read or written.",
		DocURL:   docBase + "E132",
	},
	"E133": {
		Category: CategorySnapshot,
		Message:  "Invalid snapshot file",
		Detail:   "A .snap file could not be parsed.",
		DocURL:   docBase + "E133",
	},
	"E134": {
		Category: CategorySnapshot,
		Message:  "Unknown snapshot store",
		Detail:   "The store location must be a directory path or an s3://bucket/prefix URL.",
		DocURL:   docBase + "E134",
	},
	"E140": {
		Category: CategoryStory,
		Message:  "Invalid story file",
		Detail:   "A story YAML file could not be parsed.",
		DocURL:   docBase + "E140",
	},
	"E141": {
		Category: CategoryStory,
		Message:  "Story not found",
		Detail:   "No story with this id exists in the book.",
		DocURL:   docBase + "E141",
	},
	"E142": {
		Category: CategoryStory,
		Message:  "Duplicate story",
		Detail:   "Two stories share the same id.",
		DocURL:   docBase + "E142",
	},
	"E143": {
		Category: CategoryStory,
		Message:  "Invalid story args",
		Detail:   "The story's args could not build its component.",
		DocURL:   docBase + "E143",
	},

	// ============================================
	// Docs and Publish Errors (E150-E169)
	// ============================================

	"E150": {
		Category: CategoryDocs,
		Message:  "Docs server failed",
		Detail:   "The documentation server stopped with an error.",
		DocURL:   docBase + "E150",
	},
	"E151": {
		Category: CategoryDocs,
		Message:  "Port in use",
		Detail:   "The docs server port is already in use. Pick another with --port.",
		DocURL:   docBase + "E151",
	},
	"E152": {
		Category: CategoryDocs,
		Message:  "Export failed",
		Detail:   "The static documentation could not be written.",
		DocURL:   docBase + "E152",
	},
	"E153": {
		Category: CategoryDocs,
		Message:  "Publish failed",
		Detail:   "Uploading the exported documentation to S3 failed.",
		DocURL:   docBase + "E153",
	},
	"E154": {
		Category: CategoryDocs,
		Message:  "S3 bucket not configured",
		Detail:   "Set s3.bucket in oxd.json or pass --bucket.",
		DocURL:   docBase + "E154",
	},

	// ============================================
	// CLI Errors (E170-E179)
	// ============================================

	"E170": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with invalid arguments.",
		DocURL:   docBase + "E170",
	},
	"E171": {
		Category: CategoryCLI,
		Message:  "Terminal required",
		Detail:   "This command needs an interactive terminal.",
		DocURL:   docBase + "E171",
	},
}

// Error codes used across the module.
const (
	CodeInvalidProp      = "E001"
	CodeMissingContent   = "E002"
	CodeUnknownComponent = "E003"
	CodeInvalidStyle     = "E004"
	CodeInvalidArg       = "E005"

	CodeConfigNotFound = "E100"
	CodeConfigParse    = "E101"
	CodeConfigInvalid  = "E102"
	CodeConfigWrite    = "E103"
	CodeConfigEnv      = "E104"

	CodeSnapshotMissing  = "E130"
	CodeSnapshotMismatch = "E131"
	CodeSnapshotStore    = "E132"
	CodeSnapshotParse    = "E133"
	CodeSnapshotLocation = "E134"

	CodeStoryParse     = "E140"
	CodeStoryNotFound  = "E141"
	CodeStoryDuplicate = "E142"
	CodeStoryArgs      = "E143"

	CodeServe         = "E150"
	CodePortInUse     = "E151"
	CodeExport        = "E152"
	CodePublish       = "E153"
	CodeBucketMissing = "E154"

	CodeInvalidArgs      = "E170"
	CodeTerminalRequired = "E171"
)

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
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
