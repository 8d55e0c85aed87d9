package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Rendering fields.
	FieldDisplay = "display"
	FieldFormat  = "format"
	FieldStrict  = "strict"
	FieldCode    = "code"
	FieldMessage = "message"
	FieldMacros  = "macros"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
