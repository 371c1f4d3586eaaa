package logging

// Field name constants for structured logging.
// Using constants prevents typos across call sites.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFormat = "format"
	FieldStrict = "strict"
	FieldJobs   = "jobs"

	// Statistics fields.
	FieldFilesDiscovered     = "files_discovered"
	FieldFilesProcessed      = "files_processed"
	FieldFilesWithViolations = "files_with_violations"
	FieldViolationsTotal     = "violations_total"

	// Rule fields.
	FieldRule = "rule"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
