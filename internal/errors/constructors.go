package errors

// Convenience functions for common error patterns

// Config errors

// ConfigNotFound reports an explicitly requested configuration file that does not exist.
func ConfigNotFound(path string) *BuildStateError {
	return New(CategoryConfig, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *BuildStateError {
	return Wrap(cause, CategoryConfig, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *BuildStateError {
	return New(CategoryValidation, "validation failed: "+field+": "+reason).
		WithContext("field", field).
		WithContext("reason", reason)
}

// State persistence errors

// FileSystemError reports a state file that could not be read or written.
func FileSystemError(operation, path string, cause error) *BuildStateError {
	return Wrap(cause, CategoryFileSystem, "state file "+operation+" failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

// DecodeError reports a state file whose content cannot be trusted.
func DecodeError(path, reason string, cause error) *BuildStateError {
	return Wrap(cause, CategoryDecode, "state file decode failed: "+reason).
		WithContext("path", path).
		WithContext("reason", reason)
}

// Internal errors

func InternalError(message string, cause error) *BuildStateError {
	return Wrap(cause, CategoryInternal, message)
}
