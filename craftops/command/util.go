package command

// UsageError marks a malformed invocation. The caller maps it to exit
// code 2; no work is performed and no file is touched.
type UsageError struct {
	Message string
}

// Error ...
func (e *UsageError) Error() string {
	return e.Message
}
