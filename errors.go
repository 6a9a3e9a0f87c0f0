package shaderpack

import "fmt"

// FileSystemError reports a failed filesystem operation on the input or output tree.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// MissingIncludeError reports an #include whose target does not exist.
type MissingIncludeError struct {
	Path         string
	IncludedFrom string
	Line         int
	Err          error
}

func (e *MissingIncludeError) Error() string {
	return fmt.Sprintf("%s:%d: included file %q not found", e.IncludedFrom, e.Line, e.Path)
}

func (e *MissingIncludeError) Unwrap() error { return e.Err }

// MalformedDirectiveError reports an #include line without a double-quoted file name.
type MalformedDirectiveError struct {
	Path string
	Line int
	Text string
}

func (e *MalformedDirectiveError) Error() string {
	return fmt.Sprintf("%s:%d: malformed include directive %q", e.Path, e.Line, e.Text)
}
