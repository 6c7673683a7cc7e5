package touchcli

// Error is an error raised by the CLI that is shown to the user as
// "ERROR: <msg>". Errors that are not Error are printed with %+v.
type Error struct {
	msg string
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

// UsageError is returned by ParseArgs when the arguments do not describe a
// runnable invocation. Usage holds the help text to print.
type UsageError struct {
	msg   string
	Usage string

	// Help is set when the user asked for help; the process then exits 0.
	Help bool
}

func (e *UsageError) Error() string {
	return e.msg
}
