package workspace

// ValidationError reports a rejected mutation; nothing was changed
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// AuthError reports a failed credential check
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// InvalidOperationError reports an operation the store refuses outright,
// such as a user deleting their own active session identity
type InvalidOperationError struct {
	Msg string
}

func (e *InvalidOperationError) Error() string { return e.Msg }
