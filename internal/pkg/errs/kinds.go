package errs

import cr "github.com/cockroachdb/errors"

// Kind markers. Every user-facing error carries exactly one of them so the
// HTTP layer can tell "invalid" from "missing" from "forbidden".
var (
	ErrValidation = cr.New("validation error")
	ErrNotFound   = cr.New("not found")
	ErrPermission = cr.New("permission denied")
)

func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

func Validationf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrValidation)
}

func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

func Permission(msg string) error {
	return cr.Mark(cr.New(msg), ErrPermission)
}

// AsValidation keeps the original message but reclassifies the error.
func AsValidation(err error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, ErrValidation)
}

func IsValidation(err error) bool { return cr.Is(err, ErrValidation) }
func IsNotFound(err error) bool   { return cr.Is(err, ErrNotFound) }
func IsPermission(err error) bool { return cr.Is(err, ErrPermission) }
