package permissions

import "github.com/samber/oops"

// Error codes shared by the catalog, the insights engines and the custom role store
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeDataIntegrity   = "DATA_INTEGRITY"
)

// InvalidArgument builds an INVALID_ARGUMENT error in the given domain
func InvalidArgument(domain, format string, args ...any) error {
	return oops.In(domain).Code(CodeInvalidArgument).Errorf(format, args...)
}

// NotFound builds a NOT_FOUND error in the given domain
func NotFound(domain, format string, args ...any) error {
	return oops.In(domain).Code(CodeNotFound).Errorf(format, args...)
}

// IsInvalidArgument reports whether err carries the INVALID_ARGUMENT code
func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

// IsNotFound reports whether err carries the NOT_FOUND code
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}
	return oopsErr.Code() == code
}
