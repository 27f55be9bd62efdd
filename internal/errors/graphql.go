package errors

import "fmt"

// ResolverError carries a storage error to the GraphQL response unchanged and
// tags it with a classified code in extensions.
type ResolverError struct {
	err  error
	code string
}

// Wrap classifies err for a resolver. It returns nil for a nil err.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ResolverError{
		err:  err,
		code: ParseError(err, context).Code,
	}
}

// OutOfRange reports a value that does not fit the GraphQL type of field.
func OutOfRange(field string, value int64) error {
	return &ResolverError{
		err:  fmt.Errorf("%s value %d is out of range for Int", field, value),
		code: ValidationInvalidRange,
	}
}

func (e *ResolverError) Error() string {
	return e.err.Error()
}

func (e *ResolverError) Unwrap() error {
	return e.err
}

func (e *ResolverError) Code() string {
	return e.code
}

// Extensions is picked up by graphql-go and rendered under errors[].extensions.
func (e *ResolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.code,
	}
}
