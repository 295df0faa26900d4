package graphql

import (
	apperrors "auth-graph/app/utils/errors"
)

// resolverError adapts AppError to the gqlerrors.ExtendedError interface so
// the error code and offending fields travel in the GraphQL error
// extensions instead of only in the message text.
type resolverError struct {
	*apperrors.AppError
}

// Error returns only the public message. The AppError's code and cause are
// for the extensions and the server log, not the wire.
func (e resolverError) Error() string {
	return e.Message
}

// Extensions implements gqlerrors.ExtendedError
func (e resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": string(e.Code),
	}
	if len(e.Fields) > 0 {
		ext["fields"] = e.Fields
	}
	return ext
}

// presentError normalizes any resolver failure into an error safe to send
// to the client. Internal causes are logged here and replaced by a generic
// message; business errors keep their public text.
func (r *Resolver) presentError(err error) error {
	appErr := apperrors.FromDomain(err)
	if appErr.Code == apperrors.ErrCodeInternalError {
		r.logger.Error("internal error", "error", err)
	}
	return resolverError{appErr}
}
