package server_response

type ServerResponder interface {
	Respond(ctx interface{}, code int, message string, payload interface{}, errs []error, responseCode *uint)
}

var Responder ServerResponder = ginResponder{}
