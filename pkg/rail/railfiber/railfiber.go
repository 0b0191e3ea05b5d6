package railfiber

import (
	"github.com/gofiber/fiber/v2"

	"github.com/railkit/rail/pkg/rail"
)

// Envelope is the response body shape: data when the result is ok, error
// when it failed, and the status code mirrored from the result.
type Envelope[T any] struct {
	Data       *T         `json:"data,omitempty"`
	Error      *ErrorBody `json:"error,omitempty"`
	StatusCode int        `json:"statusCode"`
}

// ErrorBody renders the error model for clients: a message, the optional
// diagnostic extra and, for aggregates, the flattened child errors.
type ErrorBody struct {
	Message string      `json:"message"`
	Extra   any         `json:"extra,omitempty"`
	Errors  []ErrorBody `json:"errors,omitempty"`
}

// NewErrorBody converts any error into its wire representation. Compound
// errors are flattened first so clients never see nested composites.
func NewErrorBody(err error) *ErrorBody {
	if rail.IsNil(err) {
		return nil
	}

	switch e := err.(type) {
	case *rail.CompoundError:
		return NewErrorBody(e.Aggregate())
	case *rail.AggregateError:
		flat := e.Flatten()
		body := &ErrorBody{Message: flat.Error()}
		for _, child := range flat.Errors() {
			body.Errors = append(body.Errors, *NewErrorBody(child))
		}
		return body
	case rail.Diagnostic:
		return &ErrorBody{Message: e.Error(), Extra: e.Extra()}
	default:
		return &ErrorBody{Message: err.Error()}
	}
}

// Body builds the response status and envelope for a result.
func Body[T any](r rail.Result[T]) (int, Envelope[T]) {
	env := Envelope[T]{StatusCode: r.StatusCode()}

	if r.IsOk() {
		v := r.Value()
		env.Data = &v
	} else {
		env.Error = NewErrorBody(r.Err())
	}

	return r.StatusCode(), env
}

// Respond writes a result to the fiber context: the response status comes
// from the result's status code and the body is the serialized envelope.
// Cycles inside the data payload are the JSON encoder's concern.
func Respond[T any](c *fiber.Ctx, r rail.Result[T]) error {
	status, env := Body(r)
	return c.Status(status).JSON(env)
}
