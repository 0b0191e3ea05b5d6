// Package railfiber adapts Result[T] values to fiber HTTP responses.
//
// A handler builds its Result through the rail combinators and finishes
// with Respond, which copies the result's status code onto the response and
// serializes a {data, error, statusCode} envelope.
package railfiber
