// Package mass implements the channel-lifted, asynchronous variants of the
// solo combinators. Each lift preserves the synchronous semantics exactly;
// suspension happens only while handing the result over a channel, never
// inside the combinator logic.
//
// Every operation accepts an optional onCancel handler that observes values
// left undelivered when the context is done. Higher-level packages (lite)
// compose these into concurrent pipelines.
package mass
