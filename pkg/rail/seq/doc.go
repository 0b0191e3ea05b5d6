// Package seq lifts the solo combinators over collections of results.
//
// MapOkEach is a lazy, restartable transformation built on iter.Seq; AllOk
// and AnyOk partition a batch into successes and failures with AND and OR
// semantics respectively. Both treat an empty batch as the failure
// ErrEmpty, matching the behavior callers already depend on, rather than
// vacuous success.
package seq
