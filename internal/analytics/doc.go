// Package analytics computes the sales analyses of one SalesTable: per-store
// summaries, the holiday comparison, a moving-average forecast and the
// safety-stock estimate.
//
// Every function takes the table explicitly and never modifies it. A store
// without rows yields the NOT_FOUND error built by
// errors.NewStoreNotFoundError; callers test for it with errors.IsStoreNotFound.
//
// Sample standard deviations are domain.NullFloat values, undefined for
// fewer than two observations.
package analytics
