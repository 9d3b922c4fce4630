// Package orchestration runs binomial strategies concurrently and
// cross-validates their results. It decouples business logic from
// presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration
