/*
Package hooks provides the core of the in-process hook dispatcher: a registry
of named hooks and a dispatcher that fans an event out to all of its handlers
under one structured-concurrency scope, with sibling cancellation on failure
and registration-ordered failure aggregation.
*/
package hooks
