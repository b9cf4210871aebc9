/*
Package trigger layers named triggers over the hook core: a trigger wraps a
function so that each successful call fires the function's result as an event
to the hooks attached to it.
*/
package trigger
