/*
Package path tokenizes the value paths used inside interpolation expressions.

An expression such as {{step_1.body.items[0]["display name"]}} references the
output of step "step_1"; the keys after the step name address a value inside
that output. The first key is always the step name.
*/
package path
