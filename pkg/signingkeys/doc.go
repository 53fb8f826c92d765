/*
Package signingkeys provides the data source behind the signing keys table.

The source does not talk to a backend yet: every refresh signal flips the
loading flag on, waits a fixed delay, publishes an empty page and then exposes
a single placeholder key through Data. Pagination, sorting and filtering are
not implemented.
*/
package signingkeys
