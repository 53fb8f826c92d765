package stepmention

import _ "embed"

// Version is the release version of stepmention.
//
//go:embed VERSION
var Version string
