package jsquery

import _ "embed"

// Version is the release of the jsquery module.
//
//go:embed VERSION
var Version string
