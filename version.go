package ageis

import _ "embed"

// Version is the library version, embedded from the VERSION file at the
// repository root so release tooling has a single place to bump.
//
//go:embed VERSION
var Version string
