package catalog

import _ "embed"

// embeddedPosts is the catalog compiled into the binary.
//
//go:embed posts.yaml
var embeddedPosts []byte

// EmbeddedSource is the Source() of a catalog built from embeddedPosts.
const EmbeddedSource = "embedded:posts.yaml"
