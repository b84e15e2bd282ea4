package cli

import "embed"

//go:embed topics
var topicFiles embed.FS
