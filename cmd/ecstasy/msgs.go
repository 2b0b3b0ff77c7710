package main

import (
	_ "embed"
	"strings"
)

// Long messages from embedded files
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
