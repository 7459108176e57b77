//go:build tools
// +build tools

package eve

import (
	_ "golang.org/x/tools/cmd/stringer"
)
