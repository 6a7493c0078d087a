package static

import "embed"

// FS contains the embedded site assets served under /static/.
//
//go:embed site.css
var FS embed.FS
