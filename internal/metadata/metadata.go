// Package metadata holds the read-only program information shown in the
// banner, the about text and the MCP server handshake.
package metadata

import (
	"fmt"
	"strings"
)

const (
	Package     = "cpgislands"
	Title       = "cpg-islands"
	NiceTitle   = "CpG Island Finder"
	Description = "Find candidate CpG islands in a DNA sequence"
	Copyright   = "Copyright 2012-2024 The CpG Island Finder authors"
	URL         = "https://example.org/cpgislands"
	DocsURL     = "https://example.org/cpgislands/docs"
	License     = "MIT"
)

// Version is set at build time with -ldflags "-X cpgislands/internal/metadata.Version=...".
var Version = "dev"

// Authors and Emails are parallel lists.
var (
	Authors = []string{"CpG Island Finder maintainers"}
	Emails  = []string{"maintainers@example.org"}
)

// AuthorLines returns one "Author: name <email>" line per author.
func AuthorLines() []string {
	lines := make([]string, 0, len(Authors))
	for i, name := range Authors {
		email := ""
		if i < len(Emails) {
			email = Emails[i]
		}
		lines = append(lines, fmt.Sprintf("Author: %s <%s>", name, email))
	}
	return lines
}

// Banner renders the about text printed when the program starts without a
// subcommand.
func Banner() string {
	return fmt.Sprintf("%s %s\n\n%s\nURL: <%s>\n",
		NiceTitle, Version, strings.Join(AuthorLines(), "\n"), URL)
}
