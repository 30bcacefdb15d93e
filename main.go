package main

import (
	"cpgislands/cmd"
	"cpgislands/internal/metadata"
)

func main() {
	cmd.SetVersion(metadata.Version)
	cmd.Execute()
}
