// Package config provides configuration management for cpgislands.
//
// This package implements a layered configuration system that allows users to
// customize cpgislands' behavior through YAML files. Configuration is loaded
// from multiple sources and merged in a specific order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Island size 200, minimum GC ratio 0.5
//     - Log level warn, 60 bases per line in the TUI sequence pane
//
//  2. User Configuration (~/.config/cpgislands/config.yaml)
//     - Personal defaults that apply everywhere
//
//  3. Project Configuration (./.cpgislands/config.yaml)
//     - Defaults for the sequences kept in the current directory
//
// Only keys present in a layer override the layer below it.
//
// # Configuration Structure
//
//	islandDefinition:
//	  islandSize: 200
//	  minimumGCRatio: 0.5
//	logging:
//	  level: warn
//	tui:
//	  sequenceWidth: 60
//
// The island definition is validated after merging: the size must be
// positive and the ratio must lie in [0, 1]. The definition only provides
// the values pre-filled in the input fields; every submission is validated
// again on its own.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	seqInput.SetIslandDefinitionDefaults(cfg.Definition())
package config
