// Package config loads, saves and validates distributor configuration files.
//
// A configuration file is a flat mapping of distributor options:
//
//	paths:
//	  - out
//	  - ../shared/conf
//	create_parents: true
//
// Files ending in .hcl use HCL attribute syntax instead:
//
//	paths          = ["out", "../shared/conf"]
//	create_parents = true
package config
