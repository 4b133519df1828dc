// Package file provides file-backed implementations of driven ports.
//
// ConfigStore reads and writes ~/.servicehub/config.toml. Dotted keys such as
// "storage.backend" map to TOML tables:
//
//	[storage]
//	backend = "sqlite"
//	data_dir = "/home/me/.servicehub/data"
//
//	[output]
//	color = true
package file
