// Package config loads form mirror configuration documents (JSON or YAML),
// turns them into widget configuration and watches them for changes.
package config
