// Package plugins contains helpers shared by the KCL plugins.
package plugins
