// Package segpath provides a KCL plugin exposing the path algebra of
// [github.com/macropower/pathlex/pkg/segpath] to KCL programs.
//
//	import kcl_plugin.segpath
//
//	dir = segpath.dedot("charts/app/../base/")
package segpath
