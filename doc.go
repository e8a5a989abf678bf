// Package remap contains the core components of Remap, a library for
// declaratively remapping the columns of tabular data. This root package
// defines the value types and function signatures which are employed during
// regular use of the library, as well as in its extension, and is an
// excellent overview of Remap's key concepts.
package remap
