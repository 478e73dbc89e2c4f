// Package wfcconfig persists solver configuration as YAML presets. It
// mirrors the fields of wfc.Options, plus the RNG seed, rather than importing
// that package
// directly, keeping the on-disk preset format stable independent of the
// root package's internal struct layout.
package wfcconfig
