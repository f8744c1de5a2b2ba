// Package indicator defines the accumulators tracked for a run: each indicator
// owns a named series of values, buffers what was collected since the last
// flush and reduces it to a Summary. Indicators serialize to flat Records with
// a class_name discriminator and are rebuilt from them through a registry, so
// run logs can be reloaded without knowing the concrete variant up front.
//
// Tensor-valued dispatch is optional. The core package never imports the
// tensor package; support is installed through RegisterTensorSupport when that
// package is linked into the binary.
package indicator
