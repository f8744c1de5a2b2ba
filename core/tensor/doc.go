// Package tensor provides dense tensors, learnable parameters and module
// trees for tracking model state. Linking this package installs tensor
// dispatch support in core/indicator, so binaries that never import it pay
// nothing and tensor values simply fall through the factory's type checks.
package tensor
