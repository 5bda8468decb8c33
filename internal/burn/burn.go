// Package burn implements the secure-destruction primitive required of every
// buffer that carries key material, pad bytes, Lagrange coefficients, or
// share values: an overwrite pattern the optimizer cannot elide, followed by
// a fence equivalent.
package burn

import "runtime"

// Bytes overwrites b with zeros and keeps b reachable until the last store
// has completed via runtime.KeepAlive. Go has no volatile write or compiler
// fence; KeepAlive after every byte is the closest available guarantee that
// the dead-store elimination pass cannot drop the writes as unobserved.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
		runtime.KeepAlive(b)
	}
}

// Paranoid overwrites b with a three-pass pattern (0xFF, then i mod 255,
// then zero) before the same fence-equivalent as Bytes. Use for material
// whose threat model includes an adversary recovering remanent charge from
// a single-pass zero.
func Paranoid(b []byte) {
	for i := range b {
		b[i] = 0xFF
		runtime.KeepAlive(b)
	}
	for i := range b {
		b[i] = byte(i % 255)
		runtime.KeepAlive(b)
	}
	Bytes(b)
}
