//go:build !uvdense

package ultraviolet

const defaultPolicy = PolicyStructured
