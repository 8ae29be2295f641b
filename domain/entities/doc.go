// Package entities defines the core value objects shared across the shim:
// byte spans, boundary status codes, and parsed-pattern representations.
// These types must remain stable as they define the ABI contract.
package entities
