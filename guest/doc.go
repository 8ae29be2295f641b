// Package guest exports the flat ABI from the sandboxed build:
// aifw_regex_compile, aifw_regex_free, aifw_regex_find, and the staging
// allocator aifw_alloc. The exports are thin pointer conversions over the
// boundary package; on native builds this package compiles to nothing.
package guest
