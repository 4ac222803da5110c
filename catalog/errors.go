// SPDX-License-Identifier: MIT

// Package catalog: sentinel error set, prefixed "catalog: ...".

package catalog

import "errors"

var (
	// ErrUnknownPrefix indicates a prefix that is neither an SI prefix name
	// nor an SI prefix symbol.
	ErrUnknownPrefix = errors.New("catalog: unknown prefix")

	// ErrPrefixedOffset indicates prefixes requested on an offset unit.
	ErrPrefixedOffset = errors.New("catalog: prefixes require a linear unit")

	// ErrUnknownCatalog indicates an "extends" value other than SI.
	ErrUnknownCatalog = errors.New("catalog: unknown catalog to extend")

	// ErrEmptyCatalog indicates a YAML document without declarations.
	ErrEmptyCatalog = errors.New("catalog: empty catalog")
)
