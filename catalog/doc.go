// Package catalog supplies unit declarations to the registry: the built-in SI
// catalog, the SI prefix table, and a YAML format for user catalogs.
//
// The built-in catalog covers dimensionless ratios and plane angle (radian
// convention: angles are dimensionless, the radian has scale 1), the seven SI
// base dimensions, and the common derived ones (area, volume, velocity,
// acceleration, force, energy, power, frequency, pressure, charge, voltage).
// Base units are coherent: the base of area is m², of velocity m/s, and so on,
// which lets quantity arithmetic land on declared units.
//
// YAML catalogs:
//
//	extends: SI            # optional: start from the built-in declarations
//	dimensions:
//	  - name: jerk
//	    exponents: [1, 0, -3, 0, 0, 0, 0]
//	units:
//	  - name: furlong
//	    symbol: fur
//	    dimension: length
//	    scale: 201.168
//	  - name: byte
//	    symbol: B
//	    dimension: dimensionless
//	    scale: 8
//	    prefixes: [k, Ki]     # expands to kilobyte (kB), kibibyte (KiB)
//	matrices:
//	  - base: kelvin
//	    units: [celsius]
//
// Base units must form a coherent system: the base of area is the square of
// the base of length, the base of force is kg·m·s^-2, and so on. Nothing
// checks this; a catalog declaring gram as the mass base converts every
// derived unit that involves mass wrongly.
//
// SI returns a process-wide registry built lazily, exactly once, from the
// built-in catalog. Build constructs an independent registry with options.
package catalog
