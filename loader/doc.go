// Package loader reads and writes route-network documents and turns them
// into core.Graph values.
//
// A document lists airports and directed routes:
//
//	name: demo
//	airports:
//	  - code: JFK
//	    name: New York JFK
//	  - code: LHR
//	routes:
//	  - id: BA112
//	    from: JFK
//	    to: LHR
//	    weight: 420
//
// YAML (.yaml, .yml) and JSON (.json) share one schema. Records are checked
// with struct tags (go-playground/validator) and cross-referenced: duplicate
// airport codes and routes naming unknown airports are reported together in
// one multierror. Routes without an id receive a random UUID.
package loader
