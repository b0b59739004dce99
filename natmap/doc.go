/*
Package natmap implements a persistent (immutable) sorted map with
arbitrary-precision natural numbers as keys, backed by an in-memory B-tree.

Keys are ordered by natural.Compare, i.e. by numeric value. Modifying
operations never touch an existing incarnation of a map: they return a new
incarnation which shares all unmodified nodes with its predecessor
(copy-on-write). This makes maps cheap to version and safe for concurrent
readers.

A good introduction to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package natmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'natural.natmap'.
func tracer() tracing.Trace {
	return tracing.Select("natural.natmap")
}
