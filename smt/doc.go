/*
Package smt implements a sparse Merkle tree: a binary tree of depth B =
8*N (N the hasher's output size) mapping fixed-length key paths to values,
committing to the whole mapping in a single root digest.

Unlike a naive sparse tree, this implementation applies path compression
(sometimes called the "Libra" optimisation) to leaves: a leaf sits at the
shallowest depth where no other leaf shares its path prefix, rather than
at depth B. Inner nodes are not compressed: the walk consumes one path bit
per inner node, so where two leaves share a prefix longer than the depth
of the slot they occupy, the nodes between that slot and their branch
point are materialised as inner nodes with one placeholder child. Proof
depth therefore follows the longest shared path prefix among stored keys,
not B.

The tree itself holds no storage; every node it creates is written
through a caller-supplied kv.Store, and every hash it computes goes
through a caller-supplied hasher.Hasher. Get, Update, Delete and Prove
walk the tree guided by the bits of H(key); Verify recomputes a root from
a Proof without needing a store at all.
*/
package smt
