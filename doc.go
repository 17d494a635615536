/*
Package tst provides a ternary search tree: an ordered set of strings
supporting insertion, exact lookup, prefix lookup and enumeration.

Each node holds a single byte of a stored string and three links. The lo and
hi links lead to the bytes that sort before and after it at the same
position, the eq link continues the string. Nodes are only ever added, so the
shape of the tree depends on insertion order: inserting sorted input degrades
each level into a list, while median-first input keeps it balanced.
*/
package tst
