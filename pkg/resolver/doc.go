// Package resolver maps logical resource requests onto files in the layered
// package data roots.
//
// A Resolver is built once by the application and handed to every subsystem
// that loads or saves content. It holds an immutable snapshot of the package
// index, the active package and the search path derived from them:
//
//	active package P (depends on A, B)
//	  -> (P user, P shipped), (A user, A shipped), ..., (global user, global shipped)
//
// Reading walks the search path and, inside each entry, prefers the user
// root over the shipped root. Writing always targets the first user root.
// Relativize is the inverse of reading and turns an absolute file back into
// the portable name it would be requested by.
//
// Snapshots are swapped atomically; readers never block and never see a
// partially rebuilt search path. Writers are serialised by a mutex that is
// not held during filesystem access.
package resolver
