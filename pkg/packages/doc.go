// Package packages discovers installed content packages and holds their
// metadata.
//
// A package is identified by the slash-separated path of its archive file
// relative to a packages directory, without the ".smcpkg" extension:
//
//	<user data>/packages/castle.smcpkg          -> "castle"
//	<game data>/packages/contrib/night.smcpkg   -> "contrib/night"
//
// Discovery scans the user packages directory before the shipped one and
// never overwrites a name already found, so a user package shadows a shipped
// package of the same name.
//
// Dependencies come from an optional descriptor in the package data
// directory (package.toml or package.xml). The registry keeps a slot for
// them that callers can also fill directly with SetDependencies.
package packages
