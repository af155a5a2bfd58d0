// Package paths provides centralized path handling for datapacks.
//
// It owns the on-disk layout contract shared by every package: where the
// global user and shipped data roots live, how a package name maps onto its
// archive file and data directory, and the lexical helpers used to test
// containment and build portable relative names.
//
// # Defaults
//
// The roots themselves are configured through pkg/config (data.user_dir and
// data.game_dir). When left empty they default to:
//
//   - user data root: $XDG_DATA_HOME/datapacks
//   - game data root: <executable dir>/data
//
// # Layout
//
//	<root>/packages/<name>.smcpkg         package archive (file) or data directory
//	<root>/packages/<name>.smcpkg/...     package data, laid out like <root>
//	<user root>/savegames/                savegame slots
//
// The package data directory carries the archive extension as a literal
// suffix; it is not unpacked anywhere else.
package paths
