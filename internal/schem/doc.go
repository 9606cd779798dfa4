// Package schem defines the NBT structure-template tree for Create-mod
// machine blocks and its serialization to the vanilla structure file
// format.
//
// A template is a single-block structure: the block list, palette list
// and size are always consistent for a 1x1x1 structure holding exactly
// one machine block. Two shapes exist, the mechanical arm and the chain
// conveyor, each produced by its own factory with fixed defaults.
//
// Encoding is delegated to the go-mc NBT codec; the tag layout is pinned
// by struct tags. Files are gzip-compressed by default, matching what
// the game expects for structure files.
package schem
