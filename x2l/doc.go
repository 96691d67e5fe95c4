// Package x2l renames files so that their extensions are lowercase.
// File paths are read one per line; nothing is renamed unless execute mode is on, in which case
// a file is only renamed when it is a regular file and the lowercased path does not exist yet.
package x2l
