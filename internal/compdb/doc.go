// Package compdb turns decoded workspace settings into compile_commands.json
// entries and writes them out.
//
// Entries are produced in folder declaration order, and within a folder in
// the order the source patterns discovered the files. Every file in a folder
// shares the same flag vector; only the leading compiler differs.
package compdb
