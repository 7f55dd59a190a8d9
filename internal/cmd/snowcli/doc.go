// Package snowcli contains the Cobra commands of the data-eater CLI.
//
// The CLI is a thin operator tool around the snowflake core:
//
//	data-eater generate --count 10 --output hex
//	data-eater inspect 7340124372598784 0x1a2b3c00000000
//	data-eater machine
//
// generate emits identifiers from one factory; inspect decomposes raw
// values given as decimal or 0x-prefixed hex; machine prints the 10-bit
// machine id derived from this host. Identifiers go to stdout; diagnostics
// go to the structured logger on stderr.
//
// The root command carries --config, --log-level and --log-format global
// flags. Settings resolve with flag > DATA_EATER_* env > config file
// precedence before any command body runs.
package snowcli
