// Package cli implements the command-line interface of the beerxml tool.
//
// # Overview
//
// The beerxml CLI reads BeerXML documents from files, URLs or stdin and
// reports the brewing metrics of every recipe they hold: original and final
// gravity, bitterness, color, alcohol and attenuation.
//
// # Commands
//
// parse - Summarize recipes:
//
//	beerxml parse recipes/*.xml [--format json|yaml|table|xlsx] [--output FILE]
//
// Parses each document, in parallel for local files, and prints one summary
// row per recipe. Use "-" to read a document from stdin.
//
// show - Print full recipes:
//
//	beerxml show porter.xml --format yaml
//
// Prints every parsed field of each recipe along with its summary. The table
// and xlsx formats lay ingredients out on separate sheets.
//
// check - Compare recipes to their style:
//
//	beerxml check https://example.com/ipa.xml [--strict]
//
// Compares the computed metrics with the ranges of the recipe's declared
// style. With --strict the command fails when any metric is out of range.
//
// # Global Flags
//
//	--log-level string   Log level: debug, info, warn, error (default "info")
//
// # Output Formats
//
//   - json: indented JSON (default)
//   - yaml: YAML
//   - table: aligned text tables
//   - xlsx: Excel workbook, requires --output
//
// When --format is not set and --output names a file, the format is inferred
// from the file extension.
//
// # Environment
//
//   - BEERXML_LOG_LEVEL: default for --log-level
//   - BEERXML_FORMAT: default for --format
//   - BEERXML_OUTPUT: default for --output
//
// Values may also be placed in a .env file in the working directory.
package cli
