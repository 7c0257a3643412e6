// SPDX-FileCopyrightText: 2026 The pngstash authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"
)

// printUsage of pngstash and exit with an error code afterwards.
func printUsage() {
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s encode|decode|remove|print|watch:\n\n", os.Args[0])

	_, _ = fmt.Fprintf(os.Stderr, "%s encode [-z] in.png chunk-type -|message out.png\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Hides the stdin (-) or the given message under the four-letter chunk-type\n")
	_, _ = fmt.Fprintf(os.Stderr, "  within in.png and saves the result as out.png. With -z the message is\n")
	_, _ = fmt.Fprintf(os.Stderr, "  XZ-compressed first.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s decode in.png chunk-type\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Prints the payload hidden under chunk-type to stdout, decompressing it\n")
	_, _ = fmt.Fprintf(os.Stderr, "  if necessary.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s remove in.png chunk-type out.png\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Removes the first chunk of chunk-type and saves the result as out.png.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s print in.png\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Lists all chunks of in.png with their types, lengths and checksums.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s watch chunk-type directory\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Watches the directory and prints the payload hidden under chunk-type for\n")
	_, _ = fmt.Fprintf(os.Stderr, "  every PNG file dropped into it.\n\n")

	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
	}

	switch os.Args[1] {
	case "encode":
		encodeAction(os.Args[2:])

	case "decode":
		decodeAction(os.Args[2:])

	case "remove":
		removeAction(os.Args[2:])

	case "print":
		printAction(os.Args[2:])

	case "watch":
		watchAction(os.Args[2:])

	default:
		printUsage()
	}
}
