package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"weather-dashboard/icons"
)

func main() {
	dir := flag.String("dir", "icons", "Directory icon assets are referenced from")
	flag.Parse()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCATEGORY\tASSET")
	for _, code := range icons.Codes() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", code, icons.Lookup(code), icons.AssetPath(*dir, code))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing table: %v\n", err)
		os.Exit(1)
	}
}
