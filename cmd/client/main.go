package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/adrianliechti/medlens/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	ocrFlag := flag.Bool("ocr", false, "print extracted lines only")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <image>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	path := flag.Arg(0)

	f, err := os.Open(path)

	if err != nil {
		fatal(err)
	}

	defer f.Close()

	input := client.File{
		Name:   filepath.Base(path),
		Reader: f,
	}

	if *ocrFlag {
		doc, err := c.Extractions.New(ctx, input)

		if err != nil {
			fatal(err)
		}

		for _, page := range doc.Pages {
			for _, line := range page.Lines {
				fmt.Println(line.Text)
			}
		}

		return
	}

	analysis, err := c.Analyses.New(ctx, input)

	if err != nil {
		fatal(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	for _, row := range analysis.Rows {
		fmt.Fprintf(w, "%s\t%s\n", row.Key, row.Value)
	}

	w.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
