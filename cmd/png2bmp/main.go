package main

import (
	"fmt"
	"os"

	"github.com/codegangsta/cli"

	mono "github.com/jalmeida-at-vonigo/zebra-printer-utility"
)

const (
	inputPath  = "prism_logo.png"
	outputPath = "prism_logo_bw.bmp"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "png2bmp"
	app.Usage = "Converts " + inputPath + " to a black-and-white " + outputPath + " for the label printer."
	app.Action = func(c *cli.Context) {
		if err := mono.NewConverter().ConvertFile(outputPath, inputPath); err != nil {
			exit(err.Error(), 1)
		}
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
