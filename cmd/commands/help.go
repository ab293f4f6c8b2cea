package commands

import "fmt"

const help = `petstar, the pet social backend.

usage:
  petstar run <config.yml>               start the http api
  petstar watch <config.yml> [consumer]  log change events from the stream
  petstar version                        print the version
  petstar help                           print this message
`

func HandleHelp(_ []string) {
	fmt.Print(help) //nolint
}
