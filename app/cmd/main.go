package main

import (
	"github.com/ribgsilva/sticky-notes/app/cmd/notes"
	"github.com/ribgsilva/sticky-notes/app/cmd/schema"
	"os"
)

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Manage the mysql storage table")
	println("\tnotes\t\t\t- Inspect or reset the stored notes")
	println("\thelp\t\t\t- Print the commands available")
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "notes":
		notes.Run(os.Args[2:])
	default:
		listCommands()
	}
}
