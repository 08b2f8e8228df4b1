package main

import (
	"fmt"
	"os"

	"github.com/PauloHFS/goth-paginator/internal/cmd"
)

func main() {
	if len(os.Args) < 2 {
		cmd.RunServer()
		return
	}

	switch os.Args[1] {
	case "server":
		cmd.RunServer()
	case "render":
		if err := cmd.RunRender(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "help":
		showHelp()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("goth-paginator - pagination fragments for list views")
	fmt.Println("Usage: ./goth-paginator [command] [args]")
	fmt.Println("\nAvailable commands:")
	fmt.Println("  server   Start the web server (default)")
	fmt.Println("  render   Print one fragment (flags: -total -page -per-page -max -pattern -style -lang -json)")
	fmt.Println("  help     Show this help message")
}
