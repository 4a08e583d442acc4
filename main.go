package main

import (
	"fmt"
	"os"
	"time"

	"chainsentry/cmd"
)

func main() {
	// chainsentry token <subject> prints a bearer token for the API
	if len(os.Args) == 3 && os.Args[1] == "token" {
		token, err := cmd.IssueToken(os.Args[2], 30*24*time.Hour)
		if err != nil {
			fmt.Printf("could not issue token: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
