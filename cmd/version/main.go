package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-controls/pkg/version"
)

func main() {
	command := "info"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "info", "i":
		info := version.Get()
		fmt.Printf("Version: %s\nCommit: %s\nBuilt: %s\nGo: %s\nPlatform: %s\n",
			info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
	case "current", "c":
		fmt.Println(version.GetVersionString())
	case "json", "j":
		data, err := json.MarshalIndent(version.Get(), "", "  ")
		if err != nil {
			log.Fatalf("Error encoding JSON: %v", err)
		}
		fmt.Println(string(data))
	default:
		fmt.Println("Usage: version [info|current|json]")
		os.Exit(1)
	}
}
