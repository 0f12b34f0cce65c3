package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/gazetteer"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/jurisdiction"
)

// Quick manual check of what the resolver does with a piece of text, without
// needing a database or a running server.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: resolve-jurisdiction <text...>")
		os.Exit(2)
	}
	text := strings.Join(os.Args[1:], " ")

	store, err := gazetteer.Load()
	if err != nil {
		log.Fatalf("Gazetteer load error: %v", err)
	}
	resolver, err := jurisdiction.NewResolver(store)
	if err != nil {
		log.Fatalf("Resolver build error: %v", err)
	}

	result := resolver.Resolve(text)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Encode error: %v", err)
	}
	fmt.Println(string(out))

	if prompt := resolver.FormatForPrompt(result); prompt != "" {
		fmt.Println()
		fmt.Println(prompt)
	}
}
