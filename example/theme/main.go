// Package main demonstrates color themes and custom shortcut alphabets.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nao1215/choose"
)

func main() {
	s, err := choose.New(
		choose.WithColorScheme(choose.ThemeDark),
		choose.WithShortcutAlphabet("123456789"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	fmt.Println("Theme Example (dark theme, numeric markers)")
	fmt.Println()

	result, err := s.Select(context.Background(), choose.Request{
		Label: "environment: ",
		Source: choose.StaticSource([]string{
			"production",
			"staging",
			"development",
		}),
	})
	if err != nil {
		log.Fatal(err)
	}

	if result.Outcome == choose.OutcomeCancelled {
		fmt.Println("Nothing selected")
		return
	}
	fmt.Printf("Deploying to: %s\n", result.Value)
}
