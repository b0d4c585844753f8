// Package main demonstrates basic usage of the choose library.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nao1215/choose"
)

func main() {
	s, err := choose.New()
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	fmt.Println("Basic Selection Example")
	fmt.Println("Press a marker key to pick instantly, or navigate with Up/Down")
	fmt.Println()

	result, err := s.Select(context.Background(), choose.Request{
		Label: "branch: ",
		Source: choose.StaticSource([]string{
			"main",
			"develop",
			"feature/login",
			"feature/payments",
			"release/1.2",
		}),
		Defaults: []string{"develop"},
	})
	if err != nil {
		log.Fatal(err)
	}

	switch result.Outcome {
	case choose.OutcomeCancelled:
		fmt.Println("Nothing selected")
	default:
		fmt.Printf("You picked: %s (%s)\n", result.Value, result.Outcome)
	}
}
