// Package main demonstrates the search fallback of the choose library.
//
// With more candidates than marker keys, shortcut mode is skipped and the
// built-in fuzzy-search prompt takes over. Pressing Ctrl+F in a small menu
// opens the same prompt on demand.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nao1215/choose"
)

func main() {
	s, err := choose.New(
		choose.WithFileHistory(choose.DefaultHistoryFile(), 200),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	fmt.Println("Fallback Example")
	fmt.Println("Too many candidates for shortcuts: type to fuzzy-search instead")
	fmt.Println()

	commands := []string{
		"git status", "git commit", "git push", "git pull", "git rebase",
		"git stash", "git log", "git diff", "docker run", "docker build",
		"docker ps", "kubectl get pods", "kubectl apply", "kubectl logs",
		"terraform plan", "terraform apply",
	}

	result, err := s.Select(context.Background(), choose.Request{
		Label:        "command: ",
		Source:       choose.StaticSource(commands),
		RequireMatch: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	if result.Outcome == choose.OutcomeCancelled {
		fmt.Println("Nothing selected")
		return
	}
	fmt.Printf("Running: %s\n", result.Value)
}
