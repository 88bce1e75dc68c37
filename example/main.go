// Example program demonstrating the branchlint library API.
//
// Run from the repo root:
//
//	go run ./example/
//
// With remote mode (set GITHUB_TOKEN first):
//
//	GITHUB_TOKEN=ghp_xxx go run ./example/
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/MyCarrier-DevOps/go-branch-name-lint/pkg/branchlint"
)

func main() {
	ctx := context.Background()
	localBranch(ctx)
	localAll(ctx)

	if os.Getenv("GITHUB_TOKEN") != "" {
		remoteBranches(ctx)
	}
}

func localBranch(ctx context.Context) {
	result, err := branchlint.Lint(ctx, branchlint.Options{
		Path: ".",
	})
	if err != nil {
		log.Fatalf("local lint failed: %v", err)
	}

	printResults("Current branch", []branchlint.Result{*result})
}

func localAll(ctx context.Context) {
	results, err := branchlint.LintAll(ctx, branchlint.Options{
		Path: ".",
	})
	if err != nil {
		log.Fatalf("local lint failed: %v", err)
	}

	printResults("Local branches", results)
}

func remoteBranches(ctx context.Context) {
	results, err := branchlint.LintRemote(ctx, branchlint.RemoteOptions{
		Owner: "MyCarrier-DevOps",
		Repo:  "go-branch-name-lint",
		Token: os.Getenv("GITHUB_TOKEN"),
	})
	if err != nil {
		log.Fatalf("remote lint failed: %v", err)
	}

	printResults("Remote branches", results)
}

func printResults(label string, results []branchlint.Result) {
	fmt.Printf("=== %s ===\n", label)

	for _, r := range results {
		status := "ok"
		if !r.Passed {
			status = "FAIL"
		}
		head := " "
		if r.Head {
			head = "*"
		}
		fmt.Printf("%s %-40s %-7s %s\n", head, r.Branch, r.Tip, status)
		for _, d := range r.Diagnostics {
			fmt.Printf("    %s\n", d.Message)
		}
	}
	fmt.Println()
}
