// SPDX-License-Identifier: MIT

// Command disjoint finds k disjoint shortest paths in YAML graph documents
// and precomputes failure-protection tables.
//
// Usage:
//
//	disjoint paths   net.yaml A D --k 3 --mode node
//	disjoint count   net.yaml A D --mode node
//	disjoint protect net.yaml --mode edge-then-node --source A --target D --fail node:B
//	disjoint batch   queries.yaml --workers 4
//	disjoint generate grid --rows 3 --cols 3 --undirected
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
