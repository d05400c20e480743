/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/netpeek/netpeek/pkg/cli"

func main() {
	cli.Execute()
}
