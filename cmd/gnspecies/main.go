// Package main provides the gnspecies CLI application.
// gnspecies finds species information in Wikispecies and Wikipedia.
package main

import "github.com/gnames/gnspecies/cmd"

func main() {
	cmd.Execute()
}
