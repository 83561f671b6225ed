// Package main provides the pokedex CLI: catalog management for Pokemon,
// moves and items, and trainer roster operations.
package main

func main() {
	Execute()
}
