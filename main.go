/*
Copyright © 2025 Zachary Landes
*/
package main

import "github.com/zacharylandes/fizzbit-sub000/cmd"

func main() {
	cmd.Execute()
}
