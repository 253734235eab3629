package main

import "github.com/CzarekM2012/Huffman/cmd/gohuff/cmd"

func main() {
	cmd.Execute()
}
