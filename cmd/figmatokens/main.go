package main

import "github.com/MeKo-Tech/figmatokens/internal/cmd"

func main() {
	cmd.Execute()
}
