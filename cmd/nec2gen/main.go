package main

import "github.com/OpenTraceLab/OpenTraceNEC/cmd/nec2gen/cmd"

func main() {
	cmd.Execute()
}
