package main

import "github.com/duat-editor/duatflake/cmd/duatflake/internal"

func main() {
	internal.Execute()
}
