// Command uuidgen generates and inspects random version 4 UUIDs.
package main

import "github.com/jvs-project/uuidgen/internal/cli"

func main() {
	cli.Execute()
}
