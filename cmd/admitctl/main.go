// admitctl — author tooling for admitkit admission policies.
package main

import "github.com/ppiankov/admitkit/internal/cli"

func main() {
	cli.Execute()
}
