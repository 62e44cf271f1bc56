// Command sg is the schemaguard CLI: purity and slop checks for Python
// schema repositories, plus schema export, manifest verification and
// contract artifact validation.
package main

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	Execute()
}
