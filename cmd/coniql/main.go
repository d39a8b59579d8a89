// Command coniql serves control-system channels over GraphQL, websockets
// and REST, and reads or writes them from the command line.
package main

func main() {
	Execute()
}
