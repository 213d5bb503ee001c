package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n Node) {
	printLevel(n, 0)
}

func printLevel(n Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Printf("%s(%s): ", indent, n.Type())

	switch n := n.(type) {

	case *Number:
		fmt.Printf("%d (%v)\n", n.Value, n.Token())

	case *Call:
		fmt.Printf("%s (%v)\n", n.Operator, n.Token())
		for i := range n.Args {
			printLevel(n.Args[i], level+1)
		}

	case *Let:
		fmt.Printf("(%v)\n", n.Token())
		for i := range n.Bindings {
			printLevel(n.Bindings[i], level+1)
		}
		printLevel(n.Body, level+1)

	case *Var:
		fmt.Printf("%s (%v)\n", n.Name, n.Token())

	case *Binding:
		fmt.Printf("%s (%v)\n", n.Name, n.Token())
		printLevel(n.Value, level+1)

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its canonical text representation. The
// output is fully parenthesized, single-space separated, and re-parses to
// a structurally equal tree.
func Encode(n Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n Node) string {
	if n == nil {
		return ":nil"
	}

	switch n := n.(type) {

	case *Number:
		return strconv.FormatInt(n.Value, 10)

	case *Call:
		if len(n.Args) == 0 {
			return fmt.Sprintf("(%s)", n.Operator)
		}
		args := make([]string, 0, len(n.Args))
		for i := range n.Args {
			args = append(args, encodeNode(n.Args[i]))
		}
		return fmt.Sprintf("(%s %s)", n.Operator, strings.Join(args, " "))

	case *Let:
		bindings := make([]string, 0, len(n.Bindings))
		for i := range n.Bindings {
			bindings = append(bindings, encodeNode(n.Bindings[i]))
		}
		return fmt.Sprintf("(let (%s) %s)", strings.Join(bindings, " "), encodeNode(n.Body))

	case *Var:
		return n.Name

	case *Binding:
		return fmt.Sprintf("(%s %s)", n.Name, encodeNode(n.Value))

	default:
		panic("unknown node type")
	}
}
