package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/arithlang/arith"
	"github.com/arithlang/arith/eval"
)

func balancedParens(src string) bool {
	parens := 0
	for _, c := range src {
		switch c {
		case '(':
			parens++
		case ')':
			parens--
		}
	}
	return parens == 0
}

func repl() {
	ev := eval.New(os.Stdin, os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("* ")
		if !scanner.Scan() {
			break
		}
		src := scanner.Text()
		if strings.TrimSpace(src) == "" {
			continue
		}
		if !balancedParens(src) {
			fmt.Fprintln(os.Stderr, "unbalanced parens")
			continue
		}

		node, err := arith.Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(arith.Format(node))

		v, err := ev.Evaluate(node)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(v)
	}
}

func run(src string) {
	if !balancedParens(src) {
		fmt.Fprintln(os.Stderr, "warning: unbalanced parens")
	}

	node, err := arith.Parse(src)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("AST: %s\n", arith.Format(node))
	fmt.Printf("Partially evaluated AST: %s\n", arith.Format(eval.PartialEval(node)))

	v, err := eval.New(os.Stdin, os.Stdout).Evaluate(node)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl()
			return
		}
		src, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		run(string(src))
		return
	}

	src, err := ioutil.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	run(string(src))
}
