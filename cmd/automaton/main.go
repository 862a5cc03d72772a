// Command automaton reads words from standard input, one per line, and tells
// whether each belongs to the language a(abc)*c. Typing exit ends the session.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/searchlab/automaton"
)

const (
	prompt   = "Enter a word (or 'exit' to quit): "
	accepted = "The word is accepted"
	rejected = "The word is rejected"
	goodbye  = "Exiting."
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		word := strings.TrimSuffix(scanner.Text(), "\r")

		if strings.EqualFold(word, "exit") {
			fmt.Fprintln(out, goodbye)
			return nil
		}

		if automaton.Accepts(word) {
			fmt.Fprintln(out, accepted)
		} else {
			fmt.Fprintln(out, rejected)
		}
	}
}
