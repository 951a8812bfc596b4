package encoding

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ParseDimacs reads a DIMACS CNF formula: comment (c) and problem (p) lines
// are skipped, and every other non-blank line is a clause of signed integers
// terminated by 0. A line containing only the terminator is an empty clause.
func ParseDimacs(in io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(in)
	sentences := [][]int{}
	line := 0

	for scanner.Scan() {
		line++
		fields := bytes.Fields(scanner.Bytes())

		if len(fields) == 0 {
			continue
		}
		prefix := string(fields[0])

		if prefix == "c" || prefix == "p" {
			continue
		}
		sentence := []int{}
		for _, field := range fields {
			p, err := strconv.Atoi(string(field))
			if err != nil {
				return nil, errors.Wrapf(err, "parsing clause on line %d", line)
			}
			if p != 0 {
				sentence = append(sentence, p)
			}
		}
		sentences = append(sentences, sentence)
	}
	return sentences, errors.Wrap(scanner.Err(), "reading formula")
}
