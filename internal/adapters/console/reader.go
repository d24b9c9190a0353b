package console

import (
	"bufio"
	"io"
)

// Reader reads lines from any stream, writing the prompt to out before each
// read. It serves piped input and tests; interactive sessions use Liner.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader wraps in as a line source. out may be nil to suppress prompts.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

func (r *Reader) ReadLine(prompt string) (string, error) {
	if r.out != nil {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", err
		}
	}

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return r.scanner.Text(), nil
}

func (r *Reader) Close() error {
	return nil
}
