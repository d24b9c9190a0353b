package port

type LineReader interface {
	// ReadLine renders the prompt and blocks until one line of input is
	// available, returned without its terminator. End of input is reported
	// as io.EOF, distinct from an empty line.
	ReadLine(prompt string) (string, error)
	// Close releases the input source.
	Close() error
}
