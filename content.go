package content

// Content is text that can be read and replaced as a whole.
type Content interface {
	// Read returns the complete current text.
	Read() (string, error)

	// Write replaces the complete text.
	Write(text string) error
}

// Compile-time interface checks.
var (
	_ Content = (*TextStore)(nil)
	_ Content = (*ASCIIFilter)(nil)
)
