package writer

// NewText creates the plain UTF-8 text writer.
func NewText() Writer {
	return &textWriter{}
}

// NewDocx creates the Word document writer.
func NewDocx() Writer {
	return &docxWriter{}
}
