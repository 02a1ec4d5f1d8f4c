package ui

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clipboardResultMsg reports the outcome of a clipboard write
type clipboardResultMsg struct {
	glyph string
	err   error
}
