package markdown

// codeState is the fence state machine's state.
type codeState int

const (
	stateProse codeState = iota
	stateInCode
)

// fence is the code-block accumulator: whether the assembler is currently
// inside a code run, plus the buffer of pending code lines. Lines are
// buffered until a non-code line (or the end of the document) flushes the
// run, which keeps the opening and closing markers balanced.
type fence struct {
	state   codeState
	pending []string
}

// inCode reports whether a code run is currently open.
func (f *fence) inCode() bool {
	return f.state == stateInCode
}

// open emits the opening fence marker and enters the code run.
func (f *fence) open(emit func(string)) {
	emit("```")
	f.state = stateInCode
}

// buffer appends a code line to the pending run.
func (f *fence) buffer(line string) {
	f.pending = append(f.pending, line)
}

// flush emits all buffered lines followed by the closing fence marker and
// returns to prose state. Flushing while in prose is a no-op, so callers
// can flush unconditionally before handling a non-code line.
func (f *fence) flush(emit func(string)) {
	if f.state != stateInCode {
		return
	}
	for _, line := range f.pending {
		emit(line)
	}
	emit("```\n")
	f.pending = nil
	f.state = stateProse
}
